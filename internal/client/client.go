package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/geographic-client/internal/auth"
	geohttp "github.com/fivetwenty-io/geographic-client/internal/http"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// Client implements the geo.Client interface.
type Client struct {
	httpClient   *geohttp.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       geo.Logger

	// Resource clients
	pois         geo.POIsClient
	destinations geo.DestinationsClient
	inspirations geo.InspirationsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *geo.Config) []geohttp.Option {
	var httpOpts []geohttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, geohttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, geohttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, geohttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, geohttp.WithTimeout(config.HTTPTimeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, geohttp.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// New creates a new geographic API client. config.Domain must already be a
// normalized origin; see geoclient.New.
func New(config *geo.Config) (*Client, error) {
	if config == nil {
		return nil, geo.ErrConfigRequired
	}

	if config.Domain == "" {
		return nil, geo.ErrDomainRequired
	}

	return NewWithTokenManager(config, auth.NewStaticTokenManager(config.Token))
}

// NewWithTokenManager creates a client with a custom token manager.
func NewWithTokenManager(config *geo.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, geo.ErrConfigRequired
	}

	if config.Domain == "" {
		return nil, geo.ErrDomainRequired
	}

	err := auth.Validate(config.Token)
	if err != nil {
		return nil, err
	}

	if tokenManager == nil {
		tokenManager = auth.NewStaticTokenManager(config.Token)
	}

	httpClient, err := geohttp.NewClient(config.Domain, tokenManager, createHTTPClientOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.pois = NewPOIsClient(c.httpClient)
	c.destinations = NewDestinationsClient(c.httpClient)
	c.inspirations = NewInspirationsClient(c.httpClient)
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Call implements geo.Client.Call.
func (c *Client) Call(ctx context.Context, endpoint geo.Endpoint, params geo.Params) (*geo.Result, error) {
	return c.httpClient.Dispatch(ctx, endpoint, params)
}

// SetToken implements geo.Client.SetToken.
func (c *Client) SetToken(token geo.Token) {
	c.tokenManager.SetToken(token)
}

// POIs implements geo.ResourceClients.POIs.
func (c *Client) POIs() geo.POIsClient {
	return c.pois
}

// Destinations implements geo.ResourceClients.Destinations.
func (c *Client) Destinations() geo.DestinationsClient {
	return c.destinations
}

// Inspirations implements geo.ResourceClients.Inspirations.
func (c *Client) Inspirations() geo.InspirationsClient {
	return c.inspirations
}

// SupportedLanguages implements geo.InfoClient.SupportedLanguages.
func (c *Client) SupportedLanguages(ctx context.Context, request *geo.InfoRequest) (*geo.SupportedLanguages, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointSupportedLanguages, request.Params())
	if err != nil {
		return nil, fmt.Errorf("getting supported languages: %w", err)
	}

	return decode[geo.SupportedLanguages](result, "supported languages")
}

// APIVersion implements geo.InfoClient.APIVersion.
func (c *Client) APIVersion(ctx context.Context, request *geo.InfoRequest) (*geo.APIVersion, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointAPIVersion, request.Params())
	if err != nil {
		return nil, fmt.Errorf("getting API version: %w", err)
	}

	return decode[geo.APIVersion](result, "API version")
}

// decode unmarshals the raw body of a successful result. 204 and empty
// bodies yield the zero value.
func decode[T any](result *geo.Result, what string) (*T, error) {
	var value T

	if result.StatusCode == http.StatusNoContent || len(result.RawBody) == 0 {
		return &value, nil
	}

	err := json.Unmarshal(result.RawBody, &value)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &value, nil
}

// loggerAdapter adapts geo.Logger to the transport logger.
type loggerAdapter struct {
	logger geo.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var _ geo.Client = (*Client)(nil)
