// Package http is the transport of the geographic client: it builds one GET
// per call, places the credential and classifies the response.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/geographic-client/internal/auth"
	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/internal/logging"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is the HTTP client used to reach the API.
type Client struct {
	baseURL      *url.URL
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	logger       geo.Logger
	userAgent    string
	timeout      time.Duration
	debug        bool
	underlying   *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger geo.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds one whole exchange. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.underlying = httpClient
	}
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string

	// SensitiveQuery names query parameters masked in debug logs.
	SensitiveQuery []string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// NewClient creates a new HTTP client. A nil tokenManager sends no credential.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) (*Client, error) {
	parsedURL, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	if tokenManager == nil {
		tokenManager = auth.NewStaticTokenManager(geo.Token{})
	}

	client := &Client{
		baseURL:      parsedURL,
		tokenManager: tokenManager,
		logger:       logging.Nop(),
		userAgent:    constants.UserAgentPrefix,
		timeout:      constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	underlying := client.underlying
	if underlying == nil {
		underlying = cleanhttp.DefaultPooledClient()
		underlying.Timeout = client.timeout
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = underlying
	retryClient.Logger = logging.Leveled{Logger: client.logger, Mask: []string{"url"}}
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client.httpClient = retryClient

	return client, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SetToken replaces the credential for requests started afterwards.
func (c *Client) SetToken(token geo.Token) {
	c.tokenManager.SetToken(token)
}

// Do performs one HTTP exchange. Any status code is returned without error;
// only transport failures are errors.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		fullURL.RawQuery = req.Query.Encode()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.MediaTypeJSON)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  method,
			"url":     redactURL(fullURL, req.SensitiveQuery),
			"headers": redactHeaders(httpReq.Header),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":       httpResp.StatusCode,
			"content_type": httpResp.Header.Get(constants.HeaderContentType),
			"bytes":        len(body),
			"duration":     time.Since(start).String(),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

func (c *Client) currentToken(ctx context.Context) (geo.Token, error) {
	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return geo.Token{}, fmt.Errorf("getting token: %w", err)
	}

	return token, nil
}

func neverRetry(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, err
}

func redactURL(u *url.URL, sensitive []string) string {
	if u.RawQuery == "" || len(sensitive) == 0 {
		return u.String()
	}

	query := u.Query()

	for _, name := range sensitive {
		if query.Has(name) {
			query.Set(name, constants.MaskedSecret)
		}
	}

	redacted := *u
	redacted.RawQuery = query.Encode()

	return redacted.String()
}

func redactHeaders(header http.Header) map[string]string {
	redacted := make(map[string]string, len(header))

	for key := range header {
		switch key {
		case constants.HeaderAccept, constants.HeaderAcceptLanguage, constants.HeaderUserAgent:
			redacted[key] = header.Get(key)
		default:
			redacted[key] = constants.MaskedSecret
		}
	}

	return redacted
}
