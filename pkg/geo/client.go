package geo

import (
	"context"
	"net/http"
	"time"
)

// POIsClient exposes the point-of-interest endpoints.
type POIsClient interface {
	List(ctx context.Context, request *POIListRequest) (*POIList, error)
	Get(ctx context.Context, request *GetRequest) (*POIDetails, error)
	Types(ctx context.Context, request *InfoRequest) (*POITypes, error)
}

// DestinationsClient exposes the destination endpoints.
type DestinationsClient interface {
	List(ctx context.Context, request *LocationListRequest) (*DestinationList, error)
	Get(ctx context.Context, request *GetRequest) (*DestinationDetails, error)
}

// InspirationsClient exposes the inspiration endpoints. The typed list
// variants share one request shape and differ only by path.
type InspirationsClient interface {
	List(ctx context.Context, request *LocationListRequest) (*InspirationList, error)
	Dossiers(ctx context.Context, request *LocationListRequest) (*InspirationList, error)
	Events(ctx context.Context, request *LocationListRequest) (*InspirationList, error)
	NewsInBrief(ctx context.Context, request *LocationListRequest) (*InspirationList, error)
	SlideShows(ctx context.Context, request *LocationListRequest) (*InspirationList, error)
	Tests(ctx context.Context, request *LocationListRequest) (*InspirationList, error)
	Get(ctx context.Context, request *GetRequest) (*InspirationDetails, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	POIs() POIsClient
	Destinations() DestinationsClient
	Inspirations() InspirationsClient
}

// InfoClient provides access to the service information endpoints.
type InfoClient interface {
	SupportedLanguages(ctx context.Context, request *InfoRequest) (*SupportedLanguages, error)
	APIVersion(ctx context.Context, request *InfoRequest) (*APIVersion, error)
}

// Client is the full geographic API surface.
type Client interface {
	ResourceClients
	InfoClient

	// Call issues one GET against endpoint with the given parameter bag.
	Call(ctx context.Context, endpoint Endpoint, params Params) (*Result, error)

	// SetToken replaces the token used by calls that start afterwards.
	SetToken(token Token)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a geo.Client.
//
// Domain is the only required field. geoclient.New normalizes it by trimming
// a trailing slash and adding "https://" when no scheme is present.
//
// Per-request deadlines should be controlled via the context passed to
// client methods; HTTPTimeout bounds the whole exchange regardless. Requests
// are never retried.
type Config struct {
	// Domain: base origin of the API (e.g., "https://api.example.com").
	Domain string

	// Token: credential sent with every request. See Token for placement.
	Token Token

	// HTTPTimeout: overall timeout of one request. Zero means the default.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging at debug level.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// HTTPClient: optional underlying client (custom transport, proxies, tests).
	HTTPClient *http.Client
}
