// Package geoclient provides the main entry point for creating geographic API clients
package geoclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/geographic-client/internal/client"
	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// Version is reported in the default User-Agent. Overridden at build time.
var Version = "dev"

// New creates a new geographic API client.
//
// The domain is normalized: surrounding whitespace and a trailing slash are
// removed, and "https://" is added when no scheme is given. The caller's
// config is not modified.
func New(config *geo.Config) (geo.Client, error) {
	if config == nil {
		return nil, geo.ErrConfigRequired
	}

	domain := NormalizeDomain(config.Domain)
	if domain == "" {
		return nil, fmt.Errorf("%w as a non-empty string", geo.ErrDomainRequired)
	}

	normalized := *config
	normalized.Domain = domain

	if normalized.HTTPTimeout <= 0 {
		normalized.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	if normalized.UserAgent == "" {
		normalized.UserAgent = UserAgent()
	}

	cli, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithDomain creates a client without credentials.
func NewWithDomain(domain string) (geo.Client, error) {
	return New(&geo.Config{Domain: domain})
}

// NewWithToken creates a client sending token as "Authorization: Bearer".
func NewWithToken(domain, token string) (geo.Client, error) {
	return New(&geo.Config{
		Domain: domain,
		Token:  geo.Token{Value: token},
	})
}

// NewWithAPIKey creates a client sending key as the query parameter name.
func NewWithAPIKey(domain, name, key string) (geo.Client, error) {
	return New(&geo.Config{
		Domain: domain,
		Token:  geo.Token{Value: key, HeaderOrQueryName: name, IsQuery: true},
	})
}

// NormalizeDomain trims domain and adds the default scheme when missing.
func NormalizeDomain(domain string) string {
	domain = strings.TrimSuffix(strings.TrimSpace(domain), "/")
	if domain == "" {
		return ""
	}

	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = constants.DefaultScheme + domain
	}

	return domain
}

// UserAgent returns the default User-Agent header value.
func UserAgent() string {
	return constants.UserAgentPrefix + "/" + Version
}
