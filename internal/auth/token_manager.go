package auth

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// Static errors for err113 compliance.
var (
	ErrTokenNameRequired = errors.New("token query name is required when the token is sent as a query parameter")
)

// DefaultHeader is used when the token names neither a header nor a query parameter.
const (
	DefaultHeader = "Authorization"
	BearerPrefix  = "Bearer "
)

// TokenManager hands out the token for one request.
type TokenManager interface {
	GetToken(ctx context.Context) (geo.Token, error)
	SetToken(token geo.Token)
}

// StaticTokenManager holds a token that only changes through SetToken.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token geo.Token
}

// NewStaticTokenManager creates a token manager for token.
func NewStaticTokenManager(token geo.Token) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns a snapshot of the current token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (geo.Token, error) {
	err := ctx.Err()
	if err != nil {
		return geo.Token{}, err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.token, nil
}

// SetToken replaces the token. Requests already started keep their snapshot.
func (m *StaticTokenManager) SetToken(token geo.Token) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = token
}

// Validate checks that token can be placed on a request.
func Validate(token geo.Token) error {
	if token.Value != "" && token.IsQuery && token.HeaderOrQueryName == "" {
		return ErrTokenNameRequired
	}

	return nil
}

// Apply places token on the outgoing query or headers. An empty token value
// sends no credential.
func Apply(token geo.Token, query url.Values, headers map[string]string) {
	if token.Value == "" {
		return
	}

	switch {
	case token.IsQuery:
		if token.HeaderOrQueryName != "" {
			query.Set(token.HeaderOrQueryName, token.Value)
		}
	case token.HeaderOrQueryName != "":
		headers[token.HeaderOrQueryName] = token.Value
	default:
		headers[DefaultHeader] = BearerPrefix + token.Value
	}
}
