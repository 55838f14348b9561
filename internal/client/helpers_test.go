package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// NewTestClient creates a client for baseURL sending token.
func NewTestClient(t *testing.T, baseURL string, token geo.Token) *Client {
	t.Helper()

	client, err := New(&geo.Config{Domain: baseURL, Token: token})
	require.NoError(t, err)

	return client
}

// TestGetOperation represents a typed get call against one endpoint.
type TestGetOperation struct {
	Name         string
	ExpectedPath string
	Call         func(c *Client) (interface{}, error)
	Response     interface{}
	Verify       func(t *testing.T, got interface{})
}

// jsonHandler answers every request with status and body encoded as JSON,
// after checking the request path.
func jsonHandler(t *testing.T, expectedPath string, status int, body interface{}) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}
}

// RunGetOperationTests runs typed call tests against a JSON server.
func RunGetOperationTests(t *testing.T, tests []TestGetOperation) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(jsonHandler(t, tt.ExpectedPath, http.StatusOK, tt.Response))
			defer server.Close()

			got, err := tt.Call(NewTestClient(t, server.URL, geo.Token{}))
			require.NoError(t, err)
			tt.Verify(t, got)
		})
	}
}
