package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/geographic-client/internal/auth"
	geohttp "github.com/fivetwenty-io/geographic-client/internal/http"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mutex sync.Mutex
	logs  []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) find(msg string) map[string]interface{} {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for _, entry := range l.logs {
		if entry["msg"] == msg {
			fields, _ := entry["fields"].(map[string]interface{})

			return fields
		}
	}

	return nil
}

func newClient(t *testing.T, baseURL string, tokenManager auth.TokenManager, opts ...geohttp.Option) *geohttp.Client {
	t.Helper()

	client, err := geohttp.NewClient(baseURL, tokenManager, opts...)
	require.NoError(t, err)

	return client
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful GET request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "/geographic/apiVersion", request.URL.Path)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "geographic-client", request.Header.Get("User-Agent"))

			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"version": "1.0.0"})
		}))
		defer server.Close()

		client := newClient(t, server.URL, nil)

		resp, err := client.Do(context.Background(), &geohttp.Request{
			Method: http.MethodGet,
			Path:   "/geographic/apiVersion",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string
		require.NoError(t, json.Unmarshal(resp.Body, &result))
		assert.Equal(t, "1.0.0", result["version"])
	})

	t.Run("base URL with trailing slash and path", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/geographic/poi/list", request.URL.Path)
			assert.Equal(t, "3", request.URL.Query().Get("limit"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL+"/api/", nil)
		assert.Equal(t, server.URL+"/api", client.BaseURL())

		resp, err := client.Get(context.Background(), "/geographic/poi/list", url.Values{"limit": {"3"}})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("non-2xx is not a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte("missing"))
		}))
		defer server.Close()

		resp, err := newClient(t, server.URL, nil).Get(context.Background(), "/geographic/poi/get", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "missing", string(resp.Body))
	})

	t.Run("custom headers and user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "my-app/2.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL, nil, geohttp.WithUserAgent("my-app/2.0"))

		resp, err := client.Do(context.Background(), &geohttp.Request{
			Path:    "/geographic/poi/types",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := newClient(t, server.URL, nil, geohttp.WithLogger(logger), geohttp.WithDebug(true))

		_, err := client.Do(context.Background(), &geohttp.Request{
			Path:           "/geographic/poi/list",
			Query:          url.Values{"key": {"secret"}, "city": {"Nantes"}},
			Headers:        map[string]string{"X-Api-Key": "secret"},
			SensitiveQuery: []string{"key"},
		})
		require.NoError(t, err)

		request := logger.find("HTTP Request")
		require.NotNil(t, request)
		assert.NotContains(t, request["url"], "secret")
		assert.Contains(t, request["url"], "city=Nantes")

		headers, ok := request["headers"].(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "***", headers["X-Api-Key"])

		response := logger.find("HTTP Response")
		require.NotNil(t, response)
		assert.Equal(t, http.StatusOK, response["status"])
	})

	t.Run("without debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := newClient(t, server.URL, nil, geohttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "/geographic/apiVersion", nil)
		require.NoError(t, err)
		assert.Nil(t, logger.find("HTTP Request"))
		assert.Nil(t, logger.find("HTTP Response"))
	})
}

func TestClient_NoRetry(t *testing.T) {
	t.Parallel()

	t.Run("single attempt on 5xx", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		resp, err := newClient(t, server.URL, nil).Get(context.Background(), "/geographic/apiVersion", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("single attempt on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.Header().Set("Retry-After", "1")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		resp, err := newClient(t, server.URL, nil).Get(context.Background(), "/geographic/apiVersion", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})
}

func TestClient_TransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		serverURL := server.URL
		server.Close()

		resp, err := newClient(t, serverURL, nil).Get(context.Background(), "/geographic/apiVersion", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.False(t, geo.IsResponseError(err))
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(t, server.URL, nil, geohttp.WithTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/geographic/apiVersion", nil)
		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newClient(t, server.URL, nil).Get(ctx, "/geographic/apiVersion", nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_WithHTTPClient(t *testing.T) {
	t.Parallel()

	var used int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	custom := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&used, 1)

		return http.DefaultTransport.RoundTrip(req)
	})}

	resp, err := newClient(t, server.URL, nil, geohttp.WithHTTPClient(custom)).Get(context.Background(), "/x", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&used))
}

func TestNewClient_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := geohttp.NewClient("http://[::1", nil)
	require.Error(t, err)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
