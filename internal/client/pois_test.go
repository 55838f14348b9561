package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

func TestPOIsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geographic/poi/list", r.URL.Path)
		assert.Equal(t, "LES SENTIERS DE DAKAR", r.URL.Query().Get("name"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "abc", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pointsOfInterest":[{"id":"poi-1","name":"LES SENTIERS DE DAKAR",` +
			`"mainType":"restaurant","location":{"lat":47.21951,"lon":-1.553694},"rating":4.5}]}`))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL, geo.Token{Value: "abc", HeaderOrQueryName: "key", IsQuery: true})

	limit := 10

	list, err := client.POIs().List(context.Background(), &geo.POIListRequest{
		Name: []string{"LES SENTIERS DE DAKAR"},
		Page: geo.Page{Limit: &limit},
	})
	require.NoError(t, err)
	require.Len(t, list.PointsOfInterest, 1)

	poi := list.PointsOfInterest[0]
	assert.Equal(t, "poi-1", poi.ID)
	assert.Equal(t, "restaurant", poi.MainType)
	require.NotNil(t, poi.Location)
	assert.InDelta(t, 47.21951, poi.Location.Latitude, 1e-9)
	require.NotNil(t, poi.Rating)
	assert.InDelta(t, 4.5, *poi.Rating, 1e-9)
}

func TestPOIsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geographic/poi/get", r.URL.Path)
		assert.Equal(t, "poi-1", r.URL.Query().Get("id"))
		assert.Equal(t, "fr", r.Header.Get("Accept-Language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pointOfInterest":{"id":"poi-1","name":"Tour Bretagne"}}`))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL, geo.Token{})

	details, err := client.POIs().Get(context.Background(), &geo.GetRequest{
		ID:           "poi-1",
		CommonParams: geo.CommonParams{AcceptLanguage: "fr"},
	})
	require.NoError(t, err)
	require.NotNil(t, details.PointOfInterest)
	assert.Equal(t, "Tour Bretagne", details.PointOfInterest.Name)
}

func TestPOIsClient_Get_MissingID(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL, geo.Token{})

	_, err := client.POIs().Get(context.Background(), &geo.GetRequest{})
	require.Error(t, err)
	assert.True(t, geo.IsMissingParameter(err))

	_, err = client.POIs().Get(context.Background(), nil)
	require.ErrorIs(t, err, geo.ErrMissingRequiredParameter)

	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestPOIsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(jsonHandler(t, "/geographic/poi/get", http.StatusNotFound, map[string]interface{}{
		"error": map[string]interface{}{"message": "No POI with this id", "statusCode": 404},
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL, geo.Token{})

	details, err := client.POIs().Get(context.Background(), &geo.GetRequest{ID: "missing"})
	require.Error(t, err)
	assert.Nil(t, details)
	assert.True(t, geo.IsNotFound(err))
	assert.Contains(t, err.Error(), "getting POI")
	assert.Contains(t, err.Error(), "No POI with this id")
}

func TestPOIsClient_Types(t *testing.T) {
	t.Parallel()

	RunGetOperationTests(t, []TestGetOperation{
		{
			Name:         "types",
			ExpectedPath: "/geographic/poi/types",
			Call: func(c *Client) (interface{}, error) {
				return c.POIs().Types(context.Background(), &geo.InfoRequest{})
			},
			Response: map[string]interface{}{
				"types": []map[string]interface{}{
					{"name": "restaurant", "subTypes": []string{"french", "italian"}},
					{"name": "museum"},
				},
			},
			Verify: func(t *testing.T, got interface{}) {
				t.Helper()

				types, ok := got.(*geo.POITypes)
				require.True(t, ok)
				require.Len(t, types.Types, 2)
				assert.Equal(t, []string{"french", "italian"}, types.Types[0].SubTypes)
			},
		},
	})
}

func TestPOIsClient_List_NoContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	list, err := NewTestClient(t, server.URL, geo.Token{}).POIs().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list.PointsOfInterest)
}

func TestPOIsClient_List_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pointsOfInterest":`))
	}))
	defer server.Close()

	_, err := NewTestClient(t, server.URL, geo.Token{}).POIs().List(context.Background(), &geo.POIListRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing POI list")
	assert.False(t, geo.IsResponseError(err))
}
