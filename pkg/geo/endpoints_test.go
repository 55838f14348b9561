package geo_test

import (
	"strings"
	"testing"

	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	endpoints := geo.Endpoints()
	require.Len(t, endpoints, 14)

	names := map[string]bool{}
	paths := map[string]bool{}

	for _, endpoint := range endpoints {
		assert.True(t, strings.HasPrefix(endpoint.Path, "/geographic/"), endpoint.Path)
		assert.False(t, names[endpoint.Name], "duplicate name %s", endpoint.Name)
		assert.False(t, paths[endpoint.Path], "duplicate path %s", endpoint.Path)
		names[endpoint.Name] = true
		paths[endpoint.Path] = true

		for _, required := range endpoint.Required {
			assert.True(t, endpoint.IsAllowed(required), "%s requires %s", endpoint.Name, required)
		}
	}
}

func TestEndpoint_IsAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, geo.EndpointPOIList.IsAllowed("minimumRating"))
	assert.True(t, geo.EndpointPOIList.IsAllowed("acceptLanguage"))
	assert.False(t, geo.EndpointDestinationsList.IsAllowed("minimumRating"))
	assert.False(t, geo.EndpointAPIVersion.IsAllowed("acceptLanguage"))
	assert.True(t, geo.EndpointAPIVersion.IsAllowed("callback"))
	assert.Equal(t, []string{"id"}, geo.EndpointInspirationsGet.Required)
	assert.Empty(t, geo.EndpointInspirationsTests.Required)
}

func TestLookupEndpoint(t *testing.T) {
	t.Parallel()

	endpoint, ok := geo.LookupEndpoint("poi-get")
	require.True(t, ok)
	assert.Equal(t, "/geographic/poi/get", endpoint.Path)

	endpoint, ok = geo.LookupEndpoint("/geographic/inspirations/newsInBrief/list")
	require.True(t, ok)
	assert.Equal(t, "inspirations-news-in-brief", endpoint.Name)

	_, ok = geo.LookupEndpoint("/geographic/unknown")
	assert.False(t, ok)
}

func TestEndpoints_ReturnCopies(t *testing.T) {
	t.Parallel()

	endpoint, ok := geo.LookupEndpoint("poi-get")
	require.True(t, ok)

	endpoint.Required[0] = "changed"
	endpoint.Allowed[0] = "changed"

	endpoints := geo.Endpoints()
	endpoints[0].Allowed[0] = "changed"

	assert.Equal(t, []string{"id"}, geo.EndpointPOIGet.Required)
	assert.Equal(t, []string{"id"}, geo.EndpointDestinationsGet.Required)
	assert.Equal(t, "id", geo.EndpointPOIGet.Allowed[0])
	assert.Equal(t, "latitude", geo.EndpointPOIList.Allowed[0])

	again, ok := geo.LookupEndpoint("poi-get")
	require.True(t, ok)
	assert.Equal(t, []string{"id"}, again.Required)
}
