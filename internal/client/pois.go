package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/geographic-client/internal/http"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// POIsClient implements geo.POIsClient.
type POIsClient struct {
	httpClient *http.Client
}

// NewPOIsClient creates a new points of interest client.
func NewPOIsClient(httpClient *http.Client) *POIsClient {
	return &POIsClient{
		httpClient: httpClient,
	}
}

// List implements geo.POIsClient.List.
func (c *POIsClient) List(ctx context.Context, request *geo.POIListRequest) (*geo.POIList, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointPOIList, request.Params())
	if err != nil {
		return nil, fmt.Errorf("listing POIs: %w", err)
	}

	return decode[geo.POIList](result, "POI list")
}

// Get implements geo.POIsClient.Get.
func (c *POIsClient) Get(ctx context.Context, request *geo.GetRequest) (*geo.POIDetails, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointPOIGet, request.Params())
	if err != nil {
		return nil, fmt.Errorf("getting POI: %w", err)
	}

	return decode[geo.POIDetails](result, "POI")
}

// Types implements geo.POIsClient.Types.
func (c *POIsClient) Types(ctx context.Context, request *geo.InfoRequest) (*geo.POITypes, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointPOITypes, request.Params())
	if err != nil {
		return nil, fmt.Errorf("getting POI types: %w", err)
	}

	return decode[geo.POITypes](result, "POI types")
}
