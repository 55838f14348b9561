package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/geographic-client/internal/http"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// DestinationsClient implements geo.DestinationsClient.
type DestinationsClient struct {
	httpClient *http.Client
}

// NewDestinationsClient creates a new destinations client.
func NewDestinationsClient(httpClient *http.Client) *DestinationsClient {
	return &DestinationsClient{
		httpClient: httpClient,
	}
}

// List implements geo.DestinationsClient.List.
func (c *DestinationsClient) List(ctx context.Context, request *geo.LocationListRequest) (*geo.DestinationList, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointDestinationsList, request.Params())
	if err != nil {
		return nil, fmt.Errorf("listing destinations: %w", err)
	}

	return decode[geo.DestinationList](result, "destinations list")
}

// Get implements geo.DestinationsClient.Get.
func (c *DestinationsClient) Get(ctx context.Context, request *geo.GetRequest) (*geo.DestinationDetails, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointDestinationsGet, request.Params())
	if err != nil {
		return nil, fmt.Errorf("getting destination: %w", err)
	}

	return decode[geo.DestinationDetails](result, "destination")
}
