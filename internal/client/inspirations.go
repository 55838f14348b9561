package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/geographic-client/internal/http"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// InspirationsClient implements geo.InspirationsClient.
type InspirationsClient struct {
	httpClient *http.Client
}

// NewInspirationsClient creates a new inspirations client.
func NewInspirationsClient(httpClient *http.Client) *InspirationsClient {
	return &InspirationsClient{
		httpClient: httpClient,
	}
}

// List implements geo.InspirationsClient.List.
func (c *InspirationsClient) List(ctx context.Context, request *geo.LocationListRequest) (*geo.InspirationList, error) {
	return c.list(ctx, geo.EndpointInspirationsList, request, "inspirations")
}

// Dossiers implements geo.InspirationsClient.Dossiers.
func (c *InspirationsClient) Dossiers(ctx context.Context, request *geo.LocationListRequest) (*geo.InspirationList, error) {
	return c.list(ctx, geo.EndpointInspirationsDossiers, request, "dossiers")
}

// Events implements geo.InspirationsClient.Events.
func (c *InspirationsClient) Events(ctx context.Context, request *geo.LocationListRequest) (*geo.InspirationList, error) {
	return c.list(ctx, geo.EndpointInspirationsEvents, request, "events")
}

// NewsInBrief implements geo.InspirationsClient.NewsInBrief.
func (c *InspirationsClient) NewsInBrief(ctx context.Context, request *geo.LocationListRequest) (*geo.InspirationList, error) {
	return c.list(ctx, geo.EndpointInspirationsNewsInBrief, request, "news in brief")
}

// SlideShows implements geo.InspirationsClient.SlideShows.
func (c *InspirationsClient) SlideShows(ctx context.Context, request *geo.LocationListRequest) (*geo.InspirationList, error) {
	return c.list(ctx, geo.EndpointInspirationsSlideShows, request, "slide shows")
}

// Tests implements geo.InspirationsClient.Tests.
func (c *InspirationsClient) Tests(ctx context.Context, request *geo.LocationListRequest) (*geo.InspirationList, error) {
	return c.list(ctx, geo.EndpointInspirationsTests, request, "tests")
}

// Get implements geo.InspirationsClient.Get.
func (c *InspirationsClient) Get(ctx context.Context, request *geo.GetRequest) (*geo.InspirationDetails, error) {
	result, err := c.httpClient.Dispatch(ctx, geo.EndpointInspirationsGet, request.Params())
	if err != nil {
		return nil, fmt.Errorf("getting inspiration: %w", err)
	}

	return decode[geo.InspirationDetails](result, "inspiration")
}

func (c *InspirationsClient) list(
	ctx context.Context, endpoint geo.Endpoint, request *geo.LocationListRequest, what string,
) (*geo.InspirationList, error) {
	result, err := c.httpClient.Dispatch(ctx, endpoint, request.Params())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	return decode[geo.InspirationList](result, what+" list")
}
