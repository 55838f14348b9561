//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/fivetwenty-io/geographic-client/pkg/geoclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// GeoIntegrationTestSuite runs the client against a live API
type GeoIntegrationTestSuite struct {
	suite.Suite

	config *TestConfig
	client geo.Client
}

// SetupSuite initializes the test environment
func (suite *GeoIntegrationTestSuite) SetupSuite() {
	suite.config = LoadTestConfig()
	suite.config.SkipIfMissingConfig(suite.T())

	token := geo.Token{Value: suite.config.APIKey}
	if suite.config.KeyName != "" {
		token.HeaderOrQueryName = suite.config.KeyName
		token.IsQuery = true
	}

	client, err := geoclient.New(&geo.Config{
		Domain:      suite.config.Domain,
		Token:       token,
		HTTPTimeout: 30 * time.Second,
	})
	suite.Require().NoError(err)

	suite.client = client
}

func (suite *GeoIntegrationTestSuite) context() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	suite.T().Cleanup(cancel)

	return ctx
}

func (suite *GeoIntegrationTestSuite) location() geo.Location {
	lat, err := strconv.ParseFloat(suite.config.Latitude, 64)
	suite.Require().NoError(err)

	lon, err := strconv.ParseFloat(suite.config.Longitude, 64)
	suite.Require().NoError(err)

	radius := 2000

	return geo.Location{Latitude: &lat, Longitude: &lon, Radius: &radius}
}

func (suite *GeoIntegrationTestSuite) TestInfo() {
	version, err := suite.client.APIVersion(suite.context(), nil)
	suite.Require().NoError(err)
	suite.NotEmpty(version.Version)

	languages, err := suite.client.SupportedLanguages(suite.context(), nil)
	suite.Require().NoError(err)
	suite.NotEmpty(languages.Languages)
}

func (suite *GeoIntegrationTestSuite) TestPOIListAndGet() {
	limit := 5

	pois, err := suite.client.POIs().List(suite.context(), &geo.POIListRequest{
		Location: suite.location(),
		Page:     geo.Page{Limit: &limit},
	})
	suite.Require().NoError(err)
	suite.LessOrEqual(len(pois.PointsOfInterest), limit)

	if len(pois.PointsOfInterest) == 0 {
		suite.T().Skip("no points of interest around the test location")
	}

	first := pois.PointsOfInterest[0]

	details, err := suite.client.POIs().Get(suite.context(), &geo.GetRequest{ID: first.ID})
	suite.Require().NoError(err)
	suite.Require().NotNil(details.PointOfInterest)
	suite.Equal(first.ID, details.PointOfInterest.ID)
}

func (suite *GeoIntegrationTestSuite) TestUnknownPOI() {
	_, err := suite.client.POIs().Get(suite.context(), &geo.GetRequest{ID: "geo-client-integration-missing"})
	suite.Require().Error(err)
	suite.True(geo.IsResponseError(err))
}

func (suite *GeoIntegrationTestSuite) TestInspirationLists() {
	limit := 3
	request := &geo.LocationListRequest{Location: suite.location(), Page: geo.Page{Limit: &limit}}
	inspirations := suite.client.Inspirations()

	for name, list := range map[string]func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error){
		"list":          inspirations.List,
		"dossiers":      inspirations.Dossiers,
		"events":        inspirations.Events,
		"news-in-brief": inspirations.NewsInBrief,
		"slide-shows":   inspirations.SlideShows,
		"tests":         inspirations.Tests,
	} {
		result, err := list(suite.context(), request)
		if suite.NoError(err, "inspirations %s", name) {
			suite.LessOrEqual(len(result.Inspirations), limit, "inspirations %s", name)
		}
	}
}

func (suite *GeoIntegrationTestSuite) TestDestinationsList() {
	destinations, err := suite.client.Destinations().List(suite.context(), nil)
	suite.Require().NoError(err)
	suite.NotNil(destinations)

	limit := 3

	limited, err := suite.client.Destinations().List(suite.context(), &geo.LocationListRequest{
		Page: geo.Page{Limit: &limit},
	})
	suite.Require().NoError(err)
	suite.LessOrEqual(len(limited.Destinations), limit)
}

func (suite *GeoIntegrationTestSuite) TestDestinationsListAndGet() {
	limit := 1

	destinations, err := suite.client.Destinations().List(suite.context(), &geo.LocationListRequest{
		Page: geo.Page{Limit: &limit},
	})
	suite.Require().NoError(err)
	suite.LessOrEqual(len(destinations.Destinations), limit)

	if len(destinations.Destinations) == 0 {
		suite.T().Skip("no destinations returned")
	}

	first := destinations.Destinations[0]

	details, err := suite.client.Destinations().Get(suite.context(), &geo.GetRequest{ID: first.ID})
	suite.Require().NoError(err)
	suite.Require().NotNil(details.Destination)
	suite.Equal(first.ID, details.Destination.ID)
}

func (suite *GeoIntegrationTestSuite) TestInspirationsListAndGet() {
	limit := 2

	inspirations, err := suite.client.Inspirations().List(suite.context(), &geo.LocationListRequest{
		Page: geo.Page{Limit: &limit},
	})
	suite.Require().NoError(err)
	suite.LessOrEqual(len(inspirations.Inspirations), limit)

	if len(inspirations.Inspirations) == 0 {
		suite.T().Skip("no inspirations returned")
	}

	first := inspirations.Inspirations[0]

	details, err := suite.client.Inspirations().Get(suite.context(), &geo.GetRequest{ID: first.ID})
	suite.Require().NoError(err)
	suite.Require().NotNil(details.Inspiration)
	suite.Equal(first.ID, details.Inspiration.ID)
}

func TestGeoIntegrationSuite(t *testing.T) {
	suite.Run(t, new(GeoIntegrationTestSuite))
}

func TestCLIIntegration(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfMissingBinary(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("api-version")
	require.NoError(t, err, stderr)

	var version geo.APIVersion
	require.NoError(t, json.Unmarshal([]byte(stdout), &version))
	assert.NotEmpty(t, version.Version)

	stdout, stderr, err = runner.Run("call", "supported-languages")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "languages")

	_, _, err = runner.Run("call", "poi-get")
	assert.Error(t, err, "missing id must fail before reaching the API")
}
