package geo

import "slices"

// Parameter names shared by several endpoints.
const (
	ParamID               = "id"
	ParamLatitude         = "latitude"
	ParamLongitude        = "longitude"
	ParamRadius           = "radius"
	ParamMaximumLatitude  = "maximumLatitude"
	ParamMaximumLongitude = "maximumLongitude"
	ParamMinimumLatitude  = "minimumLatitude"
	ParamMinimumLongitude = "minimumLongitude"
	ParamFilter           = "filter"
	ParamName             = "name"
	ParamMainType         = "mainType"
	ParamType             = "type"
	ParamAddress          = "address"
	ParamCountry          = "country"
	ParamState            = "state"
	ParamCounty           = "county"
	ParamCity             = "city"
	ParamPostalCode       = "postalCode"
	ParamStreet           = "street"
	ParamRankBy           = "rankBy"
	ParamOpenNow          = "openNow"
	ParamMinimumRating    = "minimumRating"
	ParamMaximumRating    = "maximumRating"
	ParamMinimumPrice     = "minimumPrice"
	ParamMaximumPrice     = "maximumPrice"
	ParamLimit            = "limit"
	ParamOffset           = "offset"
	ParamCallback         = "callback"
	ParamBundleID         = "bundleId"
	ParamPackageName      = "packageName"
	ParamCertFingerprint  = "certFingerprint"

	// ParamAcceptLanguage is sent as the Accept-Language header, not a query parameter.
	ParamAcceptLanguage = "acceptLanguage"

	// QueryParametersKey holds extra query parameters merged last into the
	// query string. Its value is a Params or map[string]interface{}.
	QueryParametersKey = "$queryParameters"
)

// Endpoint describes one GET operation of the API.
type Endpoint struct {
	Name     string   `json:"name"               yaml:"name"`
	Path     string   `json:"path"               yaml:"path"`
	Allowed  []string `json:"allowed"            yaml:"allowed"`
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
}

func (e Endpoint) clone() Endpoint {
	e.Allowed = slices.Clone(e.Allowed)
	e.Required = slices.Clone(e.Required)

	return e
}

// IsAllowed reports whether name may be copied into the request.
func (e Endpoint) IsAllowed(name string) bool {
	for _, allowed := range e.Allowed {
		if allowed == name {
			return true
		}
	}

	return false
}

var (
	commonParams = []string{ParamAcceptLanguage, ParamCallback, ParamBundleID, ParamPackageName, ParamCertFingerprint}
	infoParams   = []string{ParamCallback, ParamBundleID, ParamPackageName, ParamCertFingerprint}

	locationParams = []string{
		ParamLatitude, ParamLongitude, ParamRadius,
		ParamAddress, ParamCountry, ParamState, ParamCounty, ParamCity, ParamPostalCode,
		ParamLimit, ParamOffset,
	}

	poiParams = []string{
		ParamLatitude, ParamLongitude, ParamRadius,
		ParamMaximumLatitude, ParamMaximumLongitude, ParamMinimumLatitude, ParamMinimumLongitude,
		ParamFilter, ParamName, ParamMainType, ParamType,
		ParamAddress, ParamCountry, ParamState, ParamCounty, ParamCity, ParamPostalCode, ParamStreet,
		ParamRankBy, ParamOpenNow,
		ParamMinimumRating, ParamMaximumRating, ParamMinimumPrice, ParamMaximumPrice,
		ParamLimit, ParamOffset,
	}
)

// The fixed endpoint table.
var (
	EndpointPOIList = Endpoint{
		Name: "poi-list", Path: "/geographic/poi/list", Allowed: withCommon(poiParams...),
	}
	EndpointPOIGet = Endpoint{
		Name: "poi-get", Path: "/geographic/poi/get", Allowed: withCommon(ParamID), Required: []string{ParamID},
	}
	EndpointPOITypes = Endpoint{
		Name: "poi-types", Path: "/geographic/poi/types", Allowed: withCommon(),
	}
	EndpointSupportedLanguages = Endpoint{
		Name: "supported-languages", Path: "/geographic/supportedLanguages", Allowed: slices.Clone(infoParams),
	}
	EndpointAPIVersion = Endpoint{Name: "api-version", Path: "/geographic/apiVersion", Allowed: slices.Clone(infoParams)}

	EndpointDestinationsList = Endpoint{
		Name: "destinations-list", Path: "/geographic/destinations/list", Allowed: withCommon(locationParams...),
	}
	EndpointDestinationsGet = Endpoint{
		Name: "destinations-get", Path: "/geographic/destinations/get", Allowed: withCommon(ParamID), Required: []string{ParamID},
	}

	EndpointInspirationsList = Endpoint{
		Name: "inspirations-list", Path: "/geographic/inspirations/list", Allowed: withCommon(locationParams...),
	}
	EndpointInspirationsDossiers = Endpoint{
		Name: "inspirations-dossiers", Path: "/geographic/inspirations/dossiers/list", Allowed: withCommon(locationParams...),
	}
	EndpointInspirationsEvents = Endpoint{
		Name: "inspirations-events", Path: "/geographic/inspirations/events/list", Allowed: withCommon(locationParams...),
	}
	EndpointInspirationsNewsInBrief = Endpoint{
		Name: "inspirations-news-in-brief", Path: "/geographic/inspirations/newsInBrief/list", Allowed: withCommon(locationParams...),
	}
	EndpointInspirationsSlideShows = Endpoint{
		Name: "inspirations-slide-shows", Path: "/geographic/inspirations/slideShows/list", Allowed: withCommon(locationParams...),
	}
	EndpointInspirationsTests = Endpoint{
		Name: "inspirations-tests", Path: "/geographic/inspirations/tests/list", Allowed: withCommon(locationParams...),
	}
	EndpointInspirationsGet = Endpoint{
		Name: "inspirations-get", Path: "/geographic/inspirations/get", Allowed: withCommon(ParamID), Required: []string{ParamID},
	}
)

// Endpoints returns a copy of the fixed endpoint table.
func Endpoints() []Endpoint {
	endpoints := []Endpoint{
		EndpointPOIList,
		EndpointPOIGet,
		EndpointPOITypes,
		EndpointSupportedLanguages,
		EndpointAPIVersion,
		EndpointDestinationsList,
		EndpointDestinationsGet,
		EndpointInspirationsList,
		EndpointInspirationsDossiers,
		EndpointInspirationsEvents,
		EndpointInspirationsNewsInBrief,
		EndpointInspirationsSlideShows,
		EndpointInspirationsTests,
		EndpointInspirationsGet,
	}

	for i := range endpoints {
		endpoints[i] = endpoints[i].clone()
	}

	return endpoints
}

// LookupEndpoint finds an endpoint by name or path.
func LookupEndpoint(nameOrPath string) (Endpoint, bool) {
	for _, endpoint := range Endpoints() {
		if endpoint.Name == nameOrPath || endpoint.Path == nameOrPath {
			return endpoint, true
		}
	}

	return Endpoint{}, false
}

func withCommon(names ...string) []string {
	all := make([]string, 0, len(names)+len(commonParams))
	all = append(all, names...)

	return append(all, commonParams...)
}
