package geo

// Params is the parameter bag passed to Client.Call. Keys are wire names.
// A nil value counts as absent. Slices are sent as repeated query values.
type Params map[string]interface{}

// Set stores value under name and returns the bag for chaining.
func (p Params) Set(name string, value interface{}) Params {
	p[name] = value

	return p
}

// CommonParams are accepted by most endpoints.
//
// A JSONP reply cannot be decoded into the typed models, so the callback
// parameter is only reachable through Client.Call with ParamCallback.
type CommonParams struct {
	// AcceptLanguage is sent as the Accept-Language header.
	AcceptLanguage string `json:"acceptLanguage,omitempty" yaml:"acceptLanguage,omitempty"`

	// Mobile API key restrictions.
	BundleID        string `json:"bundleId,omitempty"        yaml:"bundleId,omitempty"`
	PackageName     string `json:"packageName,omitempty"     yaml:"packageName,omitempty"`
	CertFingerprint string `json:"certFingerprint,omitempty" yaml:"certFingerprint,omitempty"`

	// QueryParameters are merged last and win over every other parameter.
	QueryParameters map[string]interface{} `json:"-" yaml:"-"`
}

func (c *CommonParams) apply(params Params) {
	setString(params, ParamAcceptLanguage, c.AcceptLanguage)
	setString(params, ParamBundleID, c.BundleID)
	setString(params, ParamPackageName, c.PackageName)
	setString(params, ParamCertFingerprint, c.CertFingerprint)

	if len(c.QueryParameters) > 0 {
		params[QueryParametersKey] = c.QueryParameters
	}
}

// InfoRequest carries the parameters of the informational endpoints.
type InfoRequest struct {
	CommonParams
}

// Params converts the request into a parameter bag.
func (r *InfoRequest) Params() Params {
	params := Params{}
	if r != nil {
		r.apply(params)
	}

	return params
}

// GetRequest fetches one resource by id.
type GetRequest struct {
	CommonParams

	ID string `json:"id" yaml:"id"`
}

// Params converts the request into a parameter bag.
func (r *GetRequest) Params() Params {
	params := Params{}
	if r == nil {
		return params
	}

	r.apply(params)
	setString(params, ParamID, r.ID)

	return params
}

// Location selects resources near a point or matching an address.
type Location struct {
	Latitude   *float64 `json:"latitude,omitempty"   yaml:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"  yaml:"longitude,omitempty"`
	Radius     *int     `json:"radius,omitempty"     yaml:"radius,omitempty"`
	Address    string   `json:"address,omitempty"    yaml:"address,omitempty"`
	Country    string   `json:"country,omitempty"    yaml:"country,omitempty"`
	State      string   `json:"state,omitempty"      yaml:"state,omitempty"`
	County     string   `json:"county,omitempty"     yaml:"county,omitempty"`
	City       string   `json:"city,omitempty"       yaml:"city,omitempty"`
	PostalCode string   `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
}

func (l *Location) apply(params Params) {
	setFloat(params, ParamLatitude, l.Latitude)
	setFloat(params, ParamLongitude, l.Longitude)
	setInt(params, ParamRadius, l.Radius)
	setString(params, ParamAddress, l.Address)
	setString(params, ParamCountry, l.Country)
	setString(params, ParamState, l.State)
	setString(params, ParamCounty, l.County)
	setString(params, ParamCity, l.City)
	setString(params, ParamPostalCode, l.PostalCode)
}

// Page bounds a list.
type Page struct {
	Limit  *int `json:"limit,omitempty"  yaml:"limit,omitempty"`
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
}

func (p *Page) apply(params Params) {
	setInt(params, ParamLimit, p.Limit)
	setInt(params, ParamOffset, p.Offset)
}

// LocationListRequest lists destinations or inspirations.
type LocationListRequest struct {
	CommonParams
	Location
	Page
}

// Params converts the request into a parameter bag.
func (r *LocationListRequest) Params() Params {
	params := Params{}
	if r == nil {
		return params
	}

	r.CommonParams.apply(params)
	r.Location.apply(params)
	r.Page.apply(params)

	return params
}

// POIListRequest lists points of interest.
type POIListRequest struct {
	CommonParams
	Location
	Page

	MaximumLatitude  *float64 `json:"maximumLatitude,omitempty"  yaml:"maximumLatitude,omitempty"`
	MaximumLongitude *float64 `json:"maximumLongitude,omitempty" yaml:"maximumLongitude,omitempty"`
	MinimumLatitude  *float64 `json:"minimumLatitude,omitempty"  yaml:"minimumLatitude,omitempty"`
	MinimumLongitude *float64 `json:"minimumLongitude,omitempty" yaml:"minimumLongitude,omitempty"`

	Filter   []string `json:"filter,omitempty"   yaml:"filter,omitempty"`
	Name     []string `json:"name,omitempty"     yaml:"name,omitempty"`
	MainType string   `json:"mainType,omitempty" yaml:"mainType,omitempty"`
	Type     []string `json:"type,omitempty"     yaml:"type,omitempty"`
	Street   string   `json:"street,omitempty"   yaml:"street,omitempty"`

	RankBy        string   `json:"rankBy,omitempty"        yaml:"rankBy,omitempty"`
	OpenNow       *bool    `json:"openNow,omitempty"       yaml:"openNow,omitempty"`
	MinimumRating *float64 `json:"minimumRating,omitempty" yaml:"minimumRating,omitempty"`
	MaximumRating *float64 `json:"maximumRating,omitempty" yaml:"maximumRating,omitempty"`
	MinimumPrice  *int     `json:"minimumPrice,omitempty"  yaml:"minimumPrice,omitempty"`
	MaximumPrice  *int     `json:"maximumPrice,omitempty"  yaml:"maximumPrice,omitempty"`
}

// Params converts the request into a parameter bag.
func (r *POIListRequest) Params() Params {
	params := Params{}
	if r == nil {
		return params
	}

	r.CommonParams.apply(params)
	r.Location.apply(params)
	r.Page.apply(params)

	setFloat(params, ParamMaximumLatitude, r.MaximumLatitude)
	setFloat(params, ParamMaximumLongitude, r.MaximumLongitude)
	setFloat(params, ParamMinimumLatitude, r.MinimumLatitude)
	setFloat(params, ParamMinimumLongitude, r.MinimumLongitude)
	setStrings(params, ParamFilter, r.Filter)
	setStrings(params, ParamName, r.Name)
	setString(params, ParamMainType, r.MainType)
	setStrings(params, ParamType, r.Type)
	setString(params, ParamStreet, r.Street)
	setString(params, ParamRankBy, r.RankBy)
	setFloat(params, ParamMinimumRating, r.MinimumRating)
	setFloat(params, ParamMaximumRating, r.MaximumRating)
	setInt(params, ParamMinimumPrice, r.MinimumPrice)
	setInt(params, ParamMaximumPrice, r.MaximumPrice)

	if r.OpenNow != nil {
		params[ParamOpenNow] = *r.OpenNow
	}

	return params
}

func setString(params Params, name, value string) {
	if value != "" {
		params[name] = value
	}
}

func setStrings(params Params, name string, values []string) {
	if len(values) > 0 {
		params[name] = values
	}
}

func setFloat(params Params, name string, value *float64) {
	if value != nil {
		params[name] = *value
	}
}

func setInt(params Params, name string, value *int) {
	if value != nil {
		params[name] = *value
	}
}
