package geo

// Point is a WGS84 coordinate.
type Point struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
}

// Address is a postal address as returned by the API.
type Address struct {
	Street     string `json:"street,omitempty"     yaml:"street,omitempty"`
	PostalCode string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	City       string `json:"city,omitempty"       yaml:"city,omitempty"`
	County     string `json:"county,omitempty"     yaml:"county,omitempty"`
	State      string `json:"state,omitempty"      yaml:"state,omitempty"`
	Country    string `json:"country,omitempty"    yaml:"country,omitempty"`
	Formatted  string `json:"formatted,omitempty"  yaml:"formatted,omitempty"`
}

// Photo references an image attached to a resource.
type Photo struct {
	URL         string `json:"url"                   yaml:"url"`
	Width       int    `json:"width,omitempty"       yaml:"width,omitempty"`
	Height      int    `json:"height,omitempty"      yaml:"height,omitempty"`
	Attribution string `json:"attribution,omitempty" yaml:"attribution,omitempty"`
}

// POI is a point of interest.
type POI struct {
	ID          string   `json:"id"                    yaml:"id"`
	Name        string   `json:"name"                  yaml:"name"`
	MainType    string   `json:"mainType,omitempty"    yaml:"mainType,omitempty"`
	Types       []string `json:"types,omitempty"       yaml:"types,omitempty"`
	Location    *Point   `json:"location,omitempty"    yaml:"location,omitempty"`
	Address     *Address `json:"address,omitempty"     yaml:"address,omitempty"`
	Rating      *float64 `json:"rating,omitempty"      yaml:"rating,omitempty"`
	PriceLevel  *int     `json:"priceLevel,omitempty"  yaml:"priceLevel,omitempty"`
	Phone       string   `json:"phone,omitempty"       yaml:"phone,omitempty"`
	Website     string   `json:"website,omitempty"     yaml:"website,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	OpenNow     *bool    `json:"openNow,omitempty"     yaml:"openNow,omitempty"`
	Photos      []Photo  `json:"photos,omitempty"      yaml:"photos,omitempty"`
}

// POIList is the response of the POI list endpoint.
type POIList struct {
	PointsOfInterest []POI `json:"pointsOfInterest" yaml:"pointsOfInterest"`
}

// POIDetails is the response of the POI get endpoint.
type POIDetails struct {
	PointOfInterest *POI `json:"pointOfInterest,omitempty" yaml:"pointOfInterest,omitempty"`
}

// POIType is one entry of the POI type catalogue.
type POIType struct {
	Name     string   `json:"name"               yaml:"name"`
	Label    string   `json:"label,omitempty"    yaml:"label,omitempty"`
	SubTypes []string `json:"subTypes,omitempty" yaml:"subTypes,omitempty"`
}

// POITypes is the response of the POI types endpoint.
type POITypes struct {
	Types []POIType `json:"types" yaml:"types"`
}

// Destination is a travel destination such as a city or region.
type Destination struct {
	ID          string   `json:"id"                    yaml:"id"`
	Name        string   `json:"name"                  yaml:"name"`
	Type        string   `json:"type,omitempty"        yaml:"type,omitempty"`
	Location    *Point   `json:"location,omitempty"    yaml:"location,omitempty"`
	Address     *Address `json:"address,omitempty"     yaml:"address,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Photos      []Photo  `json:"photos,omitempty"      yaml:"photos,omitempty"`
}

// DestinationList is the response of the destinations list endpoint.
type DestinationList struct {
	Destinations []Destination `json:"destinations" yaml:"destinations"`
}

// DestinationDetails is the response of the destinations get endpoint.
type DestinationDetails struct {
	Destination *Destination `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// Inspiration is an editorial item: dossier, event, news, slide show or test.
type Inspiration struct {
	ID        string   `json:"id"                  yaml:"id"`
	Type      string   `json:"type,omitempty"      yaml:"type,omitempty"`
	Title     string   `json:"title"               yaml:"title"`
	Summary   string   `json:"summary,omitempty"   yaml:"summary,omitempty"`
	Content   string   `json:"content,omitempty"   yaml:"content,omitempty"`
	Location  *Point   `json:"location,omitempty"  yaml:"location,omitempty"`
	Address   *Address `json:"address,omitempty"   yaml:"address,omitempty"`
	Published string   `json:"published,omitempty" yaml:"published,omitempty"`
	Photos    []Photo  `json:"photos,omitempty"    yaml:"photos,omitempty"`
}

// InspirationList is the response of every inspiration list endpoint.
type InspirationList struct {
	Inspirations []Inspiration `json:"inspirations" yaml:"inspirations"`
}

// InspirationDetails is the response of the inspirations get endpoint.
type InspirationDetails struct {
	Inspiration *Inspiration `json:"inspiration,omitempty" yaml:"inspiration,omitempty"`
}

// SupportedLanguages lists the languages the API can answer in.
type SupportedLanguages struct {
	Languages []string `json:"languages" yaml:"languages"`
}

// APIVersion reports the deployed API version.
type APIVersion struct {
	Version string `json:"version" yaml:"version"`
}
