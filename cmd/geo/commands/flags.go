package commands

import (
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/spf13/cobra"
)

// addLocationFlags registers the location and paging filters shared by the
// list commands.
func addLocationFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64("latitude", 0, "latitude of the search center")
	flags.Float64("longitude", 0, "longitude of the search center")
	flags.Int("radius", 0, "search radius in meters")
	flags.String("address", "", "free-form address")
	flags.String("country", "", "country filter")
	flags.String("state", "", "state filter")
	flags.String("county", "", "county filter")
	flags.String("city", "", "city filter")
	flags.String("postal-code", "", "postal code filter")
	flags.Int("limit", 0, "maximum number of results")
	flags.Int("offset", 0, "number of results to skip")
}

// locationFromFlags only sets the filters the user actually passed.
func locationFromFlags(cmd *cobra.Command) (geo.Location, geo.Page) {
	flags := cmd.Flags()

	location := geo.Location{
		Latitude:  changedFloat(cmd, "latitude"),
		Longitude: changedFloat(cmd, "longitude"),
		Radius:    changedInt(cmd, "radius"),
	}
	location.Address, _ = flags.GetString("address")
	location.Country, _ = flags.GetString("country")
	location.State, _ = flags.GetString("state")
	location.County, _ = flags.GetString("county")
	location.City, _ = flags.GetString("city")
	location.PostalCode, _ = flags.GetString("postal-code")

	page := geo.Page{
		Limit:  changedInt(cmd, "limit"),
		Offset: changedInt(cmd, "offset"),
	}

	return location, page
}

func locationListRequest(cmd *cobra.Command) *geo.LocationListRequest {
	location, page := locationFromFlags(cmd)

	return &geo.LocationListRequest{
		CommonParams: commonParams(),
		Location:     location,
		Page:         page,
	}
}

func changedFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil
	}

	return &value
}

func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}

	return &value
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}

	return &value
}

func formatPoint(point *geo.Point) string {
	if point == nil {
		return ""
	}

	return formatFloat(point.Latitude) + ", " + formatFloat(point.Longitude)
}
