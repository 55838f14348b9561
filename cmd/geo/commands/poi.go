package commands

import (
	"strconv"
	"strings"

	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPOICommand creates the poi command group
func NewPOICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "poi",
		Aliases: []string{"pois"},
		Short:   "Manage points of interest",
		Long:    "List and inspect points of interest",
	}

	cmd.AddCommand(newPOIListCommand())
	cmd.AddCommand(newPOIGetCommand())
	cmd.AddCommand(newPOITypesCommand())

	return cmd
}

func newPOIListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List points of interest",
		Long:  "List points of interest near a location, inside a bounding box or matching filters",
		Example: `  geo poi list --latitude 48.8566 --longitude 2.3522 --radius 500
  geo poi list --city Paris --type restaurant --type cafe --open-now
  geo poi list --min-lat 48.8 --max-lat 48.9 --min-lon 2.2 --max-lon 2.4 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := poiListRequest(cmd)

			pois, err := client.POIs().List(cmd.Context(), request)
			if err != nil {
				return err
			}

			return render(cmd, pois, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Type", "Location", "Rating")

				for _, poi := range pois.PointsOfInterest {
					rating := ""
					if poi.Rating != nil {
						rating = formatFloat(*poi.Rating)
					}

					_ = table.Append(poi.ID, poi.Name, poi.MainType, formatPoint(poi.Location), rating)
				}
			})
		},
	}

	addLocationFlags(cmd)

	flags := cmd.Flags()
	flags.Float64("max-lat", 0, "bounding box maximum latitude")
	flags.Float64("max-lon", 0, "bounding box maximum longitude")
	flags.Float64("min-lat", 0, "bounding box minimum latitude")
	flags.Float64("min-lon", 0, "bounding box minimum longitude")
	flags.StringArray("filter", nil, "free-form filter (repeatable)")
	flags.StringArray("name", nil, "name filter (repeatable)")
	flags.String("main-type", "", "main type filter")
	flags.StringArray("type", nil, "type filter (repeatable)")
	flags.String("street", "", "street filter")
	flags.String("rank-by", "", "ranking order, e.g. distance")
	flags.Bool("open-now", false, "only places open now")
	flags.Float64("min-rating", 0, "minimum rating")
	flags.Float64("max-rating", 0, "maximum rating")
	flags.Int("min-price", 0, "minimum price level")
	flags.Int("max-price", 0, "maximum price level")

	return cmd
}

func poiListRequest(cmd *cobra.Command) *geo.POIListRequest {
	flags := cmd.Flags()
	location, page := locationFromFlags(cmd)

	request := &geo.POIListRequest{
		CommonParams:     commonParams(),
		Location:         location,
		Page:             page,
		MaximumLatitude:  changedFloat(cmd, "max-lat"),
		MaximumLongitude: changedFloat(cmd, "max-lon"),
		MinimumLatitude:  changedFloat(cmd, "min-lat"),
		MinimumLongitude: changedFloat(cmd, "min-lon"),
		OpenNow:          changedBool(cmd, "open-now"),
		MinimumRating:    changedFloat(cmd, "min-rating"),
		MaximumRating:    changedFloat(cmd, "max-rating"),
		MinimumPrice:     changedInt(cmd, "min-price"),
		MaximumPrice:     changedInt(cmd, "max-price"),
	}

	request.Filter, _ = flags.GetStringArray("filter")
	request.Name, _ = flags.GetStringArray("name")
	request.MainType, _ = flags.GetString("main-type")
	request.Type, _ = flags.GetStringArray("type")
	request.Street, _ = flags.GetString("street")
	request.RankBy, _ = flags.GetString("rank-by")

	return request
}

func newPOIGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POI_ID",
		Short: "Get point of interest details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.POIs().Get(cmd.Context(), &geo.GetRequest{CommonParams: commonParams(), ID: args[0]})
			if err != nil {
				return err
			}

			return render(cmd, details, func(table *tablewriter.Table) {
				table.Header("Property", "Value")

				poi := details.PointOfInterest
				if poi == nil {
					return
				}

				_ = table.Append("ID", poi.ID)
				_ = table.Append("Name", poi.Name)
				_ = table.Append("Main Type", valueOrNA(poi.MainType))
				_ = table.Append("Types", valueOrNA(strings.Join(poi.Types, ", ")))
				_ = table.Append("Location", valueOrNA(formatPoint(poi.Location)))

				if poi.Address != nil {
					_ = table.Append("Address", valueOrNA(poi.Address.Formatted))
				}

				_ = table.Append("Phone", valueOrNA(poi.Phone))
				_ = table.Append("Website", valueOrNA(poi.Website))
				_ = table.Append("Description", valueOrNA(truncate(poi.Description, constants.MaxDescriptionWidth)))
			})
		},
	}
}

func newPOITypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List point of interest types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			types, err := client.POIs().Types(cmd.Context(), &geo.InfoRequest{CommonParams: commonParams()})
			if err != nil {
				return err
			}

			return render(cmd, types, func(table *tablewriter.Table) {
				table.Header("Name", "Label", "Sub Types")

				for _, poiType := range types.Types {
					_ = table.Append(poiType.Name, poiType.Label, truncate(strings.Join(poiType.SubTypes, ", "), constants.MaxDescriptionWidth))
				}
			})
		},
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
