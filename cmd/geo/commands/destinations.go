package commands

import (
	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewDestinationsCommand creates the destinations command group
func NewDestinationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "destinations",
		Aliases: []string{"destination", "dest"},
		Short:   "Manage destinations",
		Long:    "List and inspect travel destinations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List destinations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			destinations, err := client.Destinations().List(cmd.Context(), locationListRequest(cmd))
			if err != nil {
				return err
			}

			return render(cmd, destinations, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Type", "Location")

				for _, destination := range destinations.Destinations {
					_ = table.Append(destination.ID, destination.Name, destination.Type, formatPoint(destination.Location))
				}
			})
		},
	}
	addLocationFlags(list)

	get := &cobra.Command{
		Use:   "get DESTINATION_ID",
		Short: "Get destination details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Destinations().Get(cmd.Context(), &geo.GetRequest{CommonParams: commonParams(), ID: args[0]})
			if err != nil {
				return err
			}

			return render(cmd, details, func(table *tablewriter.Table) {
				table.Header("Property", "Value")

				destination := details.Destination
				if destination == nil {
					return
				}

				_ = table.Append("ID", destination.ID)
				_ = table.Append("Name", destination.Name)
				_ = table.Append("Type", valueOrNA(destination.Type))
				_ = table.Append("Location", valueOrNA(formatPoint(destination.Location)))
				_ = table.Append("Description", valueOrNA(truncate(destination.Description, constants.MaxDescriptionWidth)))
			})
		},
	}

	cmd.AddCommand(list, get)

	return cmd
}
