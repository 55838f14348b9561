package commands

import (
	"context"

	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type inspirationLister func(geo.InspirationsClient) func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error)

// NewInspirationsCommand creates the inspirations command group
func NewInspirationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspirations",
		Aliases: []string{"inspiration", "insp"},
		Short:   "Manage inspirations",
		Long:    "List and inspect editorial inspirations: dossiers, events, news in brief, slide shows and tests",
	}

	cmd.AddCommand(newInspirationListCommand("list", "List all inspirations",
		func(c geo.InspirationsClient) func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error) {
			return c.List
		}))
	cmd.AddCommand(newInspirationListCommand("dossiers", "List dossiers",
		func(c geo.InspirationsClient) func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error) {
			return c.Dossiers
		}))
	cmd.AddCommand(newInspirationListCommand("events", "List events",
		func(c geo.InspirationsClient) func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error) {
			return c.Events
		}))
	cmd.AddCommand(newInspirationListCommand("news-in-brief", "List news in brief",
		func(c geo.InspirationsClient) func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error) {
			return c.NewsInBrief
		}))
	cmd.AddCommand(newInspirationListCommand("slide-shows", "List slide shows",
		func(c geo.InspirationsClient) func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error) {
			return c.SlideShows
		}))
	cmd.AddCommand(newInspirationListCommand("tests", "List tests",
		func(c geo.InspirationsClient) func(context.Context, *geo.LocationListRequest) (*geo.InspirationList, error) {
			return c.Tests
		}))
	cmd.AddCommand(newInspirationGetCommand())

	return cmd
}

func newInspirationListCommand(use, short string, lister inspirationLister) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			inspirations, err := lister(client.Inspirations())(cmd.Context(), locationListRequest(cmd))
			if err != nil {
				return err
			}

			return render(cmd, inspirations, func(table *tablewriter.Table) {
				table.Header("ID", "Type", "Title", "Published")

				for _, inspiration := range inspirations.Inspirations {
					_ = table.Append(inspiration.ID, inspiration.Type,
						truncate(inspiration.Title, constants.MaxDescriptionWidth), inspiration.Published)
				}
			})
		},
	}

	addLocationFlags(cmd)

	return cmd
}

func newInspirationGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INSPIRATION_ID",
		Short: "Get inspiration details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Inspirations().Get(cmd.Context(), &geo.GetRequest{CommonParams: commonParams(), ID: args[0]})
			if err != nil {
				return err
			}

			return render(cmd, details, func(table *tablewriter.Table) {
				table.Header("Property", "Value")

				inspiration := details.Inspiration
				if inspiration == nil {
					return
				}

				_ = table.Append("ID", inspiration.ID)
				_ = table.Append("Type", valueOrNA(inspiration.Type))
				_ = table.Append("Title", inspiration.Title)
				_ = table.Append("Summary", valueOrNA(truncate(inspiration.Summary, constants.MaxDescriptionWidth)))
				_ = table.Append("Published", valueOrNA(inspiration.Published))
			})
		},
	}
}
