package commands

import (
	"context"
	"strings"
	"sync"

	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewAPIVersionCommand creates the api-version command
func NewAPIVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "api-version",
		Short: "Display the deployed API version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			version, err := client.APIVersion(cmd.Context(), &geo.InfoRequest{})
			if err != nil {
				return err
			}

			return render(cmd, version, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("API Version", valueOrNA(version.Version))
			})
		},
	}
}

// NewLanguagesCommand creates the languages command
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "languages",
		Aliases: []string{"langs"},
		Short:   "List the languages the API can answer in",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			languages, err := client.SupportedLanguages(cmd.Context(), &geo.InfoRequest{})
			if err != nil {
				return err
			}

			return render(cmd, languages, func(table *tablewriter.Table) {
				table.Header("Language")

				for _, language := range languages.Languages {
					_ = table.Append(language)
				}
			})
		},
	}
}

// StatusCheck is one row of 'geo status'.
type StatusCheck struct {
	Endpoint string `json:"endpoint"         yaml:"endpoint"`
	Status   string `json:"status"           yaml:"status"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the API is reachable",
		Long:  "Query the informational endpoints concurrently and report which ones answer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			checks := runStatusChecks(cmd.Context(), client)

			return render(cmd, checks, func(table *tablewriter.Table) {
				table.Header("Endpoint", "Status", "Detail")

				for _, check := range checks {
					_ = table.Append(check.Endpoint, check.Status, truncate(check.Detail, constants.MaxDescriptionWidth))
				}
			})
		},
	}
}

func runStatusChecks(ctx context.Context, client geo.Client) []StatusCheck {
	probes := []struct {
		endpoint geo.Endpoint
		run      func(context.Context) (string, error)
	}{
		{geo.EndpointAPIVersion, func(ctx context.Context) (string, error) {
			version, err := client.APIVersion(ctx, &geo.InfoRequest{})
			if err != nil {
				return "", err
			}

			return version.Version, nil
		}},
		{geo.EndpointSupportedLanguages, func(ctx context.Context) (string, error) {
			languages, err := client.SupportedLanguages(ctx, &geo.InfoRequest{})
			if err != nil {
				return "", err
			}

			return strings.Join(languages.Languages, ", "), nil
		}},
		{geo.EndpointPOITypes, func(ctx context.Context) (string, error) {
			types, err := client.POIs().Types(ctx, &geo.InfoRequest{})
			if err != nil {
				return "", err
			}

			names := make([]string, 0, len(types.Types))
			for _, poiType := range types.Types {
				names = append(names, poiType.Name)
			}

			return strings.Join(names, ", "), nil
		}},
	}

	checks := make([]StatusCheck, len(probes))

	ctx, cancel := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
	defer cancel()

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	for i, probe := range probes {
		group.Go(func() error {
			check := StatusCheck{Endpoint: probe.endpoint.Path, Status: constants.StatusOK}

			detail, err := probe.run(groupCtx)
			if err != nil {
				check.Status = constants.StatusFailed
				detail = err.Error()
			}

			check.Detail = detail

			mu.Lock()
			checks[i] = check
			mu.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	return checks
}
