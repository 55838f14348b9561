package commands

import (
	"github.com/fivetwenty-io/geographic-client/pkg/geoclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys shared by the commands.
const (
	keyConfig         = "config"
	keyDomain         = "domain"
	keyToken          = "token"
	keyTokenName      = "token_name"
	keyTokenInQuery   = "token_in_query"
	keyOutput         = "output"
	keySelect         = "select"
	keyAcceptLanguage = "accept_language"
	keyVerbose        = "verbose"
	keyTimeout        = "timeout"
	keyLogFormat      = "log_format"
)

// NewRootCommand creates the geo command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	if version != "" {
		geoclient.Version = version
	}

	rootCmd := &cobra.Command{
		Use:   "geo",
		Short: "Geographic points-of-interest API CLI",
		Long: `A command-line interface for the geographic points-of-interest API.

It lists and fetches points of interest, destinations and editorial
inspirations, and can call any endpoint of the API directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.geo/config.yml)")
	flags.StringP("domain", "d", "", "API domain, e.g. https://api.example.com")
	flags.StringP("token", "t", "", "API key or token")
	flags.String("token-name", "", "header or query parameter name carrying the token (default: Authorization: Bearer)")
	flags.Bool("token-in-query", false, "send the token as a query parameter instead of a header")
	flags.StringP("output", "o", "", "output format (table, json, yaml); defaults to table on a terminal")
	flags.String("select", "", "print only the value at this GJSON path of the response")
	flags.StringP("accept-language", "l", "", "preferred response language, e.g. fr")
	flags.BoolP("verbose", "v", false, "log HTTP requests and responses to stderr")
	flags.Duration("timeout", 0, "overall request timeout (default 30s)")
	flags.String("log-format", "console", "log format for --verbose (console, json)")

	_ = viper.BindPFlag(keyConfig, flags.Lookup("config"))
	_ = viper.BindPFlag(keyDomain, flags.Lookup("domain"))
	_ = viper.BindPFlag(keyToken, flags.Lookup("token"))
	_ = viper.BindPFlag(keyTokenName, flags.Lookup("token-name"))
	_ = viper.BindPFlag(keyTokenInQuery, flags.Lookup("token-in-query"))
	_ = viper.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag(keySelect, flags.Lookup("select"))
	_ = viper.BindPFlag(keyAcceptLanguage, flags.Lookup("accept-language"))
	_ = viper.BindPFlag(keyVerbose, flags.Lookup("verbose"))
	_ = viper.BindPFlag(keyTimeout, flags.Lookup("timeout"))
	_ = viper.BindPFlag(keyLogFormat, flags.Lookup("log-format"))

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewAPIVersionCommand())
	rootCmd.AddCommand(NewLanguagesCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewPOICommand())
	rootCmd.AddCommand(NewDestinationsCommand())
	rootCmd.AddCommand(NewInspirationsCommand())
	rootCmd.AddCommand(NewCallCommand())

	return rootCmd
}
