package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Static errors for err113 compliance.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)

// settableKeys may be written to the config file with 'geo config set'.
var settableKeys = []string{
	keyDomain, keyToken, keyTokenName, keyTokenInQuery,
	keyOutput, keyAcceptLanguage, keyTimeout, keyLogFormat,
}

// Config represents the effective CLI configuration.
type Config struct {
	Domain         string        `json:"domain"                    yaml:"domain"`
	Token          geo.Token     `json:"token"                     yaml:"token"`
	Output         string        `json:"output,omitempty"          yaml:"output,omitempty"`
	AcceptLanguage string        `json:"accept_language,omitempty" yaml:"accept_language,omitempty"`
	Timeout        time.Duration `json:"timeout,omitempty"         yaml:"timeout,omitempty"`
	Verbose        bool          `json:"verbose"                   yaml:"verbose"`
	LogFormat      string        `json:"log_format,omitempty"      yaml:"log_format,omitempty"`
	ConfigFile     string        `json:"config_file,omitempty"     yaml:"config_file,omitempty"`
}

// initConfig loads .env, the config file and GEO_* environment variables.
func initConfig() error {
	err := godotenv.Load(constants.DotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", constants.DotEnvFile, err)
	}

	cfgFile := viper.GetString(keyConfig)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := configDirectory()
		if err != nil {
			return err
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config file: %w", err)
		}
	} else if viper.GetBool(keyVerbose) {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}

func loadConfig() *Config {
	return &Config{
		Domain: viper.GetString(keyDomain),
		Token: geo.Token{
			Value:             viper.GetString(keyToken),
			HeaderOrQueryName: viper.GetString(keyTokenName),
			IsQuery:           viper.GetBool(keyTokenInQuery),
		},
		Output:         viper.GetString(keyOutput),
		AcceptLanguage: viper.GetString(keyAcceptLanguage),
		Timeout:        viper.GetDuration(keyTimeout),
		Verbose:        viper.GetBool(keyVerbose),
		LogFormat:      viper.GetString(keyLogFormat),
		ConfigFile:     viper.ConfigFileUsed(),
	}
}

func configDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}

func configFilePath() (string, error) {
	if configFile := viper.GetString(keyConfig); configFile != "" {
		return configFile, nil
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	configDir, err := configDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the geo CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and config file. The token is masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = config.Token.Masked()

			return render(cmd, config, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Domain", valueOrNA(config.Domain))
				_ = table.Append("Token", valueOrNA(config.Token.Value))
				_ = table.Append("Token Name", valueOrNA(config.Token.HeaderOrQueryName))
				_ = table.Append("Token In Query", fmt.Sprintf("%t", config.Token.IsQuery))
				_ = table.Append("Output", valueOrNA(config.Output))
				_ = table.Append("Accept Language", valueOrNA(config.AcceptLanguage))
				_ = table.Append("Timeout", config.Timeout.String())
				_ = table.Append("Config File", valueOrNA(config.ConfigFile))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Write a value to the config file. Keys: " + fmt.Sprint(settableKeys),
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(cmd, args[0], func(values map[string]interface{}) {
				values[args[0]] = args[1]
			})
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(cmd, args[0], func(values map[string]interface{}) {
				delete(values, args[0])
			})
		},
	}
}

func updateConfigFile(cmd *cobra.Command, key string, update func(map[string]interface{})) error {
	if !slices.Contains(settableKeys, key) {
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	values := map[string]interface{}{}

	// #nosec G304 -- path comes from the user's own flag or home directory
	data, err := os.ReadFile(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) > 0 {
		err = yaml.Unmarshal(data, &values)
		if err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	update(values)

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err = yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %s\n", key, configFile)

	return nil
}
