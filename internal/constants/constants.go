package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".geo"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "GEO"

	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as status checks.
	ShortHTTPTimeout = 10 * time.Second
)

// HTTP headers and media types.
const (
	HeaderAccept         = "Accept"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderContentType    = "Content-Type"
	HeaderUserAgent      = "User-Agent"

	// MediaTypeJSON is sent as the Accept header.
	MediaTypeJSON = "application/json"
)

// Client identification.
const (
	// UserAgentPrefix is combined with the version into the default User-Agent.
	UserAgentPrefix = "geographic-client"

	// DefaultScheme is prepended to domains given without one.
	DefaultScheme = "https://"
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent requests issued by the CLI.
	DefaultConcurrencyLimit = 3
)

// Logging.
const (
	// LogLevelDebug enables request and response logging.
	LogLevelDebug = "debug"

	// LogLevelInfo is the default log level.
	LogLevelInfo = "info"

	// LogFormatJSON emits one JSON object per line.
	LogFormatJSON = "json"

	// LogFormatConsole emits human readable lines.
	LogFormatConsole = "console"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// StatusOK marks a healthy endpoint in status output.
	StatusOK = "ok"

	// StatusFailed marks a failing endpoint in status output.
	StatusFailed = "failed"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Display limits.
const (
	// MaxDescriptionWidth truncates long text in table output.
	MaxDescriptionWidth = 60

	// MinimumArgumentCount is the minimum number of arguments for the call command.
	MinimumArgumentCount = 1
)
