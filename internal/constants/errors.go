package constants

import "errors"

// Configuration errors.
var (
	ErrNoDomainConfigured = errors.New("no API domain configured, use --domain, GEO_DOMAIN or the config file")
	ErrInvalidOutput      = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
)

// Argument errors.
var (
	ErrUnknownEndpoint   = errors.New("unknown endpoint, run 'geo call --list' to see the known endpoints")
	ErrInvalidParamArg   = errors.New("invalid parameter, expected key=value")
	ErrInvalidSelectPath = errors.New("select path matched nothing")
)
