package commands

import (
	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/internal/logging"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/fivetwenty-io/geographic-client/pkg/geoclient"
)

// CreateClient builds a geo.Client from the effective configuration.
func CreateClient() (geo.Client, error) {
	config := loadConfig()
	if config.Domain == "" {
		return nil, constants.ErrNoDomainConfigured
	}

	geoConfig := &geo.Config{
		Domain:      config.Domain,
		Token:       config.Token,
		HTTPTimeout: config.Timeout,
	}

	if config.Verbose {
		logger, err := logging.New(constants.LogLevelDebug, config.LogFormat, nil)
		if err != nil {
			return nil, err
		}

		geoConfig.Logger = logger
		geoConfig.Debug = true
	}

	return geoclient.New(geoConfig)
}

// commonParams carries the global --accept-language flag into a request.
func commonParams() geo.CommonParams {
	return geo.CommonParams{AcceptLanguage: loadConfig().AcceptLanguage}
}
