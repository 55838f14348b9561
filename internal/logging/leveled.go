package logging

import (
	"fmt"
	"slices"

	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/hashicorp/go-retryablehttp"
)

// Leveled lets retryablehttp log through a geo.Logger.
type Leveled struct {
	Logger geo.Logger
	// Mask lists keys whose values are replaced before logging.
	Mask []string
}

// Error logs msg at error level with keysAndValues folded into fields.
func (l Leveled) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, l.pairs(keysAndValues))
}

// Info logs msg at info level with keysAndValues folded into fields.
func (l Leveled) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, l.pairs(keysAndValues))
}

// Debug logs msg at debug level with keysAndValues folded into fields.
func (l Leveled) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, l.pairs(keysAndValues))
}

// Warn logs msg at warn level with keysAndValues folded into fields.
func (l Leveled) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, l.pairs(keysAndValues))
}

// pairs folds alternating keys and values into a field map. A trailing key
// without a value is kept with a nil value.
func (l Leveled) pairs(keysAndValues []interface{}) map[string]interface{} {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, (len(keysAndValues)+1)/2) //nolint:mnd

	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])

		var value interface{}
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}

		if slices.Contains(l.Mask, key) {
			value = constants.MaskedSecret
		}

		fields[key] = value
	}

	return fields
}

var _ retryablehttp.LeveledLogger = Leveled{}
