package http

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/fivetwenty-io/geographic-client/pkg/geo"
	"github.com/spf13/cast"
)

// isAbsent reports whether value should be treated as not supplied.
func isAbsent(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// formatValues renders value as one or more query values. Slices and arrays
// become repeated values; everything else is a single value.
func formatValues(value interface{}) ([]string, error) {
	if isAbsent(value) {
		return nil, nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		values := make([]string, 0, rv.Len())

		for i := range rv.Len() {
			item := rv.Index(i).Interface()
			if isAbsent(item) {
				continue
			}

			formatted, err := cast.ToStringE(item)
			if err != nil {
				return nil, fmt.Errorf("formatting item %d: %w", i, err)
			}

			values = append(values, formatted)
		}

		return values, nil
	}

	formatted, err := cast.ToStringE(rv.Interface())
	if err != nil {
		return nil, fmt.Errorf("formatting value: %w", err)
	}

	return []string{formatted}, nil
}

// formatHeader renders value as a single header value.
func formatHeader(value interface{}) (string, error) {
	values, err := formatValues(value)
	if err != nil {
		return "", err
	}

	return strings.Join(values, ", "), nil
}

// overrides extracts the map stored under geo.QueryParametersKey.
func overrides(value interface{}) (map[string]interface{}, error) {
	switch typed := value.(type) {
	case nil:
		return nil, nil
	case geo.Params:
		return typed, nil
	case map[string]interface{}:
		return typed, nil
	case map[string]string:
		converted := make(map[string]interface{}, len(typed))
		for key, v := range typed {
			converted[key] = v
		}

		return converted, nil
	case url.Values:
		converted := make(map[string]interface{}, len(typed))
		for key, v := range typed {
			converted[key] = v
		}

		return converted, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a map, got %T", ErrInvalidParameter, geo.QueryParametersKey, value)
	}
}
