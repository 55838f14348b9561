package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/fivetwenty-io/geographic-client/internal/auth"
	"github.com/fivetwenty-io/geographic-client/internal/constants"
	"github.com/fivetwenty-io/geographic-client/pkg/geo"
)

// Static errors for err113 compliance.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Dispatch issues one GET for endpoint with params and classifies the
// response. The Result is returned alongside *geo.ResponseError for non-2xx
// statuses.
func (c *Client) Dispatch(ctx context.Context, endpoint geo.Endpoint, params geo.Params) (*geo.Result, error) {
	for _, name := range endpoint.Required {
		if isAbsent(params[name]) {
			return nil, geo.MissingParameterError(name)
		}
	}

	token, err := c.currentToken(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	headers := map[string]string{}

	auth.Apply(token, query, headers)

	err = copyAllowed(endpoint, params, query, headers)
	if err != nil {
		return nil, err
	}

	err = mergeOverrides(params[geo.QueryParametersKey], query)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:  http.MethodGet,
		Path:    endpoint.Path,
		Query:   query,
		Headers: headers,
	}

	if token.IsQuery && token.HeaderOrQueryName != "" {
		req.SensitiveQuery = []string{token.HeaderOrQueryName}
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", endpoint.Path, err)
	}

	result := Classify(resp)
	if !result.IsSuccess() {
		return result, &geo.ResponseError{Result: result}
	}

	return result, nil
}

// Classify turns a raw response into a Result. JSON bodies are decoded when
// they parse; anything else is kept as text. 204 carries no body.
func Classify(resp *Response) *geo.Result {
	result := &geo.Result{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		RawBody:    resp.Body,
	}

	if resp.StatusCode == http.StatusNoContent {
		return result
	}

	text := string(resp.Body)
	result.Body = text

	if geo.IsJSONContentType(resp.Header.Get(constants.HeaderContentType)) && len(resp.Body) > 0 {
		var decoded interface{}

		err := json.Unmarshal(resp.Body, &decoded)
		if err == nil {
			result.Body = decoded
		}
	}

	return result
}

func copyAllowed(endpoint geo.Endpoint, params geo.Params, query url.Values, headers map[string]string) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		value := params[name]
		if isAbsent(value) || !endpoint.IsAllowed(name) {
			continue
		}

		if name == geo.ParamAcceptLanguage {
			header, err := formatHeader(value)
			if err != nil {
				return fmt.Errorf("%w %s: %w", ErrInvalidParameter, name, err)
			}

			headers[constants.HeaderAcceptLanguage] = header

			continue
		}

		values, err := formatValues(value)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidParameter, name, err)
		}

		query[name] = values
	}

	return nil
}

func mergeOverrides(value interface{}, query url.Values) error {
	extra, err := overrides(value)
	if err != nil {
		return err
	}

	for name, v := range extra {
		if isAbsent(v) {
			query.Del(name)

			continue
		}

		values, err := formatValues(v)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidParameter, name, err)
		}

		query[name] = values
	}

	return nil
}
