package geo

import (
	"mime"
	"net/http"
	"strings"
)

// Result is the outcome of one exchange with the API.
//
// Body holds the decoded JSON value when the response declared a JSON media
// type and decoded cleanly, the raw text otherwise, and nil for 204.
type Result struct {
	StatusCode int
	Status     string
	Header     http.Header
	RawBody    []byte
	Body       interface{}
}

// IsSuccess reports whether the status code is 2xx.
func (r *Result) IsSuccess() bool {
	return r != nil && r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// IsJSONContentType reports whether contentType names application/json or
// an application/*+json media type. Parameters and case are ignored.
func IsJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]) //nolint:mnd
	}

	mediaType = strings.ToLower(mediaType)

	subtype, ok := strings.CutPrefix(mediaType, "application/")
	if !ok {
		return false
	}

	return subtype == "json" || (strings.HasSuffix(subtype, "+json") && len(subtype) > len("+json"))
}
