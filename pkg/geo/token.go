package geo

import "strings"

// Token describes the credential sent with every request and where it goes.
//
// Placement rules:
//  1. IsQuery: sent as the query parameter HeaderOrQueryName.
//  2. HeaderOrQueryName set: sent as that header.
//  3. Otherwise: sent as "Authorization: Bearer <Value>".
//
// An empty Value sends no credential at all, not even a bare "Bearer" header.
type Token struct {
	Value             string `json:"value"                          yaml:"value"`
	HeaderOrQueryName string `json:"header_or_query_name,omitempty" yaml:"header_or_query_name,omitempty"`
	IsQuery           bool   `json:"is_query"                       yaml:"is_query"`
}

// Masked returns a copy of the token safe to print.
func (t Token) Masked() Token {
	const visible = 4

	masked := t
	if len(t.Value) > visible {
		masked.Value = strings.Repeat("*", len(t.Value)-visible) + t.Value[len(t.Value)-visible:]
	} else if t.Value != "" {
		masked.Value = strings.Repeat("*", len(t.Value))
	}

	return masked
}
