// Package geoclient provides the primary entry point for constructing a
// geographic API client that implements the geo.Client interface.
//
// It layers configuration, HTTP transport and token placement on top of the
// resource interfaces and types defined in the geo package. Most
// applications should import geoclient to build a client, then use the
// returned geo.Client to access POIs(), Destinations() and Inspirations().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/geographic-client/pkg/geo"
//	  "github.com/fivetwenty-io/geographic-client/pkg/geoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // API key sent as the "key" query parameter.
//	  cli, err := geoclient.NewWithAPIKey("api.example.com", "key", "my-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a bearer token, or a full config:
//	  cli, err = geoclient.New(&geo.Config{
//	    Domain:      "https://api.example.com",
//	    Token:       geo.Token{Value: "my-key", HeaderOrQueryName: "X-Api-Key"},
//	    HTTPTimeout: 10 * time.Second,
//	  })
//
//	  languages, err := cli.SupportedLanguages(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(languages.Languages)
//	}
//
// Token rotation
//
// SetToken swaps the credential at any time. Calls already in flight keep the
// token they started with.
package geoclient
