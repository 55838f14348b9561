// Package geo provides types, interfaces, and helpers for working with the
// geographic points-of-interest REST API.
//
// # Overview
//
// The geo package defines the domain types (POI, Destination, Inspiration,
// SupportedLanguages, APIVersion), the typed request structs used to build
// query strings, and the interfaces for resource-oriented clients
// (POIsClient, DestinationsClient, InspirationsClient). A concrete
// implementation is provided by the geoclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// geoclient to construct a client and then use the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := geoclient.New(&geo.Config{
//	    Domain: "https://api.example.com",
//	    Token:  geo.Token{Value: "my-key", HeaderOrQueryName: "key", IsQuery: true},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  limit := 10
//	  pois, err := cli.POIs().List(ctx, &geo.POIListRequest{
//	    Name:  []string{"LES SENTIERS DE DAKAR"},
//	    Limit: &limit,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = pois
//	}
//
// # Raw calls
//
// Every typed method is a thin layer over Client.Call, which takes an
// Endpoint and a Params bag. Call can be used directly when the typed
// request structs do not cover a parameter:
//
//	res, err := cli.Call(ctx, geo.EndpointPOIList, geo.Params{
//	  "latitude": 47.21951, "longitude": -1.553694, "radius": 1000,
//	  geo.QueryParametersKey: geo.Params{"debug": true},
//	})
//
// # Errors
//
// Three kinds of failure are reported:
//
//   - a missing required parameter, wrapping ErrMissingRequiredParameter,
//     returned before any network I/O;
//   - a transport failure (DNS, connection, timeout), wrapped unexamined;
//   - a non-2xx response, returned as *ResponseError carrying the Result.
//
// IsNotFound, IsUnauthorized and StatusCode help branch on the last kind.
package geo
