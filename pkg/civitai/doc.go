// Package civitai provides types, builders, and helpers for working with the
// Civitai REST API (v1).
//
// # Overview
//
// The civitai package defines the domain types (e.g., Model, ModelVersion,
// Creator, Tag, Image), the enum/wire-string registry, the Result type every
// API operation returns, and the fluent query builders for each resource
// family. A concrete client implementation is provided by the civitaiclient
// package, which wires configuration and transport. Most consumers should
// import civitaiclient to construct a client and then work with the builders
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/civitai-community/civitai-client/pkg/civitai"
//	  "github.com/civitai-community/civitai-client/pkg/civitaiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := civitaiclient.New(&civitai.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  result := cli.Models().Query().
//	    WhereType(civitai.ModelTypeLora).
//	    WhereSort(civitai.ModelSortMostDownloaded).
//	    WithResultsLimit(20).
//	    Execute(ctx)
//
//	  page, ok := result.Value()
//	  if !ok { log.Fatal(result.Failure()) }
//	  _ = page.Items
//	}
//
// # Results
//
// Every operation that talks to the remote service returns a Result: exactly
// one of a payload or a structured Failure. Transport faults, remote-reported
// errors, decode failures, and cancellation are all normalized into the
// failure variant with a code naming their origin; nothing is thrown past the
// call site. Discriminate with IsSuccess/IsFailure, Value, Failure, or Match.
//
// # Queries and pagination
//
// Builders are immutable: every Where/With call returns a new snapshot, so a
// partially configured query can be branched for divergent searches without
// interference. Execute accepts an optional cursor to continue a sequence;
// an absent NextCursor in the returned metadata means the sequence has
// terminated. Helpers cover common iteration shapes:
//
//	it := civitai.NewPageIterator(ctx, query.Fetcher())
//	for it.HasNext() {
//	  model, failure := it.Next()
//	  if failure != nil { break }
//	  _ = model
//	}
//
// or collect everything at once:
//
//	all, failure := civitai.CollectAllPages(ctx, query.Fetcher(), nil)
//
// # Enums and the registry
//
// Enum-valued fields cross the wire as the platform's string literals (e.g.
// ModelTypeLora <-> "LORA"). The bidirectional mapping lives in a Registry;
// DefaultRegistry is populated once per process by the per-feature
// registration functions, which are idempotent and order-independent. An
// unknown wire string in a response surfaces as a decode failure naming the
// offending value, never as a silently substituted default.
package civitai
