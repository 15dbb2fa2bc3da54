// Package pkg provides the core libraries for the balustrade spacing calculator.
//
// # Overview
//
// Balustrade works out how many balusters fit across a railing span so that
// the clear gap between them lands as close to 3 inches as possible while
// staying under 4. Measurements go in and come out as tape-measure text
// ("42 ½", "1 1/2", "2,125"). The pkg directory is organized into three areas:
//
//  1. Core - [fraction] text conversion and the [spacing] solver
//  2. Infrastructure - [cache], [config], [errors], [observability], [buildinfo]
//  3. [pipeline] - Orchestration (validate → cache → solve) used by every entry point
//
// # Architecture
//
// The typical data flow:
//
//	span and thickness text
//	         ↓
//	    [fraction] package (text → decimal inches)
//	         ↓
//	    [spacing] package (exact phase, then approximate phase)
//	         ↓
//	    [fraction] package (decimal inches → sixteenths text)
//	         ↓
//	    CLI / terminal form / JSON API
//
// # Quick Start
//
// Solve a layout directly:
//
//	res := spacing.Solve(42, "1 1/2")
//	if res.Success {
//	    fmt.Println(res.Posts, res.EdgeOffset, res.Pitch, res.MatchType)
//	}
//
// Solve through the pipeline with validation and a file cache:
//
//	c, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(c, nil, logger)
//	resp, err := runner.Solve(ctx, pipeline.Request{
//	    SpanText:  "42 1/2",
//	    Thickness: "1½",
//	    MinSpan:   10,
//	})
//
// # Main Packages
//
// ## Core
//
// [fraction] - Parses the ways people type measurements (mixed numbers,
// vulgar-fraction glyphs, decimals with a comma) and formats decimals back
// to the nearest sixteenth.
//
// [spacing] - Enumerates post counts 1 through 300, preferring layouts whose
// gap is a whole number of sixteenths and falling back to layouts where the
// end gaps differ from the inner gaps by at most a quarter inch.
//
// ## Infrastructure
//
// [cache] - File, Redis and no-op backends for solve results, keyed by a
// hash of the inputs.
//
// [config] - TOML configuration with built-in defaults.
//
// [errors] - Error codes and input validation shared by the CLI and the API.
//
// [observability] - Hooks for solver, cache and HTTP events.
//
// [pipeline] - The single solve path used by the CLI, the terminal form and
// the HTTP server. Ensures consistent behavior across all entry points.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/spacing/...    # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [fraction]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/fraction
// [spacing]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/spacing
// [cache]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/buildinfo
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/balustrade/pkg/pipeline
package pkg
