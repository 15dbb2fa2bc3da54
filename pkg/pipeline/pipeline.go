// Package pipeline runs spacing searches for every balustrade surface.
//
// The CLI, the interactive form and the HTTP server all go through a
// [Runner], so validation, caching, logging and observability behave the same
// no matter where a request comes from.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	resp, err := runner.Solve(ctx, pipeline.Request{
//	    SpanText:  "42 1/2",
//	    Thickness: "1½",
//	    MinSpan:   10,
//	})
//	if err != nil {
//	    // invalid input
//	}
//	if !resp.Success {
//	    fmt.Println(resp.Message)
//	}
//
// A request that passes validation always yields a response; a search that
// finds no layout is reported through Response.Success rather than an error.
package pipeline

import (
	"time"

	"github.com/matzehuels/balustrade/pkg/errors"
	"github.com/matzehuels/balustrade/pkg/fraction"
	"github.com/matzehuels/balustrade/pkg/spacing"
)

// DefaultTTL is how long solve results stay cached.
const DefaultTTL = 30 * 24 * time.Hour

// Request describes one spacing search.
type Request struct {
	// Span is the total span in inches. It is ignored when SpanText is set.
	Span float64 `json:"span,omitempty"`

	// SpanText is the total span as measurement text ("42 1/2").
	SpanText string `json:"spanText,omitempty"`

	// Thickness is the baluster thickness as measurement text ("1½").
	Thickness string `json:"thickness"`

	// MinSpan rejects spans shorter than this; 0 disables the check.
	MinSpan float64 `json:"-"`

	// Refresh bypasses the cache lookup.
	Refresh bool `json:"refresh,omitempty"`

	thickness float64
}

// Validate resolves SpanText and checks both measurements, in the order the
// calculator form always has: span first, then thickness.
func (r *Request) Validate() error {
	if r.SpanText != "" {
		span, err := fraction.Parse(r.SpanText)
		if err != nil {
			return err
		}
		r.Span = span
	}
	if err := errors.ValidateSpan(r.Span, r.MinSpan); err != nil {
		return err
	}
	if err := errors.ValidateThicknessText(r.Thickness); err != nil {
		return err
	}
	t, err := fraction.Parse(r.Thickness)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err,
			"please enter a valid baluster thickness (e.g., 1.5, 1½, 1 1/2, 2¼)")
	}
	if err := errors.ValidateThickness(t); err != nil {
		return err
	}
	r.thickness = t
	return nil
}

// spanValue is the span as far as it can be read without validating.
func (r *Request) spanValue() float64 {
	if r.SpanText != "" {
		if v, err := fraction.Parse(r.SpanText); err == nil {
			return v
		}
	}
	return r.Span
}

// ThicknessValue returns the parsed thickness after a successful Validate.
func (r *Request) ThicknessValue() float64 {
	return r.thickness
}

// Response is the outcome of a search plus run metadata.
type Response struct {
	spacing.Result

	// Centers are the formatted post-center marks measured from the span start.
	Centers []string `json:"centers,omitempty"`

	// Cached reports whether the result came from the cache.
	Cached bool `json:"cached"`

	// Duration is the wall time of the run.
	Duration time.Duration `json:"-"`
}

// Candidates lists every accepted layout of both phases.
type Candidates struct {
	Exact       []spacing.Candidate `json:"exact"`
	Approximate []spacing.Candidate `json:"approximate"`
}

// Chosen returns the candidate [spacing.Search] would pick.
func (c Candidates) Chosen() (spacing.Candidate, bool) {
	if best, ok := spacing.Best(c.Exact); ok {
		return best, true
	}
	return spacing.Best(c.Approximate)
}
