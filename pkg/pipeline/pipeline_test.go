package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/balustrade/pkg/cache"
	"github.com/matzehuels/balustrade/pkg/errors"
	"github.com/matzehuels/balustrade/pkg/observability"
	"github.com/matzehuels/balustrade/pkg/spacing"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		wantCode errors.Code
		wantSpan float64
	}{
		{"numeric span", Request{Span: 42, Thickness: "1½", MinSpan: 10}, "", 42},
		{"span text", Request{SpanText: "42 1/2", Thickness: "1 1/2"}, "", 42.5},
		{"span text wins", Request{Span: 1, SpanText: "36", Thickness: "1"}, "", 36},
		{"zero span", Request{Thickness: "1"}, errors.ErrCodeInvalidInput, 0},
		{"short span", Request{Span: 8, Thickness: "1", MinSpan: 10}, errors.ErrCodeInvalidInput, 0},
		{"bad span text", Request{SpanText: "long", Thickness: "1"}, errors.ErrCodeParse, 0},
		{"empty thickness", Request{Span: 42, Thickness: " "}, errors.ErrCodeInvalidInput, 0},
		{"bad thickness", Request{Span: 42, Thickness: "thick"}, errors.ErrCodeInvalidInput, 0},
		{"zero thickness", Request{Span: 42, Thickness: "0"}, errors.ErrCodeInvalidInput, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := req.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				if req.Span != tt.wantSpan {
					t.Errorf("Span = %v, want %v", req.Span, tt.wantSpan)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestRunnerSolve(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	resp, err := r.Solve(context.Background(), Request{Span: 12.5, Thickness: "1"})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !resp.Success || resp.Posts != 2 || resp.MatchType != "Exact" {
		t.Errorf("Solve = %+v", resp.Result)
	}
	if len(resp.Centers) != 2 || resp.Centers[0] != "4" || resp.Centers[1] != "8 ½" {
		t.Errorf("Centers = %v, want [4 8 ½]", resp.Centers)
	}
	if resp.Cached {
		t.Error("NullCache response should not be cached")
	}
}

func TestRunnerSolveNoSolution(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	resp, err := r.Solve(context.Background(), Request{Span: 10, Thickness: "5"})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if resp.Success {
		t.Fatalf("Solve(10, 5) = %+v, want failure", resp.Result)
	}
	if resp.Message != spacing.NoSolutionMessage {
		t.Errorf("Message = %q", resp.Message)
	}
	if len(resp.Centers) != 0 {
		t.Errorf("Centers = %v, want none", resp.Centers)
	}
}

func TestRunnerCaching(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	r := NewRunner(fc, nil, quietLogger())
	req := Request{Span: 50, Thickness: "1¾"}

	first, err := r.Solve(ctx, req)
	if err != nil {
		t.Fatalf("first Solve error: %v", err)
	}
	if first.Cached {
		t.Error("first Solve should miss the cache")
	}

	second, err := r.Solve(ctx, req)
	if err != nil {
		t.Fatalf("second Solve error: %v", err)
	}
	if !second.Cached {
		t.Error("second Solve should hit the cache")
	}
	if second.Result.MatchType != first.Result.MatchType || second.Posts != first.Posts {
		t.Errorf("cached result %+v differs from %+v", second.Result, first.Result)
	}
	if second.Candidate == nil || second.Candidate.Kind != spacing.Approximate {
		t.Errorf("cached candidate = %+v, want approximate", second.Candidate)
	}
	if len(second.Centers) != 9 {
		t.Errorf("cached Centers has %d marks, want 9", len(second.Centers))
	}

	refreshed, err := r.Solve(ctx, Request{Span: 50, Thickness: "1¾", Refresh: true})
	if err != nil {
		t.Fatalf("refresh Solve error: %v", err)
	}
	if refreshed.Cached {
		t.Error("Refresh should bypass the cache")
	}

	if hooks.miss != 1 || hooks.hit != 1 || hooks.set != 2 {
		t.Errorf("cache hooks = %d miss, %d hit, %d set; want 1, 1, 2", hooks.miss, hooks.hit, hooks.set)
	}
}

func TestRunnerCorruptCacheEntry(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, quietLogger())
	key := r.Keyer.SolveKey(12.5, "1")
	if err := fc.Set(ctx, key, []byte("{not json"), time.Hour); err != nil {
		t.Fatal(err)
	}

	resp, err := r.Solve(ctx, Request{Span: 12.5, Thickness: "1"})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if resp.Cached || resp.Posts != 2 {
		t.Errorf("Solve = cached %v posts %d, want fresh 2", resp.Cached, resp.Posts)
	}
}

func TestRunnerSolveInvalid(t *testing.T) {
	hooks := &recordingSolverHooks{}
	observability.SetSolverHooks(hooks)
	defer observability.Reset()

	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Solve(context.Background(), Request{Span: 5, Thickness: "1", MinSpan: 10})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Solve error = %v, want invalid input", err)
	}
	if hooks.lastErr == nil {
		t.Error("OnSolveComplete should receive the validation error")
	}
}

func TestRunnerSolveReportsSpanText(t *testing.T) {
	hooks := &recordingSolverHooks{}
	observability.SetSolverHooks(hooks)
	defer observability.Reset()

	r := NewRunner(nil, nil, quietLogger())
	if _, err := r.Solve(context.Background(), Request{SpanText: "12 1/2", Thickness: "1"}); err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if hooks.startSpan != 12.5 {
		t.Errorf("OnSolveStart span = %v, want 12.5", hooks.startSpan)
	}

	_, err := r.Solve(context.Background(), Request{SpanText: "8", Thickness: "1", MinSpan: 10})
	if err == nil {
		t.Fatal("Solve should reject a short span")
	}
	if hooks.startSpan != 8 {
		t.Errorf("OnSolveStart span for rejected request = %v, want 8", hooks.startSpan)
	}
}

func TestRunnerSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil, nil, quietLogger())
	if _, err := r.Solve(ctx, Request{Span: 12.5, Thickness: "1"}); err != context.Canceled {
		t.Errorf("Solve error = %v, want context.Canceled", err)
	}
	if _, err := r.Candidates(ctx, Request{Span: 12.5, Thickness: "1"}); err != context.Canceled {
		t.Errorf("Candidates error = %v, want context.Canceled", err)
	}
}

func TestRunnerCandidates(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	c, err := r.Candidates(context.Background(), Request{Span: 40, Thickness: "1 1/2"})
	if err != nil {
		t.Fatalf("Candidates error: %v", err)
	}
	if len(c.Exact) != 1 || len(c.Approximate) != 2 {
		t.Errorf("got %d exact and %d approximate, want 1 and 2", len(c.Exact), len(c.Approximate))
	}
	chosen, ok := c.Chosen()
	if !ok || chosen.Kind != spacing.Exact || chosen.Posts != 7 {
		t.Errorf("Chosen() = %+v, want exact with 7 posts", chosen)
	}

	empty := Candidates{}
	if _, ok := empty.Chosen(); ok {
		t.Error("Chosen() on empty listing should report false")
	}
}

func TestResponseJSON(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	resp, err := r.Solve(context.Background(), Request{Span: 12.5, Thickness: "1"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"success", "postCount", "edgeOffset", "pitch", "matchType", "centers", "cached"} {
		if _, ok := m[key]; !ok {
			t.Errorf("response JSON missing %q: %s", key, data)
		}
	}
}

type countingCacheHooks struct {
	hit, miss, set int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hit++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.miss++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.set++ }

type recordingSolverHooks struct {
	startSpan float64
	lastErr   error
}

func (h *recordingSolverHooks) OnSolveStart(_ context.Context, span float64, _ string) {
	h.startSpan = span
}
func (h *recordingSolverHooks) OnSolveComplete(_ context.Context, _ int, _ string, _ time.Duration, err error) {
	h.lastErr = err
}
