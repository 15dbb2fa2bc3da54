package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/balustrade/pkg/cache"
	"github.com/matzehuels/balustrade/pkg/fraction"
	"github.com/matzehuels/balustrade/pkg/observability"
	"github.com/matzehuels/balustrade/pkg/spacing"
)

// keyType labels cache events for observability hooks.
const keyType = "solve"

// Runner encapsulates solving with caching.
//
// The Runner holds no per-request state, so one Runner can serve many
// goroutines as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// the default keyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Solve validates req, then returns a cached or freshly computed layout.
// Errors are returned only for invalid input or a cancelled context.
func (r *Runner) Solve(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	hooks := observability.Solver()
	hooks.OnSolveStart(ctx, req.spanValue(), req.Thickness)

	if err := ctx.Err(); err != nil {
		hooks.OnSolveComplete(ctx, 0, "", time.Since(start), err)
		return nil, err
	}
	if err := req.Validate(); err != nil {
		r.Logger.Debug("rejected request", "span", req.Span, "span_text", req.SpanText, "thickness", req.Thickness, "err", err)
		hooks.OnSolveComplete(ctx, 0, "", time.Since(start), err)
		return nil, err
	}

	key := r.Keyer.SolveKey(req.Span, req.Thickness)
	resp := &Response{}

	if res, ok := r.lookup(ctx, key, req.Refresh); ok {
		resp.Result = res
		resp.Cached = true
	} else {
		resp.Result = spacing.Solve(req.Span, req.Thickness)
		r.store(ctx, key, resp.Result)
	}

	if c := resp.Candidate; c != nil {
		for _, x := range spacing.Centers(*c) {
			resp.Centers = append(resp.Centers, fraction.Format(x))
		}
	}
	resp.Duration = time.Since(start)

	kind := ""
	if resp.Candidate != nil {
		kind = resp.Candidate.Kind.String()
	}
	if resp.Success {
		r.Logger.Info("solved",
			"span", req.Span,
			"thickness", req.Thickness,
			"posts", resp.Posts,
			"match", kind,
			"cached", resp.Cached,
			"duration", resp.Duration)
	} else {
		r.Logger.Warn("no layout", "span", req.Span, "thickness", req.Thickness)
	}
	hooks.OnSolveComplete(ctx, resp.Posts, kind, resp.Duration, nil)
	return resp, nil
}

// Candidates validates req and lists every accepted layout of both phases.
// Listings are cheap and are not cached.
func (r *Runner) Candidates(ctx context.Context, req Request) (Candidates, error) {
	if err := ctx.Err(); err != nil {
		return Candidates{}, err
	}
	if err := req.Validate(); err != nil {
		return Candidates{}, err
	}
	t := req.ThicknessValue()
	out := Candidates{
		Exact:       spacing.ExactCandidates(req.Span, t),
		Approximate: spacing.ApproximateCandidates(req.Span, t),
	}
	r.Logger.Debug("listed candidates", "exact", len(out.Exact), "approximate", len(out.Approximate))
	return out, nil
}

func (r *Runner) lookup(ctx context.Context, key string, refresh bool) (spacing.Result, bool) {
	if refresh {
		return spacing.Result{}, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return spacing.Result{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return spacing.Result{}, false
	}

	var res spacing.Result
	if err := json.Unmarshal(data, &res); err != nil {
		r.Logger.Debug("discarding unreadable cache entry", "err", err)
		return spacing.Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return res, true
}

func (r *Runner) store(ctx context.Context, key string, res spacing.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
