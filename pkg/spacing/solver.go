package spacing

import (
	"fmt"
	"math"

	"github.com/matzehuels/balustrade/pkg/errors"
	"github.com/matzehuels/balustrade/pkg/fraction"
)

// =============================================================================
// Search Parameters
// =============================================================================

const (
	// Unit is the rounding unit in parts per inch (sixteenths).
	Unit = fraction.DefaultUnit

	// TargetSpacing is the preferred clear gap between posts, in inches.
	TargetSpacing = 3.0

	// MinSpacing is the smallest accepted gap (inclusive).
	MinSpacing = 3.0

	// MaxSpacing is the largest accepted gap (exclusive).
	MaxSpacing = 4.0

	// MaxDiff is the largest allowed difference between the end gap and the
	// post gap for approximate layouts.
	MaxDiff = 0.25

	// MaxPosts is the search ceiling for the post count.
	MaxPosts = 300

	// Epsilon absorbs binary rounding error when testing for whole sixteenths.
	Epsilon = 1e-4
)

// NoSolutionMessage is the display message when neither phase finds a layout.
const NoSolutionMessage = "No suitable configuration found with spacing between 3-4 inches. Try adjusting parameters."

// =============================================================================
// Types
// =============================================================================

// MatchKind tells how a candidate was found.
type MatchKind int

const (
	// Exact layouts have equal gaps everywhere, in whole sixteenths.
	Exact MatchKind = iota
	// Approximate layouts round the gap and absorb the remainder at the ends.
	Approximate
)

// String returns "Exact" or "Approximate".
func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "Exact"
	case Approximate:
		return "Approximate"
	}
	return fmt.Sprintf("MatchKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *MatchKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Exact":
		*k = Exact
	case "Approximate":
		*k = Approximate
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown match kind: %q", string(b))
	}
	return nil
}

// Candidate is one accepted post count and the measurements it produces.
// All lengths are in inches.
type Candidate struct {
	Posts      int       `json:"postCount"`
	Spacing    float64   `json:"spacing"`    // clear gap between adjacent posts
	EdgeOffset float64   `json:"edgeOffset"` // span start to first post center
	Pitch      float64   `json:"pitch"`      // center-to-center distance
	Deviation  float64   `json:"deviation"`  // |Spacing - TargetSpacing|
	Kind       MatchKind `json:"kind"`
	Diff       float64   `json:"diff,omitempty"` // |end gap - Spacing|, approximate only
	EndGap     float64   `json:"endGap"`         // span start to first post face
}

// Result is the display-ready outcome of [Solve].
type Result struct {
	Success    bool       `json:"success"`
	Posts      int        `json:"postCount,omitempty"`
	EdgeOffset string     `json:"edgeOffset,omitempty"`
	Pitch      string     `json:"pitch,omitempty"`
	MatchType  string     `json:"matchType,omitempty"`
	Spacing    float64    `json:"spacing,omitempty"`
	Message    string     `json:"message,omitempty"`
	Thickness  float64    `json:"thickness,omitempty"`
	Candidate  *Candidate `json:"candidate,omitempty"`
}

// =============================================================================
// Solve
// =============================================================================

// Solve parses thicknessText and searches for the best layout across span.
// Failures are reported in the returned Result rather than as an error.
func Solve(span float64, thicknessText string) Result {
	thickness, err := fraction.Parse(thicknessText)
	if err != nil {
		return Result{Success: false, Message: "Calculation error: " + errors.UserMessage(err)}
	}
	return SolveValue(span, thickness)
}

// SolveValue is [Solve] for an already parsed thickness.
func SolveValue(span, thickness float64) Result {
	c, err := Search(span, thickness)
	if err != nil {
		return Result{Success: false, Message: NoSolutionMessage, Thickness: thickness}
	}
	return NewResult(c, thickness)
}

// NewResult formats a candidate for display.
func NewResult(c Candidate, thickness float64) Result {
	matchType := c.Kind.String()
	if c.Kind == Approximate {
		matchType = fmt.Sprintf("%s (Diff: %s)", matchType, fraction.Format(c.Diff))
	}
	return Result{
		Success:    true,
		Posts:      c.Posts,
		EdgeOffset: fraction.Format(c.EdgeOffset),
		Pitch:      fraction.Format(c.Pitch),
		MatchType:  matchType,
		Spacing:    c.Spacing,
		Thickness:  thickness,
		Candidate:  &c,
	}
}

// Search returns the best exact layout, or the best approximate layout when no
// exact one exists. It fails with [errors.ErrCodeNoSolution] otherwise.
func Search(span, thickness float64) (Candidate, error) {
	if c, ok := Best(ExactCandidates(span, thickness)); ok {
		return c, nil
	}
	if c, ok := Best(ApproximateCandidates(span, thickness)); ok {
		return c, nil
	}
	return Candidate{}, errors.New(errors.ErrCodeNoSolution,
		"no post count up to %d gives spacing in [%g, %g) for span %g and thickness %g",
		MaxPosts, MinSpacing, MaxSpacing, span, thickness)
}

// Best picks the candidate closest to the target spacing. Only a strictly
// smaller deviation replaces the current pick, so ties keep the earliest.
func Best(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Deviation < best.Deviation {
			best = c
		}
	}
	return best, true
}

// =============================================================================
// Phases
// =============================================================================

// ExactCandidates lists every post count whose equal gaps are a whole number
// of sixteenths inside the spacing window, in increasing post count.
func ExactCandidates(span, thickness float64) []Candidate {
	var out []Candidate
	for n := 1; n <= MaxPosts; n++ {
		units := (span*Unit - float64(n)*thickness*Unit) / float64(n+1)
		if units <= 0 || math.Abs(units-math.Floor(units+0.5)) >= Epsilon {
			continue
		}
		s := units / Unit
		if !inWindow(s) {
			continue
		}
		out = append(out, Candidate{
			Posts:      n,
			Spacing:    s,
			EdgeOffset: s + thickness/2,
			Pitch:      s + thickness,
			Deviation:  math.Abs(s - TargetSpacing),
			Kind:       Exact,
			EndGap:     s,
		})
	}
	return out
}

// ApproximateCandidates lists every post count whose rounded gap is inside the
// spacing window and whose end gaps stay within MaxDiff of it.
func ApproximateCandidates(span, thickness float64) []Candidate {
	var out []Candidate
	for n := 1; n <= MaxPosts; n++ {
		posts := float64(n)
		s := fraction.Round((span-posts*thickness)/(posts+1), Unit)
		end := fraction.Round((span-posts*thickness-(posts-1)*s)/2, Unit)
		diff := math.Abs(end - s)

		if end <= 0 || s <= 0 || diff > MaxDiff || !inWindow(s) {
			continue
		}
		out = append(out, Candidate{
			Posts:      n,
			Spacing:    s,
			EdgeOffset: end + thickness/2,
			Pitch:      s + thickness,
			Deviation:  math.Abs(s - TargetSpacing),
			Kind:       Approximate,
			Diff:       diff,
			EndGap:     end,
		})
	}
	return out
}

// Centers returns the distance from the span start to the center of every
// post, in order. These are the marks to lay out on the rail.
func Centers(c Candidate) []float64 {
	out := make([]float64, c.Posts)
	for i := range out {
		out[i] = c.EdgeOffset + float64(i)*c.Pitch
	}
	return out
}

func inWindow(s float64) bool {
	return s >= MinSpacing && s < MaxSpacing
}
