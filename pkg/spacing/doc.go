// Package spacing lays out balusters evenly across a railing span.
//
// Given the total span and the thickness of each baluster, [Solve] searches
// post counts from 1 to [MaxPosts] for the layout whose clear gap between
// posts is closest to [TargetSpacing] while staying inside the
// [MinSpacing, MaxSpacing) window.
//
// The search runs in two phases:
//
//   - Exact: the gap, the space before the first post and the space after the
//     last post are all equal and land on a whole number of sixteenths.
//   - Approximate: only tried when no exact layout exists. The gap is rounded
//     to the nearest sixteenth and the leftover span is split between the two
//     ends; the end gaps may differ from the post gap by up to [MaxDiff].
//
// Within a phase the candidate with the smallest deviation from the target
// wins; on a tie the smaller post count is kept.
//
// [Solve] never returns an error. Unparseable thickness text and spans with no
// qualifying layout both come back as a [Result] with Success false and a
// message meant for display. Callers that want the structured error use
// [Search] instead.
//
// Everything in this package is a pure function of its arguments and safe for
// concurrent use.
package spacing
