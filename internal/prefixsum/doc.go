// Package prefixsum provides a cumulative-count index over a sequence of
// non-negative integers.
//
// The view model keeps one entry per model line holding the number of view
// lines the model line produces (0 when folded away). PrefixSum answers
// "how many view lines come before this model line" and IndexOf answers the
// inverse "which model line owns this view line".
//
// The index is a Fenwick (binary indexed) tree over a value slice:
//
//   - PrefixSum, SetValue and IndexOf are O(log n)
//   - InsertValues and RemoveValues splice the value slice and rebuild the
//     tree in O(n + k)
//
// Indices are 0-based. Out-of-range arguments and negative values are
// programming errors and panic; callers clamp before calling in.
package prefixsum
