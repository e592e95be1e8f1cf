// Package lis computes longest strictly increasing subsequences (LIS) of
// ordered sequences using patience sorting.
//
// 🚀 What is LIS?
//
//	Given s = [5, 3, 4, 9, 6, 2, 8], a longest strictly increasing
//	subsequence is [3, 4, 6, 8] (length 4). Any sequence over a permutation
//	of positions turns a two-way longest common subsequence into an LIS:
//	relabel B by the positions its values occupy in A, then an increasing
//	run of positions is exactly a subsequence common to both.
//
// ✨ Key features:
//   - Length: O(m log m) time, O(m) memory, no reconstruction.
//   - Sequence / Indices: same bound, plus one back-pointer per position
//     so that a concrete LIS can be rebuilt.
//   - Generic over cmp.Ordered (ints, floats, strings).
//
// ⚙️ Usage:
//
//	n, err := lis.Length([]int{5, 3, 4, 9, 6, 2, 8})     // 4
//	seq, err := lis.Sequence([]int{5, 3, 4, 9, 6, 2, 8}) // [3 4 6 8]
//
// Tie policy:
//
//	When several LIS exist the reconstruction follows the element most
//	recently placed on each pile, so the answer is deterministic for a
//	given scan order but not unique in general.
//
// Errors:
//   - ErrNonFiniteInput — a floating-point element is NaN or ±Inf.
package lis
