// Package mlcs finds a longest common subsequence across any number of
// integer sequences through a precedence DAG.
//
// What:
//
//	Values present in every sequence form the vertex set. An edge a→b means
//	a occurs before b in every sequence (first occurrence when a value
//	repeats). Any directed path is then a subsequence common to all inputs,
//	and a longest path is a longest such subsequence.
//
// Algorithm:
//  1. common := ⋂ values(seq_i)
//  2. For each ordered pair (a,b) of common values, add a→b when a precedes
//     b in all sequences. O(|common|²·n).
//  3. Immediate predecessors of e: per sequence, the predecessor of e that
//     sits closest before e; union over sequences (Relation.ImmediatePredecessors).
//  4. Longest path by dynamic programming over a topological order of the
//     DAG: best[v] = 1 + max(best[p]) over predecessors p. The path is read
//     back from the best terminal (a sink).
//
// With a single sequence of distinct values the answer is the sequence
// itself; with two sequences this is the classic two-way LCS, although
// lis gives the same length in O(m log m) when one side is a permutation.
//
// Complexity:
//
//	Time   = O(|common|²·n)
//	Memory = O(|common|² + Σ|seq_i|)
//
// Errors:
//   - ErrNoSequences — called with zero sequences.
//   - context errors — when WithContext is cancelled.
package mlcs
