// Package hop compares two tree vectors over the same leaf set.
//
// What:
//
//	Both vectors are cut into n segments, the internal entries in front of
//	each leaf (treevec.Segments). For segment j, the labels of B are
//	rewritten as the positions the same labels take in A, labels absent
//	from A are dropped, and a longest increasing subsequence of the result
//	is a longest common subsequence of the two segments. Leaves always
//	match, since both vectors list leaves 1..n in the same order.
//
//	  Similarity(A, B) = n + Σ_j LCS(segA_j, segB_j)
//	  Distance(A, B)   = n + max(internal(A), internal(B)) − Similarity(A, B)
//
//	Distance is 0 exactly when every internal entry of the larger vector
//	is matched, i.e. for identical vectors.
//
// Functions:
//   - Similarity — the score.
//   - Alignment  — one witness: the matched labels of A and a leaf marker
//     per segment, in vector order.
//   - Distance   — the complement above.
//   - Matrix     — pairwise similarities of k vectors, pairs in parallel.
//
// Options: WithWorkers evaluates segments concurrently (errgroup); results
// are merged in segment order so the outcome never depends on scheduling.
// WithLogger traces per-segment scores at debug level.
//
// Complexity: O(Σ_j m_j log m_j) for segment sizes m_j. A segment of A that
// repeats a label (several unary nodes) is compared with an O(m_a·m_b)
// table instead.
//
// Errors:
//   - ErrLeafSetMismatch         — vectors over different leaf sets.
//   - treevec.ErrMalformedVector — a vector fails validation.
package hop
