// Package treevec is the root of a toolkit for encoding rooted phylogenetic
// trees as vectors and comparing them, from the sequence primitives up to
// a command line tool.
//
// 🚀 What is treevec?
//
//	A small, dependency-light set of packages that brings together:
//		• Sequence primitives: longest increasing subsequence (lis)
//		• Precedence DAGs with an iterative topological sort (dag)
//		• Longest common subsequence of any number of sequences (mlcs)
//		• Tree ↔ vector codec with set-valued hop labels (treevec)
//		• Hop similarity and distance between two trees (hop)
//
// ✨ Why vectors?
//
//   - Exact – the encoding is a bijection for a fixed leaf numbering
//   - Linear – encode and decode in one pass over the tree or vector
//   - Comparable – the similarity reduces to per-segment LIS runs
//
// Layout:
//
//	lis/         — patience-sorting LIS: Length, Indices, Sequence
//	dag/         — thread-safe directed graph + TopologicalSort
//	mlcs/        — n-way LCS over the common-precedence relation
//	treevec/     — Encode, Decode, Segments, text/JSON/YAML forms
//	hop/         — Similarity, Alignment, Distance, Matrix
//	cmd/treevec/ — encode, decode, compare, lcs
//	examples/    — runnable scenarios
//
// Quick example, ((A,B),(C,D)) with A..D = 1..4:
//
//	{1} {3} {2} 1 2 {4} 3 4
//
// The dummy root {1} is followed, for every leaf i, by the internal nodes
// whose smallest leaf is i and then by leaf i itself.
//
//	go get github.com/katalvlaran/treevec
package treevec
