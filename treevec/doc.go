// Package treevec encodes rooted, leaf-labeled trees (binary or
// multifurcating) into a canonical vector, the double-occurrence word, and
// decodes such vectors back into trees.
//
// 🚀 What is a tree vector?
//
//	Number the n leaves 1..n through a LeafIndex. Every node gets the
//	smallest leaf index below it (its min). An internal node is labeled
//	with the mins of its children minus its own min; for a binary node
//	this is a single index, for a node with k children a set of k-1
//	indices. Above the tree sits a dummy root labeled {1}.
//
//	For each leaf i in increasing order the vector lists, top-down, the
//	internal nodes whose min is i, then leaf i itself:
//
//	  ((A:1,B:1):2,(C:1,D:1):2);   A=1 B=2 C=3 D=4
//
//	  {1}    {3}   {2}  1  2  {4}  3  4
//	  dummy  root  AB   A  B  CD   C  D
//
//	Each leaf index occurs once as a leaf and once inside an internal
//	label (index 1 inside the dummy root), hence "double occurrence".
//
// ✨ Key features:
//   - Encode / Decode between *tree.Tree (github.com/evolbioinfo/gotree)
//     and Vector, with exact round-trip of topology, names and branch lengths.
//   - Segments: the run of internal entries before each leaf, the unit the
//     hop package compares.
//   - Set-valued Label with value equality, usable as a map key.
//   - Text format (label:name:dist, optional compact leaves), JSON and YAML.
//
// ⚙️ Usage:
//
//	t, _ := treevec.ParseNewick("((A:1,B:1):2,(C:1,D:1):2);")
//	v, err := treevec.Encode(t, treevec.LeafIndex{"A": 1, "B": 2, "C": 3, "D": 4})
//	back, err := treevec.Decode(v)
//
// Errors:
//   - ErrInvalidLeafMapping — the LeafIndex is not a bijection onto 1..n
//     for the tree's leaves. All problems are reported together.
//   - ErrMalformedVector    — the vector violates the encoding structure.
//   - ErrInvalidBranchLength — a tree edge has a negative or non-finite
//     length (edges without a length encode as 0).
//   - ErrNilTree            — Encode called with a nil tree or root.
//   - ErrFormat             — text form cannot be written or parsed.
//
// Complexity: Encode O(N + n·h) where h is the tree height, Decode O(N)
// where N is the vector length.
package treevec
