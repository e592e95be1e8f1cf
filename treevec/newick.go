package treevec

import (
	"slices"
	"strconv"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// ParseNewick reads a single tree in Newick notation.
func ParseNewick(s string) (*tree.Tree, error) {
	return newick.NewParser(strings.NewReader(s)).Parse()
}

// EncodeNewick parses s and encodes the tree with idx.
func EncodeNewick(s string, idx LeafIndex) (Vector, error) {
	t, err := ParseNewick(s)
	if err != nil {
		return nil, err
	}

	return Encode(t, idx)
}

// Newick decodes v and writes the tree in Newick notation.
func (v Vector) Newick() (string, error) {
	t, err := Decode(v)
	if err != nil {
		return "", err
	}

	return t.Newick(), nil
}

// Isomorphic reports whether a and b have the same rooted topology, node
// names and branch lengths, regardless of child order. Missing branch
// lengths compare equal to 0.
func Isomorphic(a, b *tree.Tree) bool {
	if a == nil || b == nil || a.Root() == nil || b.Root() == nil {
		return a == b
	}

	return canonical(a.Root()) == canonical(b.Root())
}

// canonical renders the subtree under n with children sorted, so that equal
// unordered trees give equal strings.
func canonical(n *tree.Node) string {
	kids := children(n)
	parts := make([]string, len(kids))
	for i, c := range kids {
		parts[i] = canonical(c)
	}
	slices.Sort(parts)

	var sb strings.Builder
	if len(parts) > 0 {
		sb.WriteString("(" + strings.Join(parts, ",") + ")")
	}
	sb.WriteString(strconv.Quote(n.Name()))
	l, _ := branchLength(n)
	sb.WriteString(":" + strconv.FormatFloat(l, 'g', -1, 64))

	return sb.String()
}
