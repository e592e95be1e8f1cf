package treevec

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
	"github.com/evolbioinfo/gotree/tree"
)

// node is one slot of the encoder's arena, indexed by preorder position.
type node struct {
	name     string
	length   float64
	parent   int // arena position, -1 for the root
	children []int
	min      int   // smallest leaf index below the node
	label    Label // leaf: {index}; internal: children's mins minus min
}

// Encode converts t into its canonical Vector.
//
// idx assigns the leaf indices. When idx is nil, leaves are numbered from 1
// in the order a postorder traversal visits them (left to right).
//
// Steps:
//  1. Flatten t into an arena in preorder, remembering parent positions.
//  2. Walk the arena backwards (children before parents) to compute each
//     node's min and label.
//  3. For i = 1..n, climb from leaf i while the ancestor's label does not
//     contain i; emit those ancestors top-down, then leaf i.
//
// Returns ErrInvalidLeafMapping (aggregating every problem found) when idx
// is not a bijection from the leaf names onto 1..n, and
// ErrInvalidBranchLength for a negative or non-finite edge length; no
// partial vector is returned.
func Encode(t *tree.Tree, idx LeafIndex) (Vector, error) {
	if t == nil || t.Root() == nil {
		return nil, ErrNilTree
	}

	// 1. Arena in preorder
	nodes, err := flatten(t.Root())
	if err != nil {
		return nil, err
	}

	// 2. Leaf indices, then mins and labels bottom-up
	leafAt, err := assignLeaves(nodes, idx)
	if err != nil {
		return nil, err
	}
	for p := len(nodes) - 1; p >= 0; p-- {
		nd := &nodes[p]
		if len(nd.children) == 0 {
			continue
		}
		mins := make([]int, len(nd.children))
		nd.min = nodes[nd.children[0]].min
		for k, c := range nd.children {
			mins[k] = nodes[c].min
			nd.min = min(nd.min, mins[k])
		}
		rest := mins[:0]
		for _, m := range mins {
			if m != nd.min {
				rest = append(rest, m)
			}
		}
		nd.label = NewLabel(rest...)
	}

	// 3. Concatenate the per-leaf paths behind the dummy root
	n := len(leafAt) - 1
	v := make(Vector, 0, len(nodes)+1)
	v = append(v, Entry{Label: NewLabel(1)})
	var path []int
	for i := 1; i <= n; i++ {
		leaf := leafAt[i]
		path = path[:0]
		for p := nodes[leaf].parent; p >= 0 && !nodes[p].label.Contains(i); p = nodes[p].parent {
			path = append(path, p)
		}
		for k := len(path) - 1; k >= 0; k-- {
			nd := nodes[path[k]]
			v = append(v, Entry{Label: nd.label, Name: nd.name, BranchLength: nd.length})
		}
		nd := nodes[leaf]
		v = append(v, Entry{Label: nd.label, Name: nd.name, BranchLength: nd.length, Leaf: true})
	}

	return v, nil
}

// flatten lays the subtree under root out in preorder. The explicit stack
// keeps deep caterpillar trees off the goroutine stack.
func flatten(root *tree.Node) ([]node, error) {
	type item struct {
		n      *tree.Node
		parent int
	}
	var nodes []node
	stack := []item{{n: root, parent: -1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		length, err := branchLength(it.n)
		if err != nil {
			return nil, err
		}
		p := len(nodes)
		nodes = append(nodes, node{
			name:   it.n.Name(),
			length: length,
			parent: it.parent,
		})
		if it.parent >= 0 {
			nodes[it.parent].children = append(nodes[it.parent].children, p)
		}
		kids := children(it.n)
		for k := len(kids) - 1; k >= 0; k-- {
			stack = append(stack, item{n: kids[k], parent: p})
		}
	}

	return nodes, nil
}

// assignLeaves sets min and label on every leaf of the arena and returns
// leafAt, where leafAt[i] is the arena position of leaf i (leafAt[0] unused).
func assignLeaves(nodes []node, idx LeafIndex) ([]int, error) {
	var leaves []int
	for p := range nodes {
		if len(nodes[p].children) == 0 {
			leaves = append(leaves, p)
		}
	}
	n := len(leaves)
	leafAt := make([]int, n+1)

	// preorder leaf order equals postorder leaf order
	if idx == nil {
		for k, p := range leaves {
			nodes[p].min = k + 1
			nodes[p].label = NewLabel(k + 1)
			leafAt[k+1] = p
		}

		return leafAt, nil
	}

	errs := &errors.M{}
	if err := idx.Validate(n); err != nil {
		errs.Append(err)
	}
	seen := make(map[string]bool, n)
	for _, p := range leaves {
		name := nodes[p].name
		i, ok := idx[name]
		switch {
		case !ok:
			errs.Append(fmt.Errorf("%w: leaf %q has no index", ErrInvalidLeafMapping, name))
			continue
		case seen[name]:
			errs.Append(fmt.Errorf("%w: leaf name %q is not unique", ErrInvalidLeafMapping, name))
			continue
		case i < 1 || i > n:
			continue // reported by Validate
		}
		seen[name] = true
		nodes[p].min = i
		nodes[p].label = NewLabel(i)
		leafAt[i] = p
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return leafAt, nil
}

// children returns the neighbors of n other than its parent, in the order
// gotree stores them.
func children(n *tree.Node) []*tree.Node {
	parent, err := n.Parent()
	out := make([]*tree.Node, 0, len(n.Neigh()))
	for _, c := range n.Neigh() {
		if err == nil && c == parent {
			continue
		}
		out = append(out, c)
	}

	return out
}

// branchLength returns the length of the edge above n, 0 when n is the
// root or the edge carries no length (tree.NIL_LENGTH). Other negative or
// non-finite lengths yield ErrInvalidBranchLength.
func branchLength(n *tree.Node) (float64, error) {
	e, err := n.ParentEdge()
	if err != nil {
		return 0, nil
	}
	l := e.Length()
	switch {
	case l == tree.NIL_LENGTH:
		return 0, nil
	case l < 0 || math.IsNaN(l) || math.IsInf(l, 0):
		return 0, fmt.Errorf("%w: %v above node %q", ErrInvalidBranchLength, l, n.Name())
	}

	return l, nil
}
