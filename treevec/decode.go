package treevec

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
	"github.com/evolbioinfo/gotree/tree"
)

// Validate checks the structural invariants of v:
//   - v starts with the dummy root {1} and ends with a leaf;
//   - the k-th leaf entry carries index k;
//   - every index 2..n sits in exactly one internal label, and no internal
//     label holds anything else;
//   - branch lengths are finite and non-negative.
//
// All violations are reported; the error matches ErrMalformedVector.
func (v Vector) Validate() error {
	_, err := v.owners()

	return err
}

// owners validates v and returns owner, where owner[k] is the position of
// the internal entry whose label contains leaf index k (owner[1] = 0, the
// dummy root).
func (v Vector) owners() (map[int]int, error) {
	if len(v) < 2 {
		return nil, fmt.Errorf("%w: %d entries, need at least 2", ErrMalformedVector, len(v))
	}
	errs := &errors.M{}
	if v[0].Leaf || v[0].Label != NewLabel(1) {
		errs.Append(fmt.Errorf("%w: first entry %v is not the dummy root {1}", ErrMalformedVector, v[0].Label))
	}
	if !v[len(v)-1].Leaf {
		errs.Append(fmt.Errorf("%w: last entry is not a leaf", ErrMalformedVector))
	}

	n := v.N()
	owner := map[int]int{1: 0}
	leaf := 0
	for p := 1; p < len(v); p++ {
		e := v[p]
		if l := e.BranchLength; math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
			errs.Append(fmt.Errorf("%w: entry %d has branch length %v", ErrMalformedVector, p, l))
		}
		if e.Leaf {
			leaf++
			if e.Label != NewLabel(leaf) {
				errs.Append(fmt.Errorf("%w: leaf entry %d is labeled %v, want {%d}", ErrMalformedVector, p, e.Label, leaf))
			}
			continue
		}
		for _, k := range e.Label.Indices() {
			if k < 2 || k > n {
				errs.Append(fmt.Errorf("%w: entry %d label %v holds index %d outside 2..%d", ErrMalformedVector, p, e.Label, k, n))
				continue
			}
			if q, dup := owner[k]; dup {
				errs.Append(fmt.Errorf("%w: index %d occurs in entries %d and %d", ErrMalformedVector, k, q, p))
				continue
			}
			owner[k] = p
		}
	}
	for k := 2; k <= n; k++ {
		if _, ok := owner[k]; !ok {
			errs.Append(fmt.Errorf("%w: index %d has no internal occurrence", ErrMalformedVector, k))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return owner, nil
}

// Parents returns, for every position of v, the position of its parent
// entry; the dummy root gets -1 and the tree root 0.
//
// Adjacent pairs (v[j], v[j+1]) fall in four cases:
//
//	internal → internal  v[j+1] is the next node down the same path: child of v[j]
//	internal → leaf      v[j+1] is the leaf ending that path: child of v[j]
//	leaf → internal      v[j+1] tops the path of the next leaf k (scan forward):
//	                     child of the internal entry whose label contains k
//	leaf → leaf          v[j+1] is leaf k with an empty path: child of the
//	                     internal entry whose label contains k
func (v Vector) Parents() ([]int, error) {
	owner, err := v.owners()
	if err != nil {
		return nil, err
	}

	// nextLeaf[p]: index of the first leaf at or after p
	nextLeaf := make([]int, len(v))
	for p, k := len(v)-1, 0; p >= 0; p-- {
		if v[p].Leaf {
			k = v[p].Index()
		}
		nextLeaf[p] = k
	}

	parent := make([]int, len(v))
	parent[0] = -1
	for j := 0; j+1 < len(v); j++ {
		switch cur, next := v[j], v[j+1]; {
		case !cur.Leaf && !next.Leaf, !cur.Leaf && next.Leaf:
			parent[j+1] = j
		case cur.Leaf && !next.Leaf:
			parent[j+1] = owner[nextLeaf[j+1]]
		default: // leaf → leaf
			parent[j+1] = owner[next.Index()]
		}
		if parent[j+1] >= j+1 || (j > 0 && parent[j+1] == 0) {
			return nil, fmt.Errorf("%w: entry %d would hang below later entry %d", ErrMalformedVector, j+1, parent[j+1])
		}
	}

	return parent, nil
}

// Decode rebuilds the tree encoded by v. The returned tree is rooted at the
// single child of the dummy root; every node carries its name and, except
// the root, its branch length.
//
// Returns ErrMalformedVector, and no tree, when v is not a valid encoding.
func Decode(v Vector) (*tree.Tree, error) {
	parent, err := v.Parents()
	if err != nil {
		return nil, err
	}

	t := tree.NewTree()
	nodes := make([]*tree.Node, len(v))
	for p := 1; p < len(v); p++ {
		nodes[p] = t.NewNode()
		nodes[p].SetName(v[p].Name)
	}
	// position 1 always follows the dummy root and becomes the tree root
	for p := 2; p < len(v); p++ {
		e := t.ConnectNodes(nodes[parent[p]], nodes[p])
		e.SetLength(v[p].BranchLength)
	}
	t.SetRoot(nodes[1])

	return t, nil
}
