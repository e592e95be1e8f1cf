package mlcs

import (
	"slices"

	"github.com/katalvlaran/treevec/dag"
)

// Relation is the precedence order over the values common to a set of
// sequences.
type Relation struct {
	seqs   [][]int
	pos    []map[int]int // pos[i][v] = first index of v in seqs[i]
	common []int         // ascending
	graph  *dag.Graph
}

// NewRelation builds the precedence DAG for seqs.
// Returns ErrNoSequences when seqs is empty.
func NewRelation(seqs [][]int) (*Relation, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	r := &Relation{
		seqs:  seqs,
		pos:   make([]map[int]int, len(seqs)),
		graph: dag.NewGraph(),
	}
	for i, s := range seqs {
		p := make(map[int]int, len(s))
		for k, v := range s {
			if _, seen := p[v]; !seen {
				p[v] = k
			}
		}
		r.pos[i] = p
	}

	for v := range r.pos[0] {
		if r.inAll(v) {
			r.common = append(r.common, v)
		}
	}
	slices.Sort(r.common)

	for _, v := range r.common {
		r.graph.AddVertex(v)
	}
	for _, a := range r.common {
		for _, b := range r.common {
			if a != b && r.Precedes(a, b) {
				// a != b, so AddEdge cannot fail
				_ = r.graph.AddEdge(a, b)
			}
		}
	}

	return r, nil
}

func (r *Relation) inAll(v int) bool {
	for _, p := range r.pos {
		if _, ok := p[v]; !ok {
			return false
		}
	}

	return true
}

// Common returns the values present in every sequence, ascending.
func (r *Relation) Common() []int {
	return slices.Clone(r.common)
}

// Graph exposes the precedence DAG.
func (r *Relation) Graph() *dag.Graph {
	return r.graph
}

// Precedes reports whether a occurs before b in every sequence that
// contains both. Two values sharing no sequence do not precede each other.
func (r *Relation) Precedes(a, b int) bool {
	shared := false
	for _, p := range r.pos {
		pa, okA := p[a]
		pb, okB := p[b]
		if !okA || !okB {
			continue
		}
		if pa >= pb {
			return false
		}
		shared = true
	}

	return shared
}

// ImmediatePredecessors returns, ascending, the predecessors of e that sit
// closest before e in at least one sequence.
func (r *Relation) ImmediatePredecessors(e int) ([]int, error) {
	preds, err := r.graph.Predecessors(e)
	if err != nil {
		return nil, err
	}

	set := make(map[int]struct{})
	for _, p := range r.pos {
		pe, ok := p[e]
		if !ok {
			continue
		}
		closest, at := 0, -1
		for _, q := range preds {
			if pq, ok := p[q]; ok && pq < pe && pq > at {
				closest, at = q, pq
			}
		}
		if at >= 0 {
			set[closest] = struct{}{}
		}
	}

	out := make([]int, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	slices.Sort(out)

	return out, nil
}

// Terminals returns the common values with no successor, ascending.
func (r *Relation) Terminals() []int {
	return r.graph.Sinks()
}
