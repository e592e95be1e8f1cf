package mlcs

import (
	"slices"

	"github.com/katalvlaran/treevec/dag"
)

// LCS returns one longest subsequence common to all seqs.
//
// The longest path is computed over the full precedence relation rather
// than only along immediate-predecessor edges: a covering pair a→b need not
// be the closest pair in any single sequence, and skipping it can shorten
// the result.
//
// Ties: vertices are relaxed in topological order, predecessors in
// ascending order, and the first terminal with the best score wins, so the
// result is deterministic.
func LCS(seqs [][]int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rel, err := NewRelation(seqs)
	if err != nil {
		return Result{}, err
	}
	if len(rel.common) == 0 {
		return Result{Length: 0, Path: []int{}}, nil
	}

	order, err := dag.TopologicalSort(rel.graph, dag.WithCancelContext(o.Ctx))
	if err != nil {
		return Result{}, err
	}

	best := make(map[int]int, len(order))
	prev := make(map[int]int, len(order))
	for _, v := range order {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, err
		}
		preds, _ := rel.graph.Predecessors(v)
		best[v] = 1
		for _, p := range preds {
			if best[p]+1 > best[v] {
				best[v] = best[p] + 1
				prev[v] = p
			}
		}
	}

	end, length := 0, 0
	for _, t := range rel.Terminals() {
		if best[t] > length {
			end, length = t, best[t]
		}
	}

	path := make([]int, 0, length)
	path = append(path, end)
	for v := end; ; {
		p, ok := prev[v]
		if !ok {
			break
		}
		path = append(path, p)
		v = p
	}
	slices.Reverse(path)

	return Result{Length: length, Path: path}, nil
}
