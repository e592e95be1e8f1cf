package dag

import "context"

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// frame is one level of the explicit DFS stack.
type frame struct {
	v    int
	succ []int
	next int
}

// TopologicalSort returns the vertices of g ordered so that for every edge
// u→v, u comes before v. Roots are tried in ascending order and successors
// are followed in ascending order, so the result is deterministic.
//
// The DFS keeps its own stack instead of recursing, so long precedence
// chains cannot exhaust the goroutine stack.
//
// Returns ErrCycleDetected if g is not acyclic, or the context error if the
// sort is cancelled.
func TopologicalSort(g *Graph, options ...TopoOption) ([]int, error) {
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	verts := sortedKeys(g.succ)
	state := make(map[int]int, len(verts))
	order := make([]int, 0, len(verts))

	for _, root := range verts {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack := []frame{{v: root, succ: sortedKeys(g.succ[root])}}
		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			top := &stack[len(stack)-1]
			if top.next < len(top.succ) {
				w := top.succ[top.next]
				top.next++
				switch state[w] {
				case Gray:
					return nil, ErrCycleDetected
				case White:
					state[w] = Gray
					stack = append(stack, frame{v: w, succ: sortedKeys(g.succ[w])})
				}
				continue
			}
			state[top.v] = Black
			order = append(order, top.v)
			stack = stack[:len(stack)-1]
		}
	}

	// reverse post-order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
