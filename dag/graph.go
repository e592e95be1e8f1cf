package dag

import (
	"fmt"
	"slices"
)

// AddVertex inserts v. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(v)
}

func (g *Graph) addVertexLocked(v int) {
	if _, ok := g.succ[v]; ok {
		return
	}
	g.succ[v] = make(map[int]struct{})
	g.pred[v] = make(map[int]struct{})
}

// AddEdge inserts the edge from→to, creating missing endpoints.
// Re-adding an existing edge is a no-op.
// Returns ErrLoopNotAllowed when from == to.
func (g *Graph) AddEdge(from, to int) error {
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, ok := g.succ[from][to]; ok {
		return nil
	}
	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}
	g.size++

	return nil
}

// HasVertex reports whether v is in the graph.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[v]

	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[from][to]

	return ok
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Vertices returns all vertices in ascending order.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.succ)
}

// Successors returns the heads of edges leaving v, ascending.
func (g *Graph) Successors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.succ[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return sortedKeys(out), nil
}

// Predecessors returns the tails of edges entering v, ascending.
func (g *Graph) Predecessors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	in, ok := g.pred[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return sortedKeys(in), nil
}

// Sinks returns the vertices without outgoing edges, ascending.
func (g *Graph) Sinks() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []int
	for v, s := range g.succ {
		if len(s) == 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

// Sources returns the vertices without incoming edges, ascending.
func (g *Graph) Sources() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []int
	for v, p := range g.pred {
		if len(p) == 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

func sortedKeys[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
