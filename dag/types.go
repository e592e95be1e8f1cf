package dag

import (
	"errors"
	"sync"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the DFS stack.
	Black        // Black: the vertex and all its descendants are done.
)

var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("dag: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("dag: self-loop not allowed")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dag: cycle detected")
)

// Graph is a directed graph over int vertices.
//
// succ[a] holds the heads of edges leaving a, pred[b] the tails of edges
// entering b. Every vertex has an entry in both maps, possibly empty.
// mu guards both maps so a Graph may be read from several goroutines.
type Graph struct {
	mu   sync.RWMutex
	succ map[int]map[int]struct{}
	pred map[int]map[int]struct{}
	size int // number of edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		succ: make(map[int]map[int]struct{}),
		pred: make(map[int]map[int]struct{}),
	}
}
