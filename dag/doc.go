// Package dag provides a small directed acyclic graph over integer vertices
// and a topological sort for it.
//
// It is the precedence structure behind mlcs: vertices are values common to
// every input sequence and an edge a→b records that a comes before b in all
// of them.
//
// What:
//
//   - Graph: directed, unweighted, no self-loops, no parallel edges.
//     Successors and predecessors are both indexed, so sinks and in-edges
//     are O(1) lookups. Iteration is always in ascending vertex order.
//   - TopologicalSort: iterative depth-first search with White/Gray/Black
//     coloring. A back-edge to a Gray vertex yields ErrCycleDetected.
//
// Complexity:
//
//   - AddEdge:          O(1)
//   - TopologicalSort:  Time O(V log V + E log E) (sorted iteration), Memory O(V)
//
// Errors:
//
//   - ErrVertexNotFound  vertex not in graph
//   - ErrLoopNotAllowed  edge from a vertex to itself
//   - ErrCycleDetected   cycle met during TopologicalSort
//   - context.Canceled   sort aborted via WithCancelContext
package dag
