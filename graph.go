// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

// Graph is an explicit node and edge view of a diagram, meant as a handoff
// format for rendering tools. It is a pure projection: building one reads
// the diagram and writes nothing back into its tables.
type Graph struct {
	// Nodes is the set of node keys present in the diagram. Internal nodes
	// are keyed by their variable; the terminals use the reserved keys 0
	// and 1.
	Nodes map[int]bool
	// Edges maps each arc between node keys to a flag telling whether it
	// is the high (variable true) branch of its parent.
	Edges map[Edge]bool
}

// Edge identifies an arc of the graph by the keys of its endpoints.
type Edge struct {
	Parent int
	Child  int
}

// MakeDAG flattens d into a Graph. Since internal nodes are keyed by their
// variable, the projection is faithful only when each variable labels at
// most one node of the diagram, and when the variables 0 and 1 are unused
// (those keys belong to the terminals).
func (d Diagram) MakeDAG() Graph {
	g := Graph{
		Nodes: make(map[int]bool),
		Edges: make(map[Edge]bool),
	}
	seen := make(map[int]bool)
	// walk records the subgraph of n and returns the key of n
	var walk func(n int) int
	walk = func(n int) int {
		if n < 2 {
			g.Nodes[n] = true
			return n
		}
		key := d.tab.level(n)
		if seen[n] {
			return key
		}
		seen[n] = true
		g.Nodes[key] = true
		g.Edges[Edge{Parent: key, Child: walk(d.tab.low(n))}] = false
		g.Edges[Edge{Parent: key, Child: walk(d.tab.high(n))}] = true
		return key
	}
	walk(d.root)
	return g
}
