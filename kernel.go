// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

import "sort"

// tables is the mutable state threaded through every construction: the list
// of allocated nodes, the unique table that guarantees hash-consing, and a
// few counters about its use. We rely on the runtime hashmap for unicity,
// keyed by the (variable, low, high) triple of each node.
//
// A tables value is owned by the operation that is currently writing into
// it, and captured by the resulting Diagram when the operation returns. It
// is never shared between concurrent operations.
type tables struct {
	nodes        []node         // List of all the nodes. Constants are always kept at index 0 and 1
	unique       map[triple]int // Unicity table, associates each triplet to a single node
	uniqueAccess int            // accesses to the unique node table
	uniqueHit    int            // entries actually found in the unique node table
	uniqueMiss   int            // entries not found in the unique node table
}

// newtables allocates the tables for one construction. The two terminals
// are created in their reserved slots, so the id of the first internal node
// is always 2. The hint is only a capacity reservation.
func newtables(hint int) *tables {
	if hint < 8 {
		hint = 8
	}
	t := &tables{
		nodes:  make([]node, 2, hint),
		unique: make(map[triple]int, hint),
	}
	t.nodes[bddzero] = node{low: bddzero, high: bddzero}
	t.nodes[bddone] = node{low: bddone, high: bddone}
	return t
}

// makenode is the canonicalizing constructor. It returns the node for the
// triple (lvl, low, high), reusing the branch directly when both are equal
// and an existing node whenever the triple is already in the unique table.
// A fresh node takes the next free id, which is just the length of the node
// list since ids are dense and never reclaimed.
func (t *tables) makenode(lvl, low, high int) int {
	t.uniqueAccess++
	// check whether the two branches are equal
	if low == high {
		return low
	}
	k := triple{lvl: lvl, low: low, high: high}
	if n, ok := t.unique[k]; ok {
		t.uniqueHit++
		return n
	}
	t.uniqueMiss++
	n := len(t.nodes)
	t.nodes = append(t.nodes, node{lvl: lvl, low: low, high: high})
	t.unique[k] = n
	return n
}

// reachable returns the ids of the nodes accessible from n, in increasing
// order. Terminals appear only if the traversal reaches them.
func (t *tables) reachable(n int) []int {
	seen := make(map[int]bool)
	var visit func(int)
	visit = func(n int) {
		if seen[n] {
			return
		}
		seen[n] = true
		if n >= 2 {
			visit(t.nodes[n].low)
			visit(t.nodes[n].high)
		}
	}
	visit(n)
	res := make([]int, 0, len(seen))
	for k := range seen {
		res = append(res, k)
	}
	sort.Ints(res)
	return res
}
