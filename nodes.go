// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

import "log"

// node is a vertex of a decision diagram. Terminals occupy the slots 0
// (False) and 1 (True) of every table and keep the same self-loop shape as
// internal nodes; their lvl field is never read.
type node struct {
	lvl  int // Order of the variable in the diagram
	low  int // Reference to the false branch
	high int // Reference to the true branch
}

// triple is the key of the unique table. Two internal nodes of the same
// table are the same node iff their triples are equal.
type triple struct {
	lvl  int
	low  int
	high int
}

const (
	bddzero = 0 // id of the False terminal
	bddone  = 1 // id of the True terminal
)

// ************************************************************

// level returns the variable of an internal node. Asking for the variable
// of a terminal is a bug in the calling algorithm, never a data condition,
// so we fail fast instead of returning a wrong value.
func (t *tables) level(n int) int {
	if n < 2 {
		log.Panicf("robdd: invariant violation: access to variable of terminal node %d", n)
	}
	return t.nodes[n].lvl
}

// low returns the false branch of an internal node.
func (t *tables) low(n int) int {
	if n < 2 {
		log.Panicf("robdd: invariant violation: access to low branch of terminal node %d", n)
	}
	return t.nodes[n].low
}

// high returns the true branch of an internal node.
func (t *tables) high(n int) int {
	if n < 2 {
		log.Panicf("robdd: invariant violation: access to high branch of terminal node %d", n)
	}
	return t.nodes[n].high
}

// ************************************************************

// before reports whether node l of table x precedes node r of table y in
// the traversal order used during apply. Internal nodes are ordered by
// variable; terminals come after every internal node, with One before
// Zero. This order is distinct from node identity: it only decides which
// operand governs the recursion, and a terminal side never contributes a
// variable.
func before(x *tables, l int, y *tables, r int) bool {
	if l < 2 {
		// One (1) precedes Zero (0)
		return r < l
	}
	if r < 2 {
		return true
	}
	return x.level(l) < y.level(r)
}
