// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakenodeCanonical(t *testing.T) {
	tab := newtables(8)
	x := tab.makenode(2, 0, 1)
	y := tab.makenode(2, 0, 1)
	assert.Equal(t, x, y, "asking twice for the same triple must return the same node")
	assert.Equal(t, 2, x, "first internal node takes id 2")
	assert.Len(t, tab.nodes, 3, "the second request must not allocate")

	z := tab.makenode(1, x, y)
	assert.Equal(t, x, z, "equal branches must collapse to the shared child")
	assert.Len(t, tab.nodes, 3, "reduction must not allocate")

	w := tab.makenode(1, 0, x)
	assert.Equal(t, 3, w)
	assert.Len(t, tab.nodes, 4)
}

func TestTerminalAccess(t *testing.T) {
	d := True()
	assert.Panics(t, func() { d.tab.level(bddone) })
	assert.Panics(t, func() { d.tab.low(bddzero) })
	assert.Panics(t, func() { d.tab.high(bddone) })
}

func TestBefore(t *testing.T) {
	tab := newtables(8)
	a := tab.makenode(2, 0, 1)
	b := tab.makenode(5, 0, 1)
	assert.True(t, before(tab, a, tab, b), "smaller variables come first")
	assert.False(t, before(tab, b, tab, a))
	assert.True(t, before(tab, a, tab, bddone), "internal nodes precede terminals")
	assert.True(t, before(tab, a, tab, bddzero))
	assert.True(t, before(tab, bddone, tab, bddzero), "One precedes Zero")
	assert.False(t, before(tab, bddzero, tab, bddone))
}

// checkCanonical asserts the three canonical-form invariants over all the
// nodes reachable from the root of d: no node with equal branches, strictly
// increasing variables along every path, and at most one node per triple.
func checkCanonical(t *testing.T, d Diagram) {
	t.Helper()
	triples := make(map[triple]int)
	for _, n := range d.tab.reachable(d.root) {
		if n < 2 {
			continue
		}
		low, high := d.tab.low(n), d.tab.high(n)
		require.NotEqual(t, low, high, "node %d has identical branches", n)
		if low >= 2 {
			require.Greater(t, d.tab.level(low), d.tab.level(n), "low branch of node %d breaks the variable order", n)
		}
		if high >= 2 {
			require.Greater(t, d.tab.level(high), d.tab.level(n), "high branch of node %d breaks the variable order", n)
		}
		k := triple{lvl: d.tab.level(n), low: low, high: high}
		if prev, ok := triples[k]; ok {
			t.Fatalf("nodes %d and %d share the triple %v", prev, n, k)
		}
		triples[k] = n
	}
}

func TestCanonicalForm(t *testing.T) {
	a, b, c, e := Var(0), Var(1), Var(2), Var(3)
	diagrams := []Diagram{
		True(),
		False(),
		a,
		NVar(1),
		a.And(b).Or(c.And(e)),
		a.Or(b).Xor(c.Or(e)),
		a.Imp(b).Equiv(b.Imp(a)),
		a.And(b).Or(a.Not().And(b.Not())),
		a.Nand(b).Nor(c),
		a.And(b).Or(c).Restrict(1, true),
		a.And(b).Or(c).Not(),
	}
	for _, d := range diagrams {
		checkCanonical(t, d)
	}
}
