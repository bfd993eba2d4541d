// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/samber/lo"
)

// Diagram is a handle to a Boolean function: a designated root node
// together with the tables that own it. Handles are cheap to copy; the
// tables behind them are shared only where an operation explicitly says so
// (Restrict builds into the tables of its operand, everything else starts
// fresh).
type Diagram struct {
	tab  *tables
	root int
}

// True returns the diagram for the constant true function.
func True() Diagram {
	return Diagram{tab: newtables(2), root: bddone}
}

// False returns the diagram for the constant false function.
func False() Diagram {
	return Diagram{tab: newtables(2), root: bddzero}
}

// From returns a constant diagram from a boolean value.
func From(v bool) Diagram {
	if v {
		return True()
	}
	return False()
}

// Var returns the diagram for the literal v, that is the function that is
// true exactly when variable v is true.
func Var(v int) Diagram {
	t := newtables(3)
	return Diagram{tab: t, root: t.makenode(v, bddzero, bddone)}
}

// NVar returns the diagram for the negation of the literal v.
func NVar(v int) Diagram {
	t := newtables(3)
	return Diagram{tab: t, root: t.makenode(v, bddone, bddzero)}
}

// ************************************************************

// IsTrue reports whether d is the constant true function.
func (d Diagram) IsTrue() bool {
	return d.root == bddone
}

// IsFalse reports whether d is the constant false function.
func (d Diagram) IsFalse() bool {
	return d.root == bddzero
}

// Eval computes the value of the function represented by d under the given
// assignment. The assignment must be total over the variables of d; it is
// queried once per variable along a single root-to-terminal path.
func (d Diagram) Eval(assign func(v int) bool) bool {
	n := d.root
	for n >= 2 {
		if assign(d.tab.level(n)) {
			n = d.tab.high(n)
		} else {
			n = d.tab.low(n)
		}
	}
	return n == bddone
}

// Equal reports whether d and o represent the same Boolean function. The
// two handles may own unrelated tables, so the test goes through a
// bi-implication rather than comparing node ids.
func (d Diagram) Equal(o Diagram) bool {
	if d.tab == o.tab && d.root == o.root {
		return true
	}
	return Apply(d, o, OPbiimp).IsTrue()
}

// Support returns the variables occurring in d, in increasing order.
func (d Diagram) Support() []int {
	vars := make(map[int]bool)
	for _, n := range d.tab.reachable(d.root) {
		if n >= 2 {
			vars[d.tab.level(n)] = true
		}
	}
	res := lo.Keys(vars)
	sort.Ints(res)
	return res
}

// Size returns the number of nodes reachable from the root of d, terminals
// included.
func (d Diagram) Size() int {
	return len(d.tab.reachable(d.root))
}

// Stats returns information about the tables owned by d.
func (d Diagram) Stats() string {
	t := d.tab
	res := fmt.Sprintf("Allocated:  %d\n", len(t.nodes))
	res += fmt.Sprintf("Reachable:  %d\n", d.Size())
	res += fmt.Sprintf("Size:       %s\n", humanSize(len(t.nodes), unsafe.Sizeof(node{})))
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", t.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", t.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d", t.uniqueMiss)
	return res
}
