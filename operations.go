// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

import (
	"log"
	"math/big"
)

// applyctx carries the state of one Apply computation: the requested
// operator, the node tables of the two operands, the fresh tables receiving
// the result, and the memo table keyed by pairs of operand node ids. Each
// operand keeps its own tables, so the left id of a pair always refers to
// the left tables and the right id to the right ones.
type applyctx struct {
	op          Operator
	left, right *tables
	dst         *tables
	memo        map[[2]int]int
}

// Apply performs the basic binary operations between two diagrams, such as
// AND, OR etc. The result is built into fresh tables: it may need nodes
// that exist in neither operand, and the operands may not even share a
// table between themselves. Structural sharing among the nodes of the
// result is preserved; sharing with the operand tables is not.
func Apply(left, right Diagram, op Operator) Diagram {
	if op < OPand || op > OPinvimp {
		log.Panicf("robdd: unauthorized operation (%d) in call to Apply", op)
	}
	c := &applyctx{
		op:    op,
		left:  left.tab,
		right: right.tab,
		dst:   newtables(len(left.tab.nodes) + len(right.tab.nodes)),
		memo:  make(map[[2]int]int),
	}
	return Diagram{tab: c.dst, root: c.apply(left.root, right.root)}
}

func (c *applyctx) apply(l, r int) int {
	if res, ok := c.memo[[2]int{l, r}]; ok {
		return res
	}
	var res int
	switch {
	case l < 2 && r < 2:
		// both operands are constants; no recursion, no allocation
		res = opres[c.op][l][r]
	case l >= 2 && r >= 2 && c.left.level(l) == c.right.level(r):
		low := c.apply(c.left.low(l), c.right.low(r))
		high := c.apply(c.left.high(l), c.right.high(r))
		res = c.dst.makenode(c.left.level(l), low, high)
	case before(c.left, l, c.right, r):
		low := c.apply(c.left.low(l), r)
		high := c.apply(c.left.high(l), r)
		res = c.dst.makenode(c.left.level(l), low, high)
	default:
		low := c.apply(l, c.right.low(r))
		high := c.apply(l, c.right.high(r))
		res = c.dst.makenode(c.right.level(r), low, high)
	}
	c.memo[[2]int{l, r}] = res
	return res
}

// ************************************************************

// notctx carries the state of one Not computation: the tables of the
// operand, the fresh tables receiving the complement, and a memo table
// keyed by operand node ids.
type notctx struct {
	src  *tables
	dst  *tables
	memo map[int]int
}

// Not returns the negation of the expression represented by d. It rebuilds
// the diagram with all references to the zero-terminal exchanged with
// references to the one-terminal, which only needs a single traversal
// instead of a two-operand apply.
func (d Diagram) Not() Diagram {
	c := &notctx{
		src:  d.tab,
		dst:  newtables(len(d.tab.nodes)),
		memo: make(map[int]int),
	}
	return Diagram{tab: c.dst, root: c.not(d.root)}
}

func (c *notctx) not(n int) int {
	if n < 2 {
		return 1 - n
	}
	if res, ok := c.memo[n]; ok {
		return res
	}
	low := c.not(c.src.low(n))
	high := c.not(c.src.high(n))
	res := c.dst.makenode(c.src.level(n), low, high)
	c.memo[n] = res
	return res
}

// ************************************************************

// restrictctx carries the state of one Restrict computation. Unlike Apply
// and Not, the operation builds into the tables of its operand: most nodes
// survive a restriction untouched, and reusing the tables keeps their ids
// stable.
type restrictctx struct {
	tab  *tables
	v    int
	val  bool
	memo map[int]int
}

// Restrict fixes variable v of d to the constant val, eliminating it from
// the diagram. The result shares the tables of d; nodes that do not depend
// on v are reused with their identifiers unchanged.
func (d Diagram) Restrict(v int, val bool) Diagram {
	c := &restrictctx{tab: d.tab, v: v, val: val, memo: make(map[int]int)}
	return Diagram{tab: d.tab, root: c.restrict(d.root)}
}

func (c *restrictctx) restrict(n int) int {
	if n < 2 {
		return n
	}
	lvl := c.tab.level(n)
	// by the ordering invariant, nodes past v cannot depend on it
	if lvl > c.v {
		return n
	}
	if res, ok := c.memo[n]; ok {
		return res
	}
	var res int
	switch {
	case lvl < c.v:
		res = c.tab.makenode(lvl, c.restrict(c.tab.low(n)), c.restrict(c.tab.high(n)))
	case c.val:
		res = c.restrict(c.tab.high(n))
	default:
		res = c.restrict(c.tab.low(n))
	}
	c.memo[n] = res
	return res
}

// ************************************************************

// And returns the conjunction of two diagrams.
func (d Diagram) And(o Diagram) Diagram { return Apply(d, o, OPand) }

// Or returns the disjunction of two diagrams.
func (d Diagram) Or(o Diagram) Diagram { return Apply(d, o, OPor) }

// Xor returns the exclusive or of two diagrams.
func (d Diagram) Xor(o Diagram) Diagram { return Apply(d, o, OPxor) }

// Imp returns the logical implication d -> o.
func (d Diagram) Imp(o Diagram) Diagram { return Apply(d, o, OPimp) }

// Equiv returns the bi-implication d <-> o.
func (d Diagram) Equiv(o Diagram) Diagram { return Apply(d, o, OPbiimp) }

// Nand returns the negated conjunction of two diagrams.
func (d Diagram) Nand(o Diagram) Diagram { return Apply(d, o, OPnand) }

// Nor returns the negated disjunction of two diagrams.
func (d Diagram) Nor(o Diagram) Diagram { return Apply(d, o, OPnor) }

// Ite, short for if-then-else, computes the diagram for the expression
// [(d & g) | (!d & h)].
func (d Diagram) Ite(g, h Diagram) Diagram {
	return d.And(g).Or(d.Not().And(h))
}

// Exist returns the existential quantification of d over the given
// variables, computed one variable at a time as the disjunction of the two
// restrictions.
func (d Diagram) Exist(vars ...int) Diagram {
	res := d
	for _, v := range vars {
		res = res.Restrict(v, false).Or(res.Restrict(v, true))
	}
	return res
}

// ************************************************************

// Assign records the value picked for one variable on a satisfying path.
type Assign struct {
	Var int
	Val bool
}

// AnySat returns a partial assignment under which d evaluates to true, or
// false if d is unsatisfiable. The assignment mentions only the variables
// along one root-to-One path; every extension of it satisfies d. A constant
// true diagram yields an empty, vacuously satisfying assignment.
//
// The search never backtracks: by the reduction rule a node with two Zero
// branches cannot exist, so following any branch that is not the Zero
// terminal (preferring high) always reaches One.
func (d Diagram) AnySat() ([]Assign, bool) {
	if d.root == bddzero {
		return nil, false
	}
	sat := []Assign{}
	for n := d.root; n != bddone; {
		if high := d.tab.high(n); high != bddzero {
			sat = append(sat, Assign{Var: d.tab.level(n), Val: true})
			n = high
		} else {
			sat = append(sat, Assign{Var: d.tab.level(n), Val: false})
			n = d.tab.low(n)
		}
	}
	return sat, true
}

// Satcount computes the number of satisfying assignments of d over the
// variables in its support. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows.
func (d Diagram) Satcount() *big.Int {
	support := d.Support()
	pos := make(map[int]int, len(support))
	for i, v := range support {
		pos[v] = i
	}
	// position of a node in the support order; terminals sit one past the
	// last variable so that edge weights come out as powers of two
	position := func(n int) int {
		if n < 2 {
			return len(support)
		}
		return pos[d.tab.level(n)]
	}
	res := big.NewInt(0)
	res.SetBit(res, position(d.root), 1)
	satc := make(map[int]*big.Int)
	return res.Mul(res, d.satcount(d.root, position, satc))
}

func (d Diagram) satcount(n int, position func(int) int, satc map[int]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each node
	if res, ok := satc[n]; ok {
		return res
	}
	low := d.tab.low(n)
	high := d.tab.high(n)

	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, position(low)-position(n)-1, 1)
	res.Add(res, two.Mul(two, d.satcount(low, position, satc)))
	two = big.NewInt(0)
	two.SetBit(two, position(high)-position(n)-1, 1)
	res.Add(res, two.Mul(two, d.satcount(high, position, satc)))
	satc[n] = res
	return res
}
