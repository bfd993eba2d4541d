// Copyright (c) 2026 The robdd-go authors
//
// MIT License

/*
Package robdd implements Reduced Ordered Binary Decision Diagrams (ROBDD), a
canonical, maximally-shared representation for Boolean functions over a
totally ordered set of integer variables.

Basics

A Diagram is a handle to a Boolean function: a root node together with the
node tables that own it. Variables are plain integers, ordered by value, with
smaller variables closer to the root. Any integer can be used as a variable,
as long as the same value denotes the same variable in every diagram that is
combined with another.

Diagrams are built from the constants True and False and from single
literals (Var, NVar), and combined with the usual connectives: And, Or, Xor,
Imp, Equiv, Nand, Nor, all of which go through the generic Apply operation.
Not computes the complement with a dedicated single-pass traversal, and
Restrict fixes one variable to a constant.

Every construction goes through a unique table, so within one table at most
one node exists for a given (variable, low, high) triple, no node ever has
identical branches, and variables strictly increase along every path. This
canonical form is what makes equality checks and satisfiability queries
cheap: a diagram is unsatisfiable exactly when its root is the False
terminal, and AnySat reads a satisfying assignment off a single root-to-One
path.

Memory management

Apply and Not always allocate the result into a fresh set of tables, owned
by the diagram they return; Restrict grows the tables of its operand, so
that untouched nodes keep their identifiers. Nodes are never reclaimed:
tables only grow for the lifetime of the handles that reference them. There
is no reference counting and no garbage collection of unreachable nodes;
repeated operations simply leave their intermediate tables to the Go runtime
once no handle refers to them anymore.

All operations are synchronous and single-threaded. A Diagram must not be
used from multiple goroutines without external synchronization.
*/
package robdd
