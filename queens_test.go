// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

import (
	"math/big"
	"testing"
)

// nqueens builds the constraint diagram for the N-Queen chess problem. The
// board squares map to the variables i*N+j like:
//
//	0 4  8 12
//	1 5  9 13
//	2 6 10 14
//	3 7 11 15
//
// One solution for N=4 is then that 2,4,11,13 should be true, meaning a
// queen should be placed there:
//
//	. X . .
//	. . . X
//	X . . .
//	. . X .
func nqueens(N int) Diagram {
	queen := True()
	X := make([][]Diagram, N)
	for i := range X {
		X[i] = make([]Diagram, N)
		for j := range X[i] {
			X[i][j] = Var(i*N + j)
		}
	}
	// Place a queen in each row
	for i := 0; i < N; i++ {
		e := False()
		for j := 0; j < N; j++ {
			e = e.Or(X[i][j])
		}
		queen = queen.And(e)
	}

	// Build requirements for each variable(field)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			// No one in the same column
			for k := 0; k < N; k++ {
				if k != j {
					queen = queen.And(X[i][j].Imp(X[i][k].Not()))
				}
			}
			// No one in the same row
			for k := 0; k < N; k++ {
				if k != i {
					queen = queen.And(X[i][j].Imp(X[k][j].Not()))
				}
			}
			// No one in the same up-right diagonal
			for k := 0; k < N; k++ {
				ll := k - i + j
				if ll >= 0 && ll < N {
					if k != i {
						queen = queen.And(X[i][j].Imp(X[k][ll].Not()))
					}
				}
			}
			// No one in the same down-right diagonal
			for k := 0; k < N; k++ {
				ll := i + j - k
				if ll >= 0 && ll < N {
					if k != i {
						queen = queen.And(X[i][j].Imp(X[k][ll].Not()))
					}
				}
			}
		}
	}
	return queen
}

func TestNQueens(t *testing.T) {
	var nqueensTests = []struct {
		N        int
		expected int64
	}{
		{4, 2},
		{5, 10},
	}
	for _, tt := range nqueensTests {
		queen := nqueens(tt.N)
		checkCanonical(t, queen)
		actual := queen.Satcount()
		if actual.Cmp(big.NewInt(tt.expected)) != 0 {
			t.Errorf("Error in NQueens(%d), expected %d, actual %s", tt.N, tt.expected, actual)
		}
		// any reported placement must satisfy the constraints
		sat, ok := queen.AnySat()
		if !ok {
			t.Fatalf("NQueens(%d) must be satisfiable", tt.N)
		}
		m := make(map[int]bool, len(sat))
		for _, a := range sat {
			m[a.Var] = a.Val
		}
		if !evalWith(queen, m) {
			t.Errorf("AnySat placement %v does not satisfy NQueens(%d)", sat, tt.N)
		}
	}
}

func BenchmarkNQueens(b *testing.B) {
	for n := 0; n < b.N; n++ {
		nqueens(6)
	}
}
