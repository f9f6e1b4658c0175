package Grid1D

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gowave/utils"
)

/*
	BackwardDifference is the first order one sided spatial derivative as an NX x NX sparse matrix

		row 0:	 q[0] / (x[1] - x[0])
		row i:	(q[i] - q[i-1]) / (x[i] - x[i-1])

	Row 0 treats the upstream boundary as a zero energy inflow.
*/
type BackwardDifference struct {
	D  *sparse.CSR
	NX int
}

func NewBackwardDifference(x []float64) (bd *BackwardDifference) {
	var (
		nx = len(x)
	)
	if nx < 2 {
		panic(fmt.Errorf("backward difference needs at least 2 points, have %d", nx))
	}
	dok := sparse.NewDOK(nx, nx)
	dok.Set(0, 0, 1./(x[1]-x[0]))
	for i := 1; i < nx; i++ {
		rdx := 1. / (x[i] - x[i-1])
		dok.Set(i, i, rdx)
		dok.Set(i, i-1, -rdx)
	}
	bd = &BackwardDifference{
		D:  dok.ToCSR(),
		NX: nx,
	}
	return
}

// Apply returns D·q for a field q indexed [space, frequency].
func (bd *BackwardDifference) Apply(q utils.Matrix) (R utils.Matrix) {
	var (
		nr, nc = q.Dims()
	)
	if nr != bd.NX {
		panic(fmt.Errorf("dimension mismatch: operator has %d points, field has %d rows", bd.NX, nr))
	}
	R = utils.NewMatrix(nr, nc)
	bd.D.DoNonZero(func(i, j int, v float64) {
		floats.AddScaled(R.RowView(i), v, q.RowView(j))
	})
	return
}

// Advect returns the transport term c ⊙ (D·q), c is the advective velocity per cell.
func (bd *BackwardDifference) Advect(q, c utils.Matrix) (R utils.Matrix) {
	R = bd.Apply(q).ElMul(c)
	return
}

// Advect advects quantity q with advective velocity c over coordinates x. Callers stepping in time
// should build the operator once with NewBackwardDifference.
func Advect(q, c utils.Matrix, x []float64) utils.Matrix {
	return NewBackwardDifference(x).Advect(q, c)
}
