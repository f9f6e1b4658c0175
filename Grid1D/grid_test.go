package Grid1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gowave/utils"
)

func TestNewGrid1D(t *testing.T) {
	{
		g, err := NewGrid1D(0.1, 20, 50, 0, 10, 11, []float64{1000})
		require.NoError(t, err)
		assert.Equal(t, 11, g.NX)
		assert.Equal(t, 50, g.NF)
		nr, nc := g.F.Dims()
		assert.Equal(t, 11, nr)
		assert.Equal(t, 50, nc)
		assert.InDelta(t, 0.1, g.Freq.AtVec(0), 1.e-12)
		assert.InDelta(t, 20, g.Freq.AtVec(49), 1.e-10)
		// Constant ratio between consecutive frequencies
		ratio := g.Freq.AtVec(1) / g.Freq.AtVec(0)
		for j := 2; j < 50; j++ {
			assert.InEpsilon(t, ratio, g.Freq.AtVec(j)/g.Freq.AtVec(j-1), 1.e-10)
		}
		for i := 0; i < 11; i++ {
			assert.InDelta(t, float64(i), g.XCoords.AtVec(i), 1.e-12)
			assert.Equal(t, g.Freq.Data(), g.F.Row(i).Data())
			assert.Equal(t, g.XCoords.AtVec(i), g.X.At(i, 7))
			assert.Equal(t, 1000., g.Depth.At(i, 3))
		}
		assert.Panics(t, func() { g.F.Scale(2) })
	}
	{ // Varying depth
		depth := []float64{5, 4, 3}
		g, err := NewGrid1D(0.1, 1, 4, 0, 2, 3, depth)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 3, 3, 3}, g.Depth.Row(2).Data())
	}
	{ // Bad input
		var err error
		_, err = NewGrid1D(0.1, 1, 1, 0, 2, 3, []float64{1})
		assert.Error(t, err)
		_, err = NewGrid1D(0, 1, 4, 0, 2, 3, []float64{1})
		assert.Error(t, err)
		_, err = NewGrid1D(0.1, 1, 4, 2, 2, 3, []float64{1})
		assert.Error(t, err)
		_, err = NewGrid1D(0.1, 1, 4, 0, 2, 3, []float64{1, 2})
		assert.Error(t, err)
		_, err = NewGrid1D(0.1, 1, 4, 0, 2, 3, []float64{1, -2, 1})
		assert.Error(t, err)
		_, err = NewGrid1DFromCoords(utils.NewVector(2, []float64{1, 2}),
			utils.NewVector(3, []float64{0, 2, 1}), []float64{1})
		assert.Error(t, err)
	}
}

func TestAdvect(t *testing.T) {
	var (
		x  = []float64{0, 1, 3, 7}
		bd = NewBackwardDifference(x)
		q  = utils.NewMatrix(4, 2, []float64{
			2, 1,
			4, 1,
			4, 1,
			10, 4,
		})
	)
	// One sided differences with an empty upstream boundary
	{
		dq := bd.Apply(q)
		assert.Equal(t, []float64{
			2, 1,
			2, 0,
			0, 0,
			1.5, 0.75,
		}, dq.Data())
		c := utils.NewMatrixConstant(4, 2, 0.5)
		assert.Equal(t, dq.Scale(0.5).Data(), Advect(q, c, x).Data())
		assert.Equal(t, []float64{2, 1, 4, 1, 4, 1, 10, 4}, q.Data())
	}
	// Zero advective velocity gives an all zero transport term
	{
		a := bd.Advect(q, utils.NewMatrix(4, 2))
		for _, val := range a.Data() {
			assert.Equal(t, 0., math.Abs(val))
		}
	}
	// A uniform field only changes at the inflow point
	{
		u := utils.NewMatrixConstant(4, 3, 7)
		dq := bd.Apply(u)
		assert.Equal(t, []float64{7, 7, 7}, dq.Row(0).Data())
		for i := 1; i < 4; i++ {
			assert.Equal(t, []float64{0, 0, 0}, dq.Row(i).Data())
		}
	}
	assert.Panics(t, func() { bd.Apply(utils.NewMatrix(3, 2)) })
}
