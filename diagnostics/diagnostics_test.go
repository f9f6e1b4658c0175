package diagnostics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gowave/types"
	"github.com/notargets/gowave/utils"
)

func TestDiagnostics(t *testing.T) {
	var (
		pc = types.DefaultPhysicalConstants()
		Fk = utils.NewMatrix(2, 3, []float64{
			1, 2, 1,
			0, 4, 0,
		})
		f = utils.NewMatrix(2, 3, []float64{
			0.5, 1, 2,
			0.5, 1, 2,
		})
		k  = utils.NewMatrixConstant(2, 3, 2)
		dk = utils.NewMatrixConstant(2, 3, 0.25)
	)
	{
		swh := SignificantWaveHeight(Fk, dk)
		assert.InDelta(t, 4*math.Sqrt(1), swh.AtVec(0), 1.e-14)
		assert.InDelta(t, 4*math.Sqrt(1), swh.AtVec(1), 1.e-14)
	}
	{
		mwp := MeanWavePeriod(Fk, f)
		assert.InDelta(t, 4./4.5, mwp.AtVec(0), 1.e-14)
		assert.InDelta(t, 1., mwp.AtVec(1), 1.e-14)
		// The fourth power weighting is pulled towards the peak
		dwp := DominantWavePeriod(Fk, f)
		assert.InDelta(t, 18./18.5, dwp.AtVec(0), 1.e-14)
		assert.InDelta(t, 1., dwp.AtVec(1), 1.e-14)
		assert.Greater(t, dwp.AtVec(0), mwp.AtVec(0))
	}
	{
		mss := MeanSquaredSlope(Fk, k, dk)
		assert.InDelta(t, 4., mss.AtVec(0), 1.e-14)
		assert.InDelta(t, 4., mss.AtVec(1), 1.e-14)
	}
	{
		Sin := utils.NewMatrixConstant(2, 3, 1.e-3)
		cp := utils.NewMatrixConstant(2, 3, 0.5)
		tau := FormDrag(Sin, Fk, cp, dk, pc)
		assert.InEpsilon(t, pc.WaterDensity*pc.Gravity*1.e-3*4*0.25/0.5, tau.AtVec(0), 1.e-12)
		assert.InEpsilon(t, tau.AtVec(0), tau.AtVec(1), 1.e-12)
		// Negative input draws momentum from the waves
		assert.Less(t, FormDrag(Sin.Copy().Scale(-1), Fk, cp, dk, pc).AtVec(0), 0.)
	}
	// Inputs are unchanged
	assert.Equal(t, []float64{1, 2, 1, 0, 4, 0}, Fk.Data())
	// An empty spectrum has no defined period
	assert.True(t, math.IsNaN(MeanWavePeriod(utils.NewMatrix(2, 3), f).AtVec(0)))
}

func TestSummary(t *testing.T) {
	{
		s := Summary(utils.NewVector(4, []float64{1, 2, 3, 4}))
		assert.InDelta(t, 2.5, s.Mean, 1.e-14)
		assert.InDelta(t, math.Sqrt(5./3.), s.StdDev, 1.e-14)
		assert.Equal(t, 1., s.Min)
		assert.Equal(t, 4., s.Max)
		assert.Contains(t, s.String(), "mean  2.50000")
	}
	{
		s := Summary(utils.NewVector(1, []float64{7}))
		assert.Equal(t, Stats{Mean: 7, Min: 7, Max: 7}, s)
	}
}
