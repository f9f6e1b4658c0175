package WaveGrowth1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gowave/Grid1D"
	"github.com/notargets/gowave/diagnostics"
	"github.com/notargets/gowave/source_terms"
	"github.com/notargets/gowave/types"
	"github.com/notargets/gowave/utils"
)

func newTestModel(t *testing.T, nf, nx int, wind float64, co source_terms.Coefficients) (*Grid1D.Grid1D, *Integrator) {
	g, err := Grid1D.NewGrid1D(0.1, 20, nf, 0, 10, nx, []float64{1000})
	require.NoError(t, err)
	in, err := NewWaveModel(g, DefaultInitConfig(), utils.NewVectorConstant(nx, wind), co)
	require.NoError(t, err)
	return g, in
}

func TestStepSizeBound(t *testing.T) {
	var (
		co    = source_terms.DefaultCoefficients()
		_, in = newTestModel(t, 30, 6, 15, co)
	)
	// Check each sub-step against a bound computed independently from the pre-step spectrum
	{
		remaining := 0.02
		for n := 0; n < 100 && remaining > 0; n++ {
			Sds := source_terms.Dissipation(in.Fk, in.F, in.K, in.Dk, co)
			maxRate := in.Sin.Copy().Subtract(Sds).MaxAbs()
			require.False(t, math.IsNaN(maxRate))
			dt, err := in.SubStep(remaining)
			require.NoError(t, err)
			assert.Greater(t, dt, 0.)
			assert.LessOrEqual(t, dt, co.ExpGrowthFactor/maxRate*(1+1.e-12))
			assert.LessOrEqual(t, dt, remaining)
			remaining -= dt
		}
	}
	// The hook sees every sub-step of a run
	{
		_, in = newTestModel(t, 30, 6, 15, co)
		var count int
		in.OnSubStep = func(dt, rateBound, remaining float64) {
			count++
			assert.LessOrEqual(t, dt, rateBound)
			assert.LessOrEqual(t, dt, remaining)
		}
		r, err := in.Run(0.03, 0.01)
		require.NoError(t, err)
		assert.Equal(t, r.SubSteps, count)
		assert.Greater(t, count, 3)
	}
}

func TestZeroForcing(t *testing.T) {
	var (
		co = source_terms.DefaultCoefficients()
	)
	co.ShelteringCoefficient = 0
	co.DissipationCoefficient = 0
	co.SnlCoefficient = 0
	g, in := newTestModel(t, 12, 5, 20, co)
	// Seed with a non trivial spectrum, the balance at zero sheltering is empty
	Fk0 := utils.NewMatrix(5, 12)
	for i := 0; i < 5; i++ {
		for j := 0; j < 12; j++ {
			Fk0.Set(i, j, 1.e-4*float64(1+i)/float64(1+j))
		}
	}
	in = NewIntegrator(Fk0, in.F, in.K, in.Cp, in.Cg, g.XCoords.Data(), in.WindSpeed, co)
	// Without growth or decay every interval is a single sub-step of pure advection
	r, err := in.Run(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, r.SubSteps)
	expected := Fk0.Copy()
	for n := 0; n < 3; n++ {
		expected.Subtract(Grid1D.Advect(expected, in.Cg, g.XCoords.Data()))
	}
	assert.InDeltaSlice(t, expected.Data(), r.Fk.Data(), 1.e-15)
	// The integrator owns its copy of the initial spectrum
	assert.Equal(t, 1.e-4, Fk0.At(0, 0))
	assert.Equal(t, 0., r.Tau.MaxAbs())
}

func TestRun(t *testing.T) {
	var (
		co = source_terms.DefaultCoefficients()
	)
	// Short scenario on the reference grid
	{
		g, in := newTestModel(t, 50, 11, 30, co)
		assert.Equal(t, Initialized, in.State())
		swh0 := diagnostics.SignificantWaveHeight(in.Spectrum(), in.Dk)
		var samples []int
		in.OnSample = func(n int, tt float64, r *Result) {
			samples = append(samples, n)
			assert.Equal(t, Sampled, in.State())
			assert.InDelta(t, float64(n)*0.01, tt, 1.e-15)
		}
		r, err := in.Run(0.05, 0.01)
		require.NoError(t, err)
		assert.Equal(t, Done, in.State())
		assert.Equal(t, []int{0, 1, 2, 3, 4}, samples)
		require.Equal(t, 5, r.NumSamples())
		for n := 1; n < 5; n++ {
			assert.Greater(t, r.Time[n], r.Time[n-1])
		}
		_, fields := r.Variables()
		for _, fld := range fields {
			nr, nc := fld.Dims()
			assert.Equal(t, 5, nr)
			assert.Equal(t, g.NX, nc)
			assert.False(t, utils.IsNan(fld))
		}
		// Strong wind grows the sea downstream of the inflow boundary
		assert.Greater(t, r.SWH.At(4, g.NX-1), swh0.AtVec(g.NX-1))
		assert.Greater(t, r.Tau.At(4, g.NX-1), 0.)
		assert.InDelta(t, 0.05, in.Time, 1.e-12)
		// Running again is an error
		_, err = in.Run(0.05, 0.01)
		assert.True(t, errors.Is(err, ErrDone))
		_, err = in.SubStep(1)
		assert.True(t, errors.Is(err, ErrDone))
	}
	// Sample count tolerates roundoff in duration / interval
	{
		_, in := newTestModel(t, 10, 3, 5, co)
		r, err := in.Run(0.3, 0.1)
		require.NoError(t, err)
		assert.Equal(t, 3, r.NumSamples())
		assert.InDeltaSlice(t, []float64{0, 0.1, 0.2}, r.Time, 1.e-15)
	}
	// Invalid intervals
	{
		_, in := newTestModel(t, 10, 3, 5, co)
		var err error
		_, err = in.Run(0, 1)
		assert.Equal(t, ErrInvalidInterval, err)
		_, err = in.Run(1, -1)
		assert.Equal(t, ErrInvalidInterval, err)
		_, err = in.Run(0.5, 1)
		assert.Equal(t, ErrInvalidInterval, err)
		assert.Equal(t, Initialized, in.State())
	}
	// A negative spectrum cannot be dissipated and stops the run
	{
		g, in := newTestModel(t, 10, 3, 5, co)
		Fk0 := in.Spectrum().Scale(-1).AddScalar(-1.e-3)
		in = NewIntegrator(Fk0, in.F, in.K, in.Cp, in.Cg, g.XCoords.Data(), in.WindSpeed, co)
		_, err := in.Run(1, 0.5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnstable))
		var stepErr *StepError
		require.True(t, errors.As(err, &stepErr))
		assert.Equal(t, 0, stepErr.Sample)
		assert.Contains(t, err.Error(), "sample 0")
	}
}

func TestParallelRun(t *testing.T) {
	var (
		co = source_terms.DefaultCoefficients()
	)
	_, seq := newTestModel(t, 25, 9, 20, co)
	rSeq, err := seq.Run(0.02, 0.01)
	require.NoError(t, err)
	co.ParallelDegree = 4
	_, par := newTestModel(t, 25, 9, 20, co)
	rPar, err := par.Run(0.02, 0.01)
	require.NoError(t, err)
	assert.Equal(t, rSeq.SubSteps, rPar.SubSteps)
	assert.Equal(t, rSeq.Fk.Data(), rPar.Fk.Data())
	assert.Equal(t, rSeq.SWH.Data(), rPar.SWH.Data())
}

func TestNewWaveModel(t *testing.T) {
	var (
		co = source_terms.DefaultCoefficients()
	)
	g, err := Grid1D.NewGrid1D(0.1, 20, 20, 0, 10, 4, []float64{50})
	require.NoError(t, err)
	{
		in, err := NewWaveModel(g, InitConfig{Type: types.INIT_CALM}, utils.NewVectorConstant(4, 10), co)
		require.NoError(t, err)
		assert.Equal(t, 0., in.Fk.MaxAbs())
		assert.True(t, in.Sin.IsReadOnly())
		assert.Panics(t, func() { in.Dk.Scale(2) })
	}
	{
		init := DefaultInitConfig()
		in, err := NewWaveModel(g, init, utils.NewVectorConstant(4, 10), co)
		require.NoError(t, err)
		Sin := source_terms.WindInput(utils.NewVectorConstant(4, init.WindSpeed), in.F, in.K, in.Cp, co)
		assert.Equal(t, source_terms.WindWaveBalance(Sin, in.F, in.K, 0, co).Data(), in.Fk.Data())
		assert.Greater(t, in.Fk.Max(), 0.)
	}
	{
		_, err := NewWaveModel(g, DefaultInitConfig(), utils.NewVectorConstant(3, 10), co)
		assert.Error(t, err)
		bad := co
		bad.ExpGrowthFactor = -1
		_, err = NewWaveModel(g, DefaultInitConfig(), utils.NewVectorConstant(4, 10), bad)
		assert.Error(t, err)
		_, err = NewWaveModel(g, InitConfig{Type: types.InitType(9)}, utils.NewVectorConstant(4, 10), co)
		assert.Error(t, err)
	}
}

func TestReferenceScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("several hundred thousand sub-steps")
	}
	var (
		co    = source_terms.DefaultCoefficients()
		g, in = newTestModel(t, 50, 11, 30, co)
	)
	r, err := in.Run(60, 1)
	require.NoError(t, err)
	require.Equal(t, 60, r.NumSamples())
	assert.Equal(t, 0., r.Time[0])
	assert.Equal(t, 59., r.Time[59])
	for n := 1; n < 60; n++ {
		assert.Greater(t, r.Time[n], r.Time[n-1])
	}
	_, fields := r.Variables()
	for _, fld := range fields {
		for _, val := range fld.Data() {
			require.False(t, math.IsNaN(val) || math.IsInf(val, 0))
		}
	}
	nr, nc := r.Fk.Dims()
	assert.Equal(t, g.NX, nr)
	assert.Equal(t, g.NF, nc)
}
