package WaveGrowth1D

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gowave/Grid1D"
	"github.com/notargets/gowave/dispersion"
	"github.com/notargets/gowave/source_terms"
	"github.com/notargets/gowave/utils"
)

type IntegratorState uint8

const (
	Initialized IntegratorState = iota
	Stepping
	Sampled
	Done
)

var (
	stateNames = []string{
		"Initialized",
		"Stepping",
		"Sampled",
		"Done",
	}
)

func (s IntegratorState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("IntegratorState(%d)", s)
}

/*
	Integrator marches the spectrum Fk through time. Each sub-step treats wind input and dissipation
	with an exponential integrating factor and adds the downshift and advection explicitly

		Fk <- Fk·exp(dt·(Sin - Sds)) + dt·(Snl - cg·dFk/dx)

	The sub-step is bounded so that dt·max|Sin - Sds| <= ExpGrowthFactor and is clipped at the next
	output boundary. No clamp is applied afterwards, the additive terms may leave Fk negative.
*/
type Integrator struct {
	Co               source_terms.Coefficients
	F, K, Cp, Cg, Dk utils.Matrix // Static fields, [space, frequency]
	X                []float64
	WindSpeed        utils.Vector
	Fk               utils.Matrix // Owned by the integrator, use Spectrum() for a copy
	Sin, Sds, Snl    utils.Matrix
	Time             float64 // Simulation time reached
	SubSteps         int
	Logger           logrus.FieldLogger
	OnSample         func(n int, t float64, r *Result)     // Called after each sample is recorded
	OnSubStep        func(dt, rateBound, remaining float64) // Called after each sub-step is applied
	rate             utils.Matrix                           // Sin - Sds
	advection        *Grid1D.BackwardDifference
	evaluator        *source_terms.Evaluator
	state            IntegratorState
}

// NewIntegrator copies Fk0 and derives dk from the frequency and group speed fields. The wind
// input depends only on the wind and phase speed fields, so it is evaluated once here.
func NewIntegrator(Fk0, f, k, cp, cg utils.Matrix, x []float64, windSpeed utils.Vector,
	co source_terms.Coefficients) (in *Integrator) {
	var (
		nr, nc = Fk0.Dims()
	)
	for _, m := range []utils.Matrix{f, k, cp, cg} {
		if r, c := m.Dims(); r != nr || c != nc {
			panic(fmt.Errorf("dimension mismatch: spectrum is [%d, %d], field is [%d, %d]", nr, nc, r, c))
		}
	}
	if len(x) != nr {
		panic(fmt.Errorf("dimension mismatch: spectrum has %d rows, %d coordinates", nr, len(x)))
	}
	in = &Integrator{
		Co:        co,
		F:         f,
		K:         k,
		Cp:        cp,
		Cg:        cg,
		Dk:        dispersion.Bandwidth(f, cg),
		X:         x,
		WindSpeed: windSpeed,
		Fk:        Fk0.Copy(),
		Sds:       utils.NewMatrix(nr, nc),
		Snl:       utils.NewMatrix(nr, nc),
		rate:      utils.NewMatrix(nr, nc),
		advection: Grid1D.NewBackwardDifference(x),
		evaluator: source_terms.NewEvaluator(co, nr),
		state:     Initialized,
		Logger:    logrus.StandardLogger(),
	}
	in.Sin = in.evaluator.WindInput(utils.NewMatrix(nr, nc), windSpeed, f, k, cp)
	in.Dk.SetReadOnly("dk")
	in.Sin.SetReadOnly("Sin")
	in.Logger.WithFields(logrus.Fields{
		"grid_points":     nr,
		"frequencies":     nc,
		"parallel_degree": in.evaluator.PartitionMap.ParallelDegree,
		"max_sin":         in.Sin.Max(),
	}).Debug("integrator initialized")
	return
}

func (in *Integrator) State() IntegratorState { return in.state }

// Spectrum returns a copy of the current spectrum.
func (in *Integrator) Spectrum() utils.Matrix { return in.Fk.Copy() }

// Run integrates for floor(duration/outputInterval) output intervals. Sample n is stamped
// n·outputInterval and holds the diagnostics at the end of that interval.
func (in *Integrator) Run(duration, outputInterval float64) (r *Result, err error) {
	if in.state != Initialized {
		err = ErrDone
		return
	}
	if !(duration > 0) || !(outputInterval > 0) || math.IsInf(duration, 0) {
		err = ErrInvalidInterval
		return
	}
	nSamples := int(math.Floor(duration/outputInterval + 1.e-9))
	if nSamples < 1 {
		err = ErrInvalidInterval
		return
	}
	nx, _ := in.Fk.Dims()
	r = NewResult(nSamples, nx)
	for n := 0; n < nSamples; n++ {
		in.state = Stepping
		t0 := float64(n) * outputInterval
		if err = in.advanceInterval(t0, outputInterval); err != nil {
			err = &StepError{Sample: n, Time: in.Time, Err: err}
			r = nil
			return
		}
		in.record(r, n, t0)
		in.state = Sampled
		if in.OnSample != nil {
			in.OnSample(n, t0, r)
		}
	}
	r.Fk = in.Spectrum()
	r.SubSteps = in.SubSteps
	in.state = Done
	return
}

// advanceInterval takes sub-steps from t0 until interval has elapsed. The clipped final sub-step
// lands exactly on the boundary.
func (in *Integrator) advanceInterval(t0, interval float64) (err error) {
	var (
		dt, elapsed float64
	)
	in.Time = t0
	for elapsed < interval {
		remaining := interval - elapsed
		if dt, err = in.SubStep(remaining); err != nil {
			return
		}
		if dt == remaining {
			elapsed = interval
		} else {
			if elapsed+dt == elapsed {
				return ErrUnstable
			}
			elapsed += dt
		}
		in.Time = t0 + elapsed
	}
	return
}

// SubStep advances the spectrum by one adaptive step no longer than remaining and returns the
// step taken.
func (in *Integrator) SubStep(remaining float64) (dt float64, err error) {
	if in.state == Done {
		err = ErrDone
		return
	}
	var (
		ev = in.evaluator
	)
	ev.Dissipation(in.Sds, in.Fk, in.F, in.K, in.Dk)
	ev.WaveInteraction(in.Snl, in.Fk, in.Dk)
	maxRate := in.rate.Apply3(in.Sin, in.Sds, func(_, sin, sds float64) float64 {
		return sin - sds
	}).MaxAbs()
	// A zero rate gives an infinite bound and the remaining time wins
	rateBound := in.Co.ExpGrowthFactor / maxRate
	dt = math.Min(rateBound, remaining)
	if math.IsNaN(maxRate) || !(dt > 0) {
		err = ErrUnstable
		dt = 0
		return
	}
	// Advection reads the spectrum from before the update
	tendency := in.advection.Advect(in.Fk, in.Cg).Scale(-1).Add(in.Snl)
	in.Fk.Apply3(in.rate, tendency, func(F, rate, s float64) float64 {
		return F*math.Exp(dt*rate) + dt*s
	})
	in.SubSteps++
	if in.OnSubStep != nil {
		in.OnSubStep(dt, rateBound, remaining)
	}
	return
}
