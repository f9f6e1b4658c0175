package WaveGrowth1D

import (
	"github.com/notargets/gowave/diagnostics"
	"github.com/notargets/gowave/utils"
)

// Result holds the sampled diagnostics, each indexed [sample, space], and the final spectrum.
type Result struct {
	Time                    []float64
	SWH, MWP, DWP, MSS, Tau utils.Matrix
	Fk                      utils.Matrix // [space, frequency]
	SubSteps                int          // Adaptive sub-steps taken over the whole run
}

func NewResult(nSamples, nx int) (r *Result) {
	r = &Result{
		Time: make([]float64, nSamples),
		SWH:  utils.NewMatrix(nSamples, nx),
		MWP:  utils.NewMatrix(nSamples, nx),
		DWP:  utils.NewMatrix(nSamples, nx),
		MSS:  utils.NewMatrix(nSamples, nx),
		Tau:  utils.NewMatrix(nSamples, nx),
	}
	return
}

func (r *Result) NumSamples() int { return len(r.Time) }

// Variables maps the output names to the sampled diagnostic fields.
func (r *Result) Variables() (names []string, fields []utils.Matrix) {
	names = []string{"swh", "mwp", "dwp", "mss", "tau"}
	fields = []utils.Matrix{r.SWH, r.MWP, r.DWP, r.MSS, r.Tau}
	return
}

func (in *Integrator) record(r *Result, n int, t float64) {
	r.Time[n] = t
	r.SWH.SetRow(n, diagnostics.SignificantWaveHeight(in.Fk, in.Dk).Data())
	r.MWP.SetRow(n, diagnostics.MeanWavePeriod(in.Fk, in.F).Data())
	r.DWP.SetRow(n, diagnostics.DominantWavePeriod(in.Fk, in.F).Data())
	r.MSS.SetRow(n, diagnostics.MeanSquaredSlope(in.Fk, in.K, in.Dk).Data())
	r.Tau.SetRow(n, diagnostics.FormDrag(in.Sin, in.Fk, in.Cp, in.Dk, in.Co.PhysicalConstants).Data())
}
