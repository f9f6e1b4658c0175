package WaveGrowth1D

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gowave/Grid1D"
	"github.com/notargets/gowave/dispersion"
	"github.com/notargets/gowave/source_terms"
	"github.com/notargets/gowave/types"
	"github.com/notargets/gowave/utils"
)

// InitConfig selects the initial spectrum.
type InitConfig struct {
	Type      types.InitType
	WindSpeed float64 // Wind used for the balance spectrum, m/s
	MSS       float64 // Mean squared slope assumed by the balance
}

func DefaultInitConfig() InitConfig {
	return InitConfig{
		Type:      types.INIT_BALANCE,
		WindSpeed: 0.8,
	}
}

// NewWaveModel derives the wavenumber and speed fields on the grid, builds the initial spectrum
// and returns an integrator ready to Run.
func NewWaveModel(g *Grid1D.Grid1D, init InitConfig, windSpeed utils.Vector,
	co source_terms.Coefficients) (in *Integrator, err error) {
	if err = co.Validate(); err != nil {
		return
	}
	if windSpeed.Len() != g.NX {
		err = fmt.Errorf("wind speed has %d values, grid has %d points", windSpeed.Len(), g.NX)
		return
	}
	var (
		pc = co.PhysicalConstants
		k  = dispersion.Wavenumber(g.F, g.Depth, pc)
		cp = dispersion.PhaseSpeed(g.F, k)
		cg = dispersion.GroupSpeed(g.F, k, g.Depth, pc)
		Fk utils.Matrix
	)
	switch init.Type {
	case types.INIT_BALANCE:
		Sin := source_terms.WindInput(utils.NewVectorConstant(g.NX, init.WindSpeed), g.F, k, cp, co)
		Fk = source_terms.WindWaveBalance(Sin, g.F, k, init.MSS, co)
	case types.INIT_CALM:
		Fk = utils.NewMatrix(g.NX, g.NF)
	default:
		err = fmt.Errorf("unknown initialization type: %d", init.Type)
		return
	}
	logrus.WithFields(logrus.Fields{
		"init":       init.Type.Print(),
		"init_wind":  init.WindSpeed,
		"k_min":      k.Min(),
		"k_max":      k.Max(),
		"cg_max":     cg.Max(),
		"fk_max":     Fk.Max(),
		"iterations": pc.DispersionIterations,
	}).Debug("wave model fields")
	k.SetReadOnly("k")
	cp.SetReadOnly("cp")
	cg.SetReadOnly("cg")
	in = NewIntegrator(Fk, g.F, k, cp, cg, g.XCoords.Data(), windSpeed, co)
	return
}
