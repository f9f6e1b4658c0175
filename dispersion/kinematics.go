package dispersion

import (
	"math"

	"github.com/notargets/gowave/types"
	"github.com/notargets/gowave/utils"
)

// PhaseSpeed returns cp = 2πf/k. k must be strictly positive.
func PhaseSpeed(f, k utils.Matrix) (cp utils.Matrix) {
	cp = f.Copy().Apply2(k, func(freq, wn float64) float64 {
		return 2. * math.Pi * freq / wn
	})
	return
}

// GroupSpeed returns cg = dω/dk = cp·(1/2 + kh/sinh(2kh) + Tk²/(1 + Tk²)), T = σ/(ρg).
// For large kh sinh overflows to +Inf and the depth term drops out, giving the deep water limit.
func GroupSpeed(f, k, depth utils.Matrix, pc types.PhysicalConstants) (cg utils.Matrix) {
	var (
		T = pc.CapillaryLength2()
	)
	cg = PhaseSpeed(f, k).Apply3(k, depth, func(cp, wn, h float64) float64 {
		var (
			kh  = wn * h
			tk2 = T * wn * wn
		)
		return cp * (0.5 + kh/math.Sinh(2*kh) + tk2/(1+tk2))
	})
	return
}

// Bandwidth returns dk = 2πf/cg, the wavenumber increment per unit log frequency. It is the
// integration measure for every spectral moment.
func Bandwidth(f, cg utils.Matrix) (dk utils.Matrix) {
	dk = f.Copy().Apply2(cg, func(freq, c float64) float64 {
		return 2. * math.Pi * freq / c
	})
	return
}
