package dispersion

import (
	"math"

	"github.com/notargets/gowave/types"
	"github.com/notargets/gowave/utils"
)

/*
	Wavenumber solves the gravity-capillary dispersion relation

		ω² = g·k·tanh(k·h)·(1 + σ/(ρg)·k²)

	for k at every (space, frequency) cell. f and depth must have matching dims.

	The Newton iteration runs on the depth scaled problem, ω̂ = ω·sqrt(h/g), k̂ = k·h,
	σ̂ = σ/(ρ·g·h²), starting from the deep water guess k̂ = ω̂². The iteration count is fixed at
	pc.DispersionIterations, there is no residual test and no error return: extreme inputs can come
	back imprecise. Changing this to a tolerance loop changes the returned values.
*/
func Wavenumber(f, depth utils.Matrix, pc types.PhysicalConstants) (k utils.Matrix) {
	k = f.Copy().Apply2(depth, func(freq, h float64) float64 {
		return WavenumberScalar(freq, h, pc)
	})
	return
}

func WavenumberScalar(f, h float64, pc types.PhysicalConstants) (k float64) {
	var (
		w  = 2. * math.Pi * math.Sqrt(h/pc.Gravity) * f
		w2 = w * w
		s  = pc.SurfaceTension / (pc.Gravity * pc.WaterDensity * h * h)
		kh = w2
	)
	for n := 0; n < pc.DispersionIterations; n++ {
		var (
			t   = math.Tanh(kh)
			sk2 = s * kh * kh
		)
		dkh := -(w2 - kh*t*(1+sk2)) / (3*sk2*t + t + kh*(1+sk2)*(1-t*t))
		kh -= dkh
	}
	k = kh / h
	return
}

// Residual returns (ω² − g·k·tanh(kh)·(1 + σk²/(ρg))) / ω², the relative misfit of k in the
// dispersion relation.
func Residual(k, f, h float64, pc types.PhysicalConstants) float64 {
	var (
		w2  = math.Pow(2.*math.Pi*f, 2)
		rhs = pc.Gravity * k * math.Tanh(k*h) * (1 + pc.CapillaryLength2()*k*k)
	)
	return (w2 - rhs) / w2
}

// AngularFrequency evaluates ω(k) from the dispersion relation at depth h.
func AngularFrequency(k, h float64, pc types.PhysicalConstants) float64 {
	return math.Sqrt(pc.Gravity * k * math.Tanh(k*h) * (1 + pc.CapillaryLength2()*k*k))
}
