package source_terms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gowave/utils"
)

/*
	Source terms are rates per unit time evaluated cell by cell over [space, frequency]. Sin and Sds
	multiply the spectrum inside an exponential, Snl is added to its time derivative.

	Each public function allocates its result and leaves its inputs unchanged. The row kernels below
	fill rows [kMin, kMax) of a destination so that an Evaluator can split the spatial axis.
*/

// WindInput is the sheltering formulation of wind input
//
//	Sin = sheltering·Ur·|Ur|·(ρa/ρw)·ω·k/g,	Ur = U - cp - current
//
// windSpeed holds one value per spatial point. Sin is negative where waves outrun the wind.
func WindInput(windSpeed utils.Vector, f, k, cp utils.Matrix, co Coefficients) (Sin utils.Matrix) {
	nr, nc := checkDims(f, k, cp)
	if windSpeed.Len() != nr {
		panic(fmt.Errorf("dimension mismatch: wind speed has %d values, field has %d rows",
			windSpeed.Len(), nr))
	}
	Sin = utils.NewMatrix(nr, nc)
	windInputRows(Sin, windSpeed, f, k, cp, co, 0, nr)
	return
}

// Dissipation is the saturation based dissipation rate
//
//	Sds = cds·ω·(1 + cmss·mss_cum)²·B^p,	B = Fk·k⁴
//
// where mss_cum is the running mean squared slope up to and including each frequency. The scan
// is skipped when MSSCoefficient <= 0, and a zero DissipationCoefficient gives Sds = 0 exactly.
func Dissipation(Fk, f, k, dk utils.Matrix, co Coefficients) (Sds utils.Matrix) {
	nr, nc := checkDims(Fk, f, k, dk)
	Sds = utils.NewMatrix(nr, nc)
	dissipationRows(Sds, Fk, f, k, dk, co, 0, nr)
	return
}

// WaveInteraction is a downshifting operator, the forward difference of Fk along frequency
// divided by the next bin's dk. The highest frequency has no outward flux.
func WaveInteraction(Fk, k, dk utils.Matrix, snlCoefficient float64) (Snl utils.Matrix) {
	nr, nc := checkDims(Fk, k, dk)
	Snl = utils.NewMatrix(nr, nc)
	waveInteractionRows(Snl, Fk, dk, snlCoefficient, 0, nr)
	return
}

// SaturationSpectrum is B = Fk·k⁴
func SaturationSpectrum(Fk, k utils.Matrix) (B utils.Matrix) {
	checkDims(Fk, k)
	B = Fk.Copy().Apply2(k, func(F, wn float64) float64 {
		return F * utils.POW(wn, 4)
	})
	return
}

// CumulativeMeanSquaredSlope is the prefix sum along frequency of Fk·k²·dk
func CumulativeMeanSquaredSlope(Fk, k, dk utils.Matrix) (M utils.Matrix) {
	nr, nc := checkDims(Fk, k, dk)
	M = utils.NewMatrix(nr, nc)
	slope := make([]float64, nc)
	for i := 0; i < nr; i++ {
		cumulativeSlope(M.RowView(i), slope, Fk.RowView(i), k.RowView(i), dk.RowView(i))
	}
	return
}

// WindWaveBalance solves Sds(Fk) = Sin for Fk given a fixed mean squared slope
//
//	Fk = (Sin / (ω·cds·(1 + cmss·mss)²))^(1/p) / k⁴
//
// Cells that produce NaN, where Sin < 0, are set to zero.
func WindWaveBalance(Sin, f, k utils.Matrix, mss float64, co Coefficients) (Fk utils.Matrix) {
	checkDims(Sin, f, k)
	var (
		mssFactor = utils.POW(1+co.MSSCoefficient*mss, 2)
		rp        = 1. / co.DissipationPower
	)
	Fk = Sin.Copy().Apply3(f, k, func(s, freq, wn float64) float64 {
		omega := 2 * math.Pi * freq
		F := math.Pow(s/(omega*co.DissipationCoefficient*mssFactor), rp) / utils.POW(wn, 4)
		return utils.NaNToZero(F)
	})
	return
}

func windInputRows(Sin utils.Matrix, windSpeed utils.Vector, f, k, cp utils.Matrix, co Coefficients, kMin, kMax int) {
	var (
		scale = co.ShelteringCoefficient * co.AirDensity / co.WaterDensity / co.Gravity
		U     = windSpeed.Data()
	)
	for i := kMin; i < kMax; i++ {
		var (
			S          = Sin.RowView(i)
			F, K, Cp   = f.RowView(i), k.RowView(i), cp.RowView(i)
			uMinusCurr = U[i] - co.Current
		)
		for j := range S {
			Ur := uMinusCurr - Cp[j]
			S[j] = scale * Ur * math.Abs(Ur) * 2 * math.Pi * F[j] * K[j]
		}
	}
}

func dissipationRows(Sds, Fk, f, k, dk utils.Matrix, co Coefficients, kMin, kMax int) {
	var (
		_, nc  = Fk.Dims()
		useMSS = co.MSSCoefficient > 0
		slope  []float64
		cum    []float64
	)
	// Exact zeros, B^p is NaN for a negative spectrum
	if co.DissipationCoefficient == 0 {
		for i := kMin; i < kMax; i++ {
			floats.Scale(0, Sds.RowView(i))
		}
		return
	}
	if useMSS {
		slope, cum = make([]float64, nc), make([]float64, nc)
	}
	for i := kMin; i < kMax; i++ {
		var (
			S         = Sds.RowView(i)
			Fr, Fq, K = Fk.RowView(i), f.RowView(i), k.RowView(i)
		)
		if useMSS {
			cumulativeSlope(cum, slope, Fr, K, dk.RowView(i))
		}
		for j := range S {
			mssFactor := 1.
			if useMSS {
				mssFactor = utils.POW(1+co.MSSCoefficient*cum[j], 2)
			}
			B := Fr[j] * utils.POW(K[j], 4)
			S[j] = co.DissipationCoefficient * 2 * math.Pi * Fq[j] * mssFactor * math.Pow(B, co.DissipationPower)
		}
	}
}

func waveInteractionRows(Snl, Fk, dk utils.Matrix, snlCoefficient float64, kMin, kMax int) {
	for i := kMin; i < kMax; i++ {
		var (
			S     = Snl.RowView(i)
			F, D  = Fk.RowView(i), dk.RowView(i)
			nLast = len(S) - 1
		)
		for j := 0; j < nLast; j++ {
			S[j] = snlCoefficient * (F[j+1] - F[j]) / D[j+1]
		}
		S[nLast] = 0
	}
}

// cumulativeSlope writes the running sum of Fk·k²·dk into cum, slope is scratch
func cumulativeSlope(cum, slope, F, K, D []float64) {
	for j := range slope {
		slope[j] = F[j] * K[j] * K[j] * D[j]
	}
	floats.CumSum(cum, slope)
}

func checkDims(A utils.Matrix, others ...utils.Matrix) (nr, nc int) {
	nr, nc = A.Dims()
	for _, B := range others {
		if r, c := B.Dims(); r != nr || c != nc {
			panic(fmt.Errorf("dimension mismatch: [%d, %d] and [%d, %d]", nr, nc, r, c))
		}
	}
	return
}
