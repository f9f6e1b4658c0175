// Package diagnostics reduces a spectrum over frequency into bulk fields, one value per spatial point.
package diagnostics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/gowave/types"
	"github.com/notargets/gowave/utils"
)

// SignificantWaveHeight is 4·sqrt(Σ Fk·dk)
func SignificantWaveHeight(Fk, dk utils.Matrix) (swh utils.Vector) {
	swh = Fk.Copy().ElMul(dk).SumRows().Apply(func(m0 float64) float64 {
		return 4 * math.Sqrt(m0)
	})
	return
}

// MeanWavePeriod is Σ Fk / Σ Fk·f
func MeanWavePeriod(Fk, f utils.Matrix) utils.Vector {
	return weightedPeriod(Fk.Copy(), f)
}

// DominantWavePeriod is Σ Fk⁴ / Σ Fk⁴·f, the fourth power weights the spectral peak
func DominantWavePeriod(Fk, f utils.Matrix) utils.Vector {
	return weightedPeriod(Fk.Copy().POW(4), f)
}

// MeanSquaredSlope is Σ Fk·k²·dk
func MeanSquaredSlope(Fk, k, dk utils.Matrix) (mss utils.Vector) {
	mss = Fk.Copy().Apply3(k, dk, func(F, wn, d float64) float64 {
		return F * wn * wn * d
	}).SumRows()
	return
}

// FormDrag is the wave supported wind stress ρw·g·Σ Sin·Fk·dk/cp
func FormDrag(Sin, Fk, cp, dk utils.Matrix, pc types.PhysicalConstants) (tau utils.Vector) {
	tau = Sin.Copy().ElMul(Fk).ElMul(dk).ElDiv(cp).SumRows().Scale(pc.WaterDensity * pc.Gravity)
	return
}

func weightedPeriod(W, f utils.Matrix) (T utils.Vector) {
	var (
		nr, _ = W.Dims()
	)
	T = utils.NewVector(nr)
	for i := 0; i < nr; i++ {
		w := W.RowView(i)
		T.V.SetVec(i, floats.Sum(w)/floats.Dot(w, f.RowView(i)))
	}
	return
}

// Stats summarizes a diagnostic over space.
type Stats struct {
	Mean, StdDev, Min, Max float64
}

func Summary(v utils.Vector) (s Stats) {
	data := v.Data()
	if len(data) == 0 {
		return
	}
	if len(data) == 1 {
		s.Mean = data[0]
	} else {
		s.Mean, s.StdDev = stat.MeanStdDev(data, nil)
	}
	s.Min, s.Max = floats.Min(data), floats.Max(data)
	return
}

func (s Stats) String() string {
	return fmt.Sprintf("mean %8.5f, std %8.5f, min %8.5f, max %8.5f", s.Mean, s.StdDev, s.Min, s.Max)
}
