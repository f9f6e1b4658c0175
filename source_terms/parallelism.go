package source_terms

import (
	"github.com/notargets/gowave/utils"
)

// Evaluator computes the source terms into caller owned buffers, splitting the spatial axis over
// Coefficients.ParallelDegree partitions. Rows are independent so the partitions run
// concurrently; the mean squared slope scan stays sequential inside each row.
type Evaluator struct {
	Co           Coefficients
	PartitionMap *utils.PartitionMap
	nx           int
}

func NewEvaluator(co Coefficients, nx int) (ev *Evaluator) {
	ev = &Evaluator{
		Co:           co,
		PartitionMap: utils.NewPartitionMap(co.ParallelDegree, nx),
		nx:           nx,
	}
	return
}

func (ev *Evaluator) WindInput(Sin utils.Matrix, windSpeed utils.Vector, f, k, cp utils.Matrix) utils.Matrix {
	ev.checkRows(Sin, f, k, cp)
	ev.PartitionMap.Execute(func(_, kMin, kMax int) {
		windInputRows(Sin, windSpeed, f, k, cp, ev.Co, kMin, kMax)
	})
	return Sin
}

func (ev *Evaluator) Dissipation(Sds, Fk, f, k, dk utils.Matrix) utils.Matrix {
	ev.checkRows(Sds, Fk, f, k, dk)
	ev.PartitionMap.Execute(func(_, kMin, kMax int) {
		dissipationRows(Sds, Fk, f, k, dk, ev.Co, kMin, kMax)
	})
	return Sds
}

func (ev *Evaluator) WaveInteraction(Snl, Fk, dk utils.Matrix) utils.Matrix {
	ev.checkRows(Snl, Fk, dk)
	ev.PartitionMap.Execute(func(_, kMin, kMax int) {
		waveInteractionRows(Snl, Fk, dk, ev.Co.SnlCoefficient, kMin, kMax)
	})
	return Snl
}

func (ev *Evaluator) checkRows(A utils.Matrix, others ...utils.Matrix) {
	nr, _ := checkDims(A, others...)
	if nr != ev.nx {
		panic("evaluator partitioned for a different number of rows")
	}
}
