package Grid1D

import (
	"fmt"

	"github.com/notargets/gowave/utils"
)

// Grid1D crosses a 1-D line of spatial points with a log spaced frequency axis. Matrix fields
// are indexed [space, frequency].
type Grid1D struct {
	NX, NF  int
	Freq    utils.Vector // Frequencies, Hz
	XCoords utils.Vector // Spatial positions, m
	F       utils.Matrix // Frequency broadcast over space
	X       utils.Matrix // Position broadcast over frequency
	Depth   utils.Matrix // Water depth broadcast over frequency
}

// NewGrid1D builds the frequency and space axes and their meshgrid fields. depth holds one value
// (uniform depth) or one value per spatial point.
func NewGrid1D(fmin, fmax float64, nf int, xmin, xmax float64, nx int, depth []float64) (g *Grid1D, err error) {
	switch {
	case nf < 2:
		err = fmt.Errorf("need at least 2 frequencies, have %d", nf)
	case nx < 2:
		err = fmt.Errorf("need at least 2 grid points, have %d", nx)
	case fmin <= 0 || fmax <= fmin:
		err = fmt.Errorf("frequency range must satisfy 0 < fmin < fmax, have [%v, %v]", fmin, fmax)
	case xmax <= xmin:
		err = fmt.Errorf("spatial range must satisfy xmin < xmax, have [%v, %v]", xmin, xmax)
	case len(depth) != 1 && len(depth) != nx:
		err = fmt.Errorf("depth must have 1 or %d values, have %d", nx, len(depth))
	}
	if err != nil {
		return
	}
	x := utils.NewVector(nx).Linspace(xmin, xmax)
	return NewGrid1DFromCoords(utils.NewVector(nf).Logspace(fmin, fmax), x, depth)
}

// NewGrid1DFromCoords builds a grid over supplied axes, x may be non uniform but must increase.
func NewGrid1DFromCoords(freq, x utils.Vector, depth []float64) (g *Grid1D, err error) {
	var (
		nx, nf = x.Len(), freq.Len()
		xd     = x.Data()
	)
	for i := 1; i < nx; i++ {
		if xd[i] <= xd[i-1] {
			err = fmt.Errorf("grid coordinates must be strictly increasing, x[%d] = %v, x[%d] = %v",
				i-1, xd[i-1], i, xd[i])
			return
		}
	}
	depthV := utils.NewVector(nx)
	switch len(depth) {
	case 1:
		depthV.Set(depth[0])
	case nx:
		copy(depthV.Data(), depth)
	default:
		err = fmt.Errorf("depth must have 1 or %d values, have %d", nx, len(depth))
		return
	}
	if depthV.Min() <= 0 {
		err = fmt.Errorf("water depth must be positive, minimum is %v", depthV.Min())
		return
	}
	var (
		onesF = utils.NewVectorConstant(nf, 1)
		onesX = utils.NewVectorConstant(nx, 1)
	)
	g = &Grid1D{
		NX:      nx,
		NF:      nf,
		Freq:    freq,
		XCoords: x,
		F:       onesX.Outer(freq),
		X:       x.Outer(onesF),
		Depth:   depthV.Outer(onesF),
	}
	g.F.SetReadOnly("F")
	g.X.SetReadOnly("X")
	g.Depth.SetReadOnly("Depth")
	return
}
