package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			panic(fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v", n, len(dataO[0])))
		}
		return Vector{mat.NewVecDense(n, dataO[0])}
	}
	return Vector{mat.NewVecDense(n, make([]float64, n))}
}

func NewVectorConstant(n int, val float64) Vector {
	return NewVector(n, ConstArray(n, val))
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Set(val float64) Vector {
	var (
		data = v.Data()
	)
	for i := range data {
		data[i] = val
	}
	return v
}

// Linspace fills the receiver with evenly spaced values over [min, max], endpoints included.
func (v Vector) Linspace(min, max float64) Vector {
	var (
		data = v.Data()
		N    = len(data)
	)
	if N == 1 {
		data[0] = min
		return v
	}
	floats.Span(data, min, max)
	return v
}

// Logspace fills the receiver with values evenly spaced in log10 over [min, max], endpoints included.
func (v Vector) Logspace(min, max float64) Vector {
	var (
		data = v.Data()
	)
	if len(data) == 1 {
		data[0] = min
		return v
	}
	floats.LogSpan(data, min, max)
	return v
}

func (v Vector) Add(a float64) Vector {
	var (
		data = v.Data()
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	floats.Scale(a, v.Data())
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.Data()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	var (
		data = v.Data()
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return v
}

func (v Vector) Copy() Vector {
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	return NewVector(len(data), data)
}

// Outer returns the outer product v * w^T as a len(v) x len(w) Matrix.
func (v Vector) Outer(w Vector) (R Matrix) {
	var (
		nr, nc = v.Len(), w.Len()
		dataV  = v.Data()
		dataW  = w.Data()
	)
	R = NewMatrix(nr, nc)
	dataR := R.Data()
	for i, vi := range dataV {
		for j, wj := range dataW {
			dataR[i*nc+j] = vi * wj
		}
	}
	return
}

func (v Vector) Min() (min float64) {
	return floats.Min(v.Data())
}

func (v Vector) Max() (max float64) {
	return floats.Max(v.Data())
}

func (v Vector) Sum() float64 {
	return floats.Sum(v.Data())
}

// IsFinite reports whether every element is neither NaN nor infinite.
func (v Vector) IsFinite() bool {
	for _, val := range v.Data() {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
