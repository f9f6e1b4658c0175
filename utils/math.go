package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// POW raises x to a small integer power by repeated multiplication, falling back to math.Pow.
func POW(x float64, p int) (y float64) {
	if p < -8 || p > 8 {
		return math.Pow(x, float64(p))
	}
	var (
		n = p
	)
	if n < 0 {
		n = -n
	}
	y = 1
	for b := x; n > 0; n >>= 1 {
		if n&1 == 1 {
			y *= b
		}
		b *= b
	}
	if p < 0 {
		y = 1. / y
	}
	return
}

// NaNToZero maps NaN to zero and leaves every other value untouched.
func NaNToZero(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}
