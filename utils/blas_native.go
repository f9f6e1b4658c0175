//go:build !(cgo && netlib)
// +build !cgo !netlib

package utils

// BLASImplementation names the BLAS backing gonum's blas64 in this build.
var BLASImplementation = "gonum"
