package fft

import "math"

// IsPow2 returns true if n is a perfect power of 2 (1, 2, 4, 8, ...)
// and false otherwise.
func IsPow2(n int) bool {
	if n <= 0 {
		return false
	}
	return n&(n-1) == 0
}

// NextPow2 returns the smallest power of 2 that is >= n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ZeroPad copies x into a new slice of length n, zero-filling the
// tail. It does not alter x. Meant as a convenience for callers
// assembling buffers before a transform, not for the per-transform hot
// path: every allocation it performs is one the planned algorithms
// themselves never make.
func ZeroPad[T Float](x []Complex[T], n int) []Complex[T] {
	y := make([]Complex[T], n)
	copy(y, x)
	return y
}

// ZeroPadToNextPow2 pads x with zeros up to the next power of 2 >=
// len(x).
func ZeroPadToNextPow2[T Float](x []Complex[T]) []Complex[T] {
	return ZeroPad(x, NextPow2(len(x)))
}

// FromComplex128 converts a slice of the builtin complex128 into a
// slice of Complex[float64], for callers whose data arrives in
// standard library form.
func FromComplex128(x []complex128) []Complex[float64] {
	y := make([]Complex[float64], len(x))
	for i, v := range x {
		y[i] = Complex[float64]{real(v), imag(v)}
	}
	return y
}

// ToComplex128 converts a slice of Complex[float64] into the builtin
// complex128 representation.
func ToComplex128(x []Complex[float64]) []complex128 {
	y := make([]complex128, len(x))
	for i, v := range x {
		y[i] = complex(v.Re, v.Im)
	}
	return y
}

// FromComplex64 converts a slice of the builtin complex64 into a slice
// of Complex[float32].
func FromComplex64(x []complex64) []Complex[float32] {
	y := make([]Complex[float32], len(x))
	for i, v := range x {
		y[i] = Complex[float32]{real(v), imag(v)}
	}
	return y
}

// ToComplex64 converts a slice of Complex[float32] into the builtin
// complex64 representation.
func ToComplex64(x []Complex[float32]) []complex64 {
	y := make([]complex64, len(x))
	for i, v := range x {
		y[i] = complex(v.Re, v.Im)
	}
	return y
}

// RealToComplex converts a slice of real samples into complex values
// with a zero imaginary part.
func RealToComplex[T Float](x []T) []Complex[T] {
	y := make([]Complex[T], len(x))
	for i, v := range x {
		y[i] = Complex[T]{v, 0}
	}
	return y
}

// ComplexToReal extracts the real part of each element.
func ComplexToReal[T Float](x []Complex[T]) []T {
	y := make([]T, len(x))
	for i, v := range x {
		y[i] = v.Re
	}
	return y
}

// RoundReal rounds the real part of every element of x to the nearest
// integer value, in place. Useful after an inverse transform whose
// input is known to have been integral (e.g. big-integer multiplication
// via convolution).
func RoundReal[T Float](x []Complex[T]) {
	for i, v := range x {
		x[i].Re = T(math.Round(float64(v.Re)))
	}
}
