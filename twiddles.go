package fft

import "math"

// Twiddle returns exp(sigma*2*pi*i*k/n), where sigma is -1 for forward
// transforms and +1 for inverse transforms. It is the complex root of
// unity used as a multiplicative coefficient between FFT stages.
func Twiddle[T Float](k, n int, inverse bool) Complex[T] {
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	theta := sign * 2.0 * math.Pi * float64(k) / float64(n)
	s, c := math.Sincos(theta)
	return Complex[T]{T(c), T(s)}
}

// TwiddleTable precomputes Twiddle(k, n, inverse) for k in [0, n).
func TwiddleTable[T Float](n int, inverse bool) []Complex[T] {
	table := make([]Complex[T], n)
	for k := range table {
		table[k] = Twiddle[T](k, n, inverse)
	}
	return table
}

// ChirpTwiddle returns exp(sigma*pi*i*k^2/n), the Bluestein chirp
// sequence element for index k. k^2 is reduced modulo 2n first (only
// the phase mod 2*pi matters) to keep the intermediate product well
// inside float64 exactness for the sizes this library targets.
func ChirpTwiddle[T Float](k, n int, inverse bool) Complex[T] {
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	kk := (k % (2 * n)) * k % (2 * n)
	theta := sign * math.Pi * float64(kk) / float64(n)
	s, c := math.Sincos(theta)
	return Complex[T]{T(c), T(s)}
}
