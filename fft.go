// Package fft provides a fast discrete Fourier transform library for
// complex input data of any length.
//
// The core type is Fft[T], a polymorphic plan node produced by a
// Planner. A Planner factors the requested length and builds a tree of
// cooperating sub-algorithms: hardcoded butterflies for small sizes, a
// radix-4 kernel for powers of two, composite transpose- or CRT-based
// kernels for n = w*h, and Bluestein's chirp-z or Rader's algorithm for
// sizes with large prime factors. Plans are immutable after
// construction and safe to share across goroutines.
//
// For callers who don't need to manage a Planner directly, Prepare,
// FFT and IFFT offer the same convenience surface as earlier
// power-of-two-only versions of this library, generalized to any
// length and backed by a pair of package-level planners.
package fft

import "fmt"

var (
	forwardPlanner = NewPlanner[float64](false)
	inversePlanner = NewPlanner[float64](true)
)

// Prepare precomputes the forward and inverse plans for transforms of
// length N, so that later FFT/IFFT calls on that length don't pay
// planning cost. It is optional: FFT and IFFT plan lazily on first use
// if Prepare was never called for a given N. Returns an error if N is
// not positive or the planner rejects it.
func Prepare(N int) (err error) {
	defer func() { err = recoverError(recover()) }()
	forwardPlanner.PlanFFT(N)
	inversePlanner.PlanFFT(N)
	return nil
}

// FFT computes the forward discrete Fourier transform of x in place.
// len(x) may be any positive length; it need not be a power of two.
func FFT(x []complex128) (err error) {
	defer func() { err = recoverError(recover()) }()
	transform(forwardPlanner, x)
	return nil
}

// IFFT computes the inverse discrete Fourier transform of x in place,
// normalized by 1/len(x).
func IFFT(x []complex128) (err error) {
	defer func() { err = recoverError(recover()) }()
	transform(inversePlanner, x)
	invN := complex(1.0/float64(len(x)), 0)
	for i := range x {
		x[i] *= invN
	}
	return nil
}

// transform runs x through the plan for its length from p, translating
// to and from the builtin complex128 representation.
func transform(p *Planner[float64], x []complex128) {
	in := FromComplex128(x)
	out := make([]Complex[float64], len(x))
	p.PlanFFT(len(x)).Process(in, out)
	for i, v := range out {
		x[i] = complex(v.Re, v.Im)
	}
}

// recoverError converts a panic value from one of this package's typed
// errors (or anything else) into a returned error, so that callers of
// the convenience API never need to reason about panics themselves.
func recoverError(r any) error {
	if r == nil {
		return nil
	}
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}
