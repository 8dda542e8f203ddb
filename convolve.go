package fft

import "fmt"

// Convolve computes the linear (non-circular) discrete convolution of
// x and y via FFT: it zero-pads both to a length the planner can
// transform without wraparound, at least len(x)+len(y)-1, and delegates
// to fastConvolve, the core FastConvolve also uses.
func Convolve(x, y []complex128) ([]complex128, error) {
	if len(x) == 0 && len(y) == 0 {
		return nil, nil
	}
	n := len(x) + len(y) - 1
	N := NextPow2(n)
	xp := ZeroPad(FromComplex128(x), N)
	yp := ZeroPad(FromComplex128(y), N)
	if err := fastConvolve(xp, yp); err != nil {
		return nil, err
	}
	return ToComplex128(xp[:n]), nil
}

// FastConvolve computes the circular discrete convolution of x and y
// via FFT and stores the result in x, zeroing y. x and y must already
// have equal, convolution-safe length (the caller is responsible for
// zero-padding to avoid wraparound, exactly as Convolve does).
func FastConvolve(x, y []complex128) error {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	if len(x) != len(y) {
		return fmt.Errorf("x and y must have the same length, given: %d, %d", len(x), len(y))
	}
	xc := FromComplex128(x)
	yc := FromComplex128(y)
	if err := fastConvolve(xc, yc); err != nil {
		return err
	}
	for i := range x {
		x[i] = complex(xc[i].Re, xc[i].Im)
		y[i] = 0
	}
	return nil
}

// fastConvolve is the generic-complex core shared by Convolve,
// FastConvolve and MultiConvolve: forward-transform both operands,
// multiply pointwise, inverse-transform and normalize, leaving the
// result in x and zeroing y.
func fastConvolve[T Float](x, y []Complex[T]) (err error) {
	defer func() { err = recoverError(recover()) }()
	n := len(x)
	fwd := Plan[T](n, false)
	inv := Plan[T](n, true)

	xo := make([]Complex[T], n)
	yo := make([]Complex[T], n)
	fwd.Process(x, xo)
	fwd.Process(y, yo)

	invN := T(1) / T(n)
	for i := range xo {
		xo[i] = xo[i].Mul(yo[i])
		yo[i] = Complex[T]{}
	}
	inv.Process(xo, x)
	for i := range x {
		x[i] = x[i].Scale(invN)
	}
	copy(y, yo)
	return nil
}

// MultiConvolve computes the discrete convolution of an arbitrary
// number of arrays by folding them pairwise with Convolve. Unlike
// FastMultiConvolve, the arrays need not share a length.
func MultiConvolve(X ...[]complex128) ([]complex128, error) {
	switch len(X) {
	case 0:
		return nil, nil
	case 1:
		out := make([]complex128, len(X[0]))
		copy(out, X[0])
		return out, nil
	}
	acc := X[0]
	var err error
	for _, x := range X[1:] {
		acc, err = Convolve(acc, x)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// FastMultiConvolve computes the discrete convolution of N/n arrays,
// each of length n, packed contiguously in X, and stores the single
// resulting array back into X[:n], zeroing the rest. Every array must
// already be zero-padded to a length the planner can convolve without
// wraparound.
func FastMultiConvolve(X []complex128, n int) error {
	N := len(X)
	if n <= 0 || N%n != 0 {
		return fmt.Errorf("X must be an array of arrays each of length n, instead have len(X) %d not divisible by n (%d)", N, n)
	}
	count := N / n
	if count == 0 {
		return nil
	}
	acc := append([]complex128(nil), X[:n]...)
	for i := 1; i < count; i++ {
		var err error
		acc, err = Convolve(acc[:n], X[i*n:(i+1)*n])
		if err != nil {
			return err
		}
		acc = acc[:n]
	}
	copy(X, acc)
	for i := len(acc); i < N; i++ {
		X[i] = 0
	}
	return nil
}
