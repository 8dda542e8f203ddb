package fft

import "math"

// Float is the set of floating-point element types a transform can be
// built over. RustFFT calls this FftNum; here it is just the precision
// of the real and imaginary scalars.
type Float interface {
	~float32 | ~float64
}

// Complex is a pair of floating-point scalars, parameterized over the
// same precision as the transform that produces it. It exists instead
// of the builtin complex64/complex128 so that a single generic
// algorithm body serves both precisions.
type Complex[T Float] struct {
	Re, Im T
}

// C constructs a Complex from its real and imaginary parts.
func C[T Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

func (a Complex[T]) Add(b Complex[T]) Complex[T] {
	return Complex[T]{a.Re + b.Re, a.Im + b.Im}
}

func (a Complex[T]) Sub(b Complex[T]) Complex[T] {
	return Complex[T]{a.Re - b.Re, a.Im - b.Im}
}

func (a Complex[T]) Mul(b Complex[T]) Complex[T] {
	return Complex[T]{a.Re*b.Re - a.Im*b.Im, a.Re*b.Im + a.Im*b.Re}
}

// Scale multiplies by a real scalar.
func (a Complex[T]) Scale(s T) Complex[T] {
	return Complex[T]{a.Re * s, a.Im * s}
}

// Conj returns the complex conjugate.
func (a Complex[T]) Conj() Complex[T] {
	return Complex[T]{a.Re, -a.Im}
}

// MulI returns a multiplied by i.
func (a Complex[T]) MulI() Complex[T] {
	return Complex[T]{-a.Im, a.Re}
}

// MulNegI returns a multiplied by -i.
func (a Complex[T]) MulNegI() Complex[T] {
	return Complex[T]{a.Im, -a.Re}
}

// Abs returns the modulus of a.
func (a Complex[T]) Abs() T {
	return T(math.Hypot(float64(a.Re), float64(a.Im)))
}

// Zero is the additive identity, useful for make-and-fill idioms
// where the zero value of Complex[T] isn't spelled out explicitly.
func Zero[T Float]() Complex[T] {
	return Complex[T]{}
}
