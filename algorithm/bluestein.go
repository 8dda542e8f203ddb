package algorithm

import fft "github.com/andewx/spectral"

// Bluestein computes the FFT of an arbitrary length n (in particular,
// sizes with large prime factors that admit no good Rader convolution)
// by rewriting the DFT as a power-of-two-length cyclic convolution: the
// chirp-z transform. It needs two inner plans of length m, a power of
// two at least 2n-1 — one forward, one inverse — regardless of
// Bluestein's own direction, since the convolution itself is always
// carried out via a canonical forward/inverse pair.
//
// Both inner transforms operate on an m-length workspace, which is
// necessarily larger than the caller's n-length buffers; Process and
// ProcessMulti therefore allocate their scratch per call rather than
// reusing any instance-level buffer, which is what keeps concurrent
// calls on the same shared plan safe.
type Bluestein[T fft.Float] struct {
	n, m           int
	inverse        bool
	innerFwd       fft.Fft[T]
	innerInv       fft.Fft[T]
	chirp          []fft.Complex[T] // length n: the chirp sequence a[k]
	kernelSpectrum []fft.Complex[T] // length m
}

// NewBluestein builds the length-n FFT for the given direction from a
// forward and an inverse inner plan, both of length m = innerFwd.Len().
// It panics with a *fft.FactorizationError if the inner plans are not
// length-matched, not a power of two, too short for n, or mismatched in
// direction from what their role requires.
func NewBluestein[T fft.Float](n int, inverse bool, innerFwd, innerInv fft.Fft[T]) *Bluestein[T] {
	m := innerFwd.Len()
	if innerInv.Len() != m || !fft.IsPow2(m) || m < 2*n-1 {
		panic(&fft.FactorizationError{Context: "Bluestein: inner plans must both have power-of-two length >= 2n-1", N: n})
	}
	if innerFwd.IsInverse() || !innerInv.IsInverse() {
		panic(&fft.FactorizationError{Context: "Bluestein: requires one forward and one inverse inner plan", N: n})
	}

	a := make([]fft.Complex[T], n)
	for k := 0; k < n; k++ {
		a[k] = fft.ChirpTwiddle[T](k, n, inverse)
	}
	aConj := make([]fft.Complex[T], n)
	for k := 0; k < n; k++ {
		aConj[k] = a[k].Conj()
	}

	c := make([]fft.Complex[T], m)
	for k := 0; k < n; k++ {
		c[k] = aConj[k]
	}
	for k := 1; k < n; k++ {
		c[(m-k)%m] = aConj[k]
	}
	kernelSpectrum := make([]fft.Complex[T], m)
	innerFwd.Process(c, kernelSpectrum)

	return &Bluestein[T]{
		n: n, m: m,
		inverse:        inverse,
		innerFwd:       innerFwd,
		innerInv:       innerInv,
		chirp:          a,
		kernelSpectrum: kernelSpectrum,
	}
}

func (b *Bluestein[T]) Len() int        { return b.n }
func (b *Bluestein[T]) IsInverse() bool { return b.inverse }

func (b *Bluestein[T]) Process(input, output []fft.Complex[T]) {
	fft.VerifyLength(input, output, "Bluestein", b.n)
	y := make([]fft.Complex[T], b.m)
	spectrum := make([]fft.Complex[T], b.m)
	result := make([]fft.Complex[T], b.m)
	b.block(input, output, y, spectrum, result)
}

func (b *Bluestein[T]) ProcessMulti(input, output []fft.Complex[T]) {
	fft.VerifyLengthDivisible(input, output, "Bluestein", b.n)
	y := make([]fft.Complex[T], b.m)
	spectrum := make([]fft.Complex[T], b.m)
	result := make([]fft.Complex[T], b.m)
	n := b.n
	for base := 0; base < len(input); base += n {
		b.block(input[base:base+n], output[base:base+n], y, spectrum, result)
	}
}

func (b *Bluestein[T]) block(input, output, y, spectrum, result []fft.Complex[T]) {
	n, m := b.n, b.m
	for k := 0; k < n; k++ {
		y[k] = input[k].Mul(b.chirp[k])
	}
	for k := n; k < m; k++ {
		y[k] = fft.Complex[T]{}
	}

	b.innerFwd.Process(y, spectrum)
	for k := 0; k < m; k++ {
		spectrum[k] = spectrum[k].Mul(b.kernelSpectrum[k])
	}
	b.innerInv.Process(spectrum, result)

	invM := T(1) / T(m)
	for k := 0; k < n; k++ {
		output[k] = result[k].Scale(invM).Mul(b.chirp[k])
	}
}
