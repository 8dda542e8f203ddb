package algorithm

import fft "github.com/andewx/spectral"

// Rader computes the FFT of a prime length p by permuting all but the
// DC sample through a primitive root of p into a length-(p-1) cyclic
// convolution. Like Bluestein it needs a forward and an inverse inner
// plan of the same length (here p-1) regardless of its own direction,
// and for the same reason allocates its per-call workspace fresh
// rather than sharing instance state across concurrent calls.
type Rader[T fft.Float] struct {
	p              int
	inverse        bool
	innerFwd       fft.Fft[T]
	innerInv       fft.Fft[T]
	perm           []int // gather: perm[k] = g^k mod p
	invPerm        []int // scatter: invPerm[k] = g^(-k) mod p
	kernelSpectrum []fft.Complex[T]
}

// NewRader builds the length-p FFT for the given direction from a
// forward and an inverse inner plan, both of length p-1. It panics
// with a *fft.FactorizationError if p is not prime or the inner plans
// are not length- or direction-matched to their role.
func NewRader[T fft.Float](p int, inverse bool, innerFwd, innerInv fft.Fft[T]) *Rader[T] {
	if !fft.IsPrime(p) {
		panic(&fft.FactorizationError{Context: "Rader: size must be prime", N: p})
	}
	m := p - 1
	if innerFwd.Len() != m || innerInv.Len() != m {
		panic(&fft.FactorizationError{Context: "Rader: inner plans must have length p-1", N: p})
	}
	if innerFwd.IsInverse() || !innerInv.IsInverse() {
		panic(&fft.FactorizationError{Context: "Rader: requires one forward and one inverse inner plan", N: p})
	}

	g := fft.PrimitiveRoot(int64(p))
	perm := make([]int, m)
	cur := int64(1)
	for k := 0; k < m; k++ {
		perm[k] = int(cur)
		cur = cur * g % int64(p)
	}
	invPerm := make([]int, m)
	invPerm[0] = perm[0]
	for k := 1; k < m; k++ {
		invPerm[k] = perm[m-k]
	}

	t := make([]fft.Complex[T], m)
	for k := 0; k < m; k++ {
		t[k] = fft.Twiddle[T](invPerm[k], p, inverse)
	}
	kernelSpectrum := make([]fft.Complex[T], m)
	innerFwd.Process(t, kernelSpectrum)

	return &Rader[T]{
		p: p,
		inverse:        inverse,
		innerFwd:       innerFwd,
		innerInv:       innerInv,
		perm:           perm,
		invPerm:        invPerm,
		kernelSpectrum: kernelSpectrum,
	}
}

func (r *Rader[T]) Len() int        { return r.p }
func (r *Rader[T]) IsInverse() bool { return r.inverse }

func (r *Rader[T]) Process(input, output []fft.Complex[T]) {
	fft.VerifyLength(input, output, "Rader", r.p)
	m := r.p - 1
	y := make([]fft.Complex[T], m)
	spectrum := make([]fft.Complex[T], m)
	result := make([]fft.Complex[T], m)
	r.block(input, output, y, spectrum, result)
}

func (r *Rader[T]) ProcessMulti(input, output []fft.Complex[T]) {
	fft.VerifyLengthDivisible(input, output, "Rader", r.p)
	m := r.p - 1
	y := make([]fft.Complex[T], m)
	spectrum := make([]fft.Complex[T], m)
	result := make([]fft.Complex[T], m)
	p := r.p
	for base := 0; base < len(input); base += p {
		r.block(input[base:base+p], output[base:base+p], y, spectrum, result)
	}
}

func (r *Rader[T]) block(input, output, y, spectrum, result []fft.Complex[T]) {
	m := r.p - 1

	var dc fft.Complex[T]
	for _, v := range input {
		dc = dc.Add(v)
	}

	for k := 0; k < m; k++ {
		y[k] = input[r.perm[k]]
	}
	r.innerFwd.Process(y, spectrum)
	for k := 0; k < m; k++ {
		spectrum[k] = spectrum[k].Mul(r.kernelSpectrum[k])
	}
	r.innerInv.Process(spectrum, result)

	invM := T(1) / T(m)
	x0 := input[0]
	output[0] = dc
	for k := 0; k < m; k++ {
		output[r.invPerm[k]] = result[k].Scale(invM).Add(x0)
	}
}
