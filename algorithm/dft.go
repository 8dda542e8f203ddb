package algorithm

import fft "github.com/andewx/spectral"

// DFT is the naive O(n^2) discrete Fourier transform. The planner
// never selects it (primes beyond the butterflies go to Rader or
// Bluestein); it serves as the reference implementation the test suite
// checks every other algorithm against. Unlike the fixed
// butterflies it stores only an O(n) root-of-unity table rather than
// the full O(n^2) matrix, since n here is not bounded by a small
// constant.
type DFT[T fft.Float] struct {
	n       int
	inverse bool
	roots   []fft.Complex[T]
}

// New builds the naive DFT of size n for the given direction.
func New[T fft.Float](n int, inverse bool) *DFT[T] {
	return &DFT[T]{n: n, inverse: inverse, roots: fft.TwiddleTable[T](n, inverse)}
}

func (d *DFT[T]) Len() int        { return d.n }
func (d *DFT[T]) IsInverse() bool { return d.inverse }

func (d *DFT[T]) Process(input, output []fft.Complex[T]) {
	fft.VerifyLength(input, output, "DFT", d.n)
	d.block(input, output)
}

func (d *DFT[T]) ProcessMulti(input, output []fft.Complex[T]) {
	fft.VerifyLengthDivisible(input, output, "DFT", d.n)
	n := d.n
	for base := 0; base < len(input); base += n {
		d.block(input[base:base+n], output[base:base+n])
	}
}

func (d *DFT[T]) block(input, output []fft.Complex[T]) {
	n := d.n
	for k := 0; k < n; k++ {
		var sum fft.Complex[T]
		for j := 0; j < n; j++ {
			sum = sum.Add(input[j].Mul(d.roots[(j*k)%n]))
		}
		output[k] = sum
	}
}
