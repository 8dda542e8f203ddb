package algorithm

import (
	"math/bits"

	fft "github.com/andewx/spectral"
)

// Radix4 computes the FFT of a power-of-two length n by writing n as
// 4^a * b, with b the largest member of {1, 2, 4, 8, 16, 32} for which
// n/b is itself a power of four. It reorders the input once into the
// caller's buffer (base-4 digit reversal of the block index, natural
// order inside each b-point block), applies the b-point base case to
// each contiguous block, and then folds four blocks into one at a time via radix-4
// combine passes until the whole array is one block.
type Radix4[T fft.Float] struct {
	n       int
	inverse bool
	base    *fixedButterfly[T]
	perm    []int
	stages  []radix4Stage[T]
}

type radix4Stage[T fft.Float] struct {
	stride   int
	twiddles []fft.Complex[T] // 3 per k in [0, stride): w^k, w^2k, w^3k at modulus 4*stride
}

// NewRadix4 builds the power-of-two FFT of size n for the given
// direction. It panics with a *fft.FactorizationError if n is not a
// power of two.
func NewRadix4[T fft.Float](n int, inverse bool) *Radix4[T] {
	if !fft.IsPow2(n) {
		panic(&fft.FactorizationError{Context: "Radix4: size must be a power of two", N: n})
	}
	b := radix4BaseSize(n)
	// Position blk*b+t reads input index digitrev4(blk) + (n/b)*t, so each
	// b-point block holds its decimated subsequence in natural order and
	// the blocks sit in the order the radix-4 combine passes consume.
	blocks := n / b
	perm := make([]int, n)
	for p := range perm {
		blk, rev := p/b, 0
		for q := 1; q < blocks; q *= 4 {
			rev = rev*4 + blk%4
			blk /= 4
		}
		perm[p] = rev + blocks*(p%b)
	}
	r := &Radix4[T]{
		n:       n,
		inverse: inverse,
		base:    newFixedButterfly[T](b, inverse),
		perm:    perm,
	}
	for s := b; s < n; s *= 4 {
		fourS := 4 * s
		twiddles := make([]fft.Complex[T], 3*s)
		for k := 0; k < s; k++ {
			twiddles[3*k] = fft.Twiddle[T](k, fourS, inverse)
			twiddles[3*k+1] = fft.Twiddle[T](2*k, fourS, inverse)
			twiddles[3*k+2] = fft.Twiddle[T](3*k, fourS, inverse)
		}
		r.stages = append(r.stages, radix4Stage[T]{stride: s, twiddles: twiddles})
	}
	return r
}

// radix4BaseSize picks the largest b in {1,2,4,8,16,32} such that n/b
// is an exact power of four, by case-splitting on the parity of
// log2(n).
func radix4BaseSize(n int) int {
	l := bits.TrailingZeros(uint(n))
	if l%2 == 0 {
		switch m := l / 2; {
		case m >= 2:
			return 16
		case m == 1:
			return 4
		default:
			return 1
		}
	}
	switch m := (l - 1) / 2; {
	case m >= 2:
		return 32
	case m == 1:
		return 8
	default:
		return 2
	}
}

func (r *Radix4[T]) Len() int        { return r.n }
func (r *Radix4[T]) IsInverse() bool { return r.inverse }

func (r *Radix4[T]) Process(input, output []fft.Complex[T]) {
	fft.VerifyLength(input, output, "Radix4", r.n)
	r.block(input, output)
}

func (r *Radix4[T]) ProcessMulti(input, output []fft.Complex[T]) {
	fft.VerifyLengthDivisible(input, output, "Radix4", r.n)
	n := r.n
	for base := 0; base < len(input); base += n {
		r.block(input[base:base+n], output[base:base+n])
	}
}

func (r *Radix4[T]) block(input, output []fft.Complex[T]) {
	n := r.n
	fft.PermuteInto(output, input, r.perm)
	r.base.ProcessMulti(output, input)
	for _, st := range r.stages {
		radix4Combine(input, n, st.stride, st.twiddles, r.inverse)
	}
	copy(output, input)
}

// radix4Combine folds groups of four stride-s blocks into one
// 4*stride block at a time, entirely in place: it reads and rewrites
// only the four elements of each group, so no additional scratch is
// needed beyond the caller's buffer.
func radix4Combine[T fft.Float](x []fft.Complex[T], n, s int, twiddles []fft.Complex[T], inverse bool) {
	fourS := 4 * s
	for o := 0; o < n; o += fourS {
		for k := 0; k < s; k++ {
			w1, w2, w3 := twiddles[3*k], twiddles[3*k+1], twiddles[3*k+2]
			i0, i1, i2, i3 := o+k, o+k+s, o+k+2*s, o+k+3*s

			a0 := x[i0]
			a1 := x[i1].Mul(w1)
			a2 := x[i2].Mul(w2)
			a3 := x[i3].Mul(w3)

			t0, t1 := a0.Add(a2), a0.Sub(a2)
			t2, t3raw := a1.Add(a3), a1.Sub(a3)

			var t3 fft.Complex[T]
			if inverse {
				t3 = t3raw.MulI()
			} else {
				t3 = t3raw.MulNegI()
			}

			x[i0] = t0.Add(t2)
			x[i2] = t0.Sub(t2)
			x[i1] = t1.Add(t3)
			x[i3] = t1.Sub(t3)
		}
	}
}
