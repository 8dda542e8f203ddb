package algorithm

import fft "github.com/andewx/spectral"

// fixedButterfly is a direct, precomputed-matrix DFT for a small fixed
// size n: table[j*n+k] holds the n-th root of unity raised to j*k, so
// that Process degenerates to output[k] = sum_j input[j]*table[j*n+k].
// Every hardcoded butterfly size (2, 3, 4, 5, 6, 7, 8, 16, 32) and
// Radix4's variable base case share this implementation; what varies is
// only n and the precomputed table, computed once at construction so
// that Process never touches trigonometric functions.
type fixedButterfly[T fft.Float] struct {
	n       int
	inverse bool
	table   []fft.Complex[T]
}

func newFixedButterfly[T fft.Float](n int, inverse bool) *fixedButterfly[T] {
	table := make([]fft.Complex[T], n*n)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			table[j*n+k] = fft.Twiddle[T](j*k, n, inverse)
		}
	}
	return &fixedButterfly[T]{n: n, inverse: inverse, table: table}
}

func (b *fixedButterfly[T]) Len() int        { return b.n }
func (b *fixedButterfly[T]) IsInverse() bool { return b.inverse }

func (b *fixedButterfly[T]) Process(input, output []fft.Complex[T]) {
	fft.VerifyLength(input, output, "butterfly", b.n)
	b.block(input, output)
}

func (b *fixedButterfly[T]) ProcessMulti(input, output []fft.Complex[T]) {
	fft.VerifyLengthDivisible(input, output, "butterfly", b.n)
	n := b.n
	for base := 0; base < len(input); base += n {
		b.block(input[base:base+n], output[base:base+n])
	}
}

func (b *fixedButterfly[T]) block(input, output []fft.Complex[T]) {
	n := b.n
	for k := 0; k < n; k++ {
		var sum fft.Complex[T]
		for j := 0; j < n; j++ {
			sum = sum.Add(input[j].Mul(b.table[j*n+k]))
		}
		output[k] = sum
	}
}

// Butterfly2 is the hardcoded 2-point DFT.
type Butterfly2[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly2 builds the 2-point DFT for the given direction.
func NewButterfly2[T fft.Float](inverse bool) *Butterfly2[T] {
	return &Butterfly2[T]{newFixedButterfly[T](2, inverse)}
}

// Butterfly3 is the hardcoded 3-point DFT.
type Butterfly3[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly3 builds the 3-point DFT for the given direction.
func NewButterfly3[T fft.Float](inverse bool) *Butterfly3[T] {
	return &Butterfly3[T]{newFixedButterfly[T](3, inverse)}
}

// Butterfly4 is the hardcoded 4-point DFT.
type Butterfly4[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly4 builds the 4-point DFT for the given direction.
func NewButterfly4[T fft.Float](inverse bool) *Butterfly4[T] {
	return &Butterfly4[T]{newFixedButterfly[T](4, inverse)}
}

// Butterfly5 is the hardcoded 5-point DFT.
type Butterfly5[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly5 builds the 5-point DFT for the given direction.
func NewButterfly5[T fft.Float](inverse bool) *Butterfly5[T] {
	return &Butterfly5[T]{newFixedButterfly[T](5, inverse)}
}

// Butterfly6 is the hardcoded 6-point DFT.
type Butterfly6[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly6 builds the 6-point DFT for the given direction.
func NewButterfly6[T fft.Float](inverse bool) *Butterfly6[T] {
	return &Butterfly6[T]{newFixedButterfly[T](6, inverse)}
}

// Butterfly7 is the hardcoded 7-point DFT.
type Butterfly7[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly7 builds the 7-point DFT for the given direction.
func NewButterfly7[T fft.Float](inverse bool) *Butterfly7[T] {
	return &Butterfly7[T]{newFixedButterfly[T](7, inverse)}
}

// Butterfly8 is the hardcoded 8-point DFT.
type Butterfly8[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly8 builds the 8-point DFT for the given direction.
func NewButterfly8[T fft.Float](inverse bool) *Butterfly8[T] {
	return &Butterfly8[T]{newFixedButterfly[T](8, inverse)}
}

// Butterfly16 is the hardcoded 16-point DFT.
type Butterfly16[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly16 builds the 16-point DFT for the given direction.
func NewButterfly16[T fft.Float](inverse bool) *Butterfly16[T] {
	return &Butterfly16[T]{newFixedButterfly[T](16, inverse)}
}

// Butterfly32 is the hardcoded 32-point DFT.
type Butterfly32[T fft.Float] struct{ *fixedButterfly[T] }

// NewButterfly32 builds the 32-point DFT for the given direction.
func NewButterfly32[T fft.Float](inverse bool) *Butterfly32[T] {
	return &Butterfly32[T]{newFixedButterfly[T](32, inverse)}
}
