// Package algorithm holds the concrete transform kernels a Planner
// wires together: fixed-size butterflies, the naive O(n^2) DFT, and the
// composite Radix4, MixedRadix, GoodThomas, Bluestein and Rader
// algorithms. None of them is constructed directly by ordinary callers;
// the root package's Planner selects and assembles them.
package algorithm

import fft "github.com/andewx/spectral"

// Identity is the trivial size-1 plan: every transform of a single
// sample is its own DFT. The planner returns one for n == 1 rather than
// falling through to a butterfly or Radix4 with an empty combine stage.
type Identity[T fft.Float] struct {
	inverse bool
}

// NewIdentity returns the size-1 plan for the given direction.
func NewIdentity[T fft.Float](inverse bool) *Identity[T] {
	return &Identity[T]{inverse: inverse}
}

func (id *Identity[T]) Len() int        { return 1 }
func (id *Identity[T]) IsInverse() bool { return id.inverse }

func (id *Identity[T]) Process(input, output []fft.Complex[T]) {
	fft.VerifyLength(input, output, "Identity", 1)
	output[0] = input[0]
}

func (id *Identity[T]) ProcessMulti(input, output []fft.Complex[T]) {
	fft.VerifyLengthDivisible(input, output, "Identity", 1)
	copy(output, input)
}
