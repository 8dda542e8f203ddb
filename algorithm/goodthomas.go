package algorithm

import fft "github.com/andewx/spectral"

// GoodThomas computes the FFT of size n = w*h for coprime w and h via
// the prime-factor algorithm: a CRT-derived index permutation on input
// and output replaces MixedRadix's per-element twiddle multiply
// entirely, since no common factor means no cross term survives.
type GoodThomas[T fft.Float] struct {
	w, h           int
	inverse        bool
	innerW, innerH fft.Fft[T]
	inputMap       []int
	outputMap      []int
}

// NewGoodThomas builds the FFT of size innerW.Len()*innerH.Len() from
// two same-direction, coprime-length inner plans. It panics with a
// *fft.DirectionMismatchError if the inner plans disagree on direction,
// or a *fft.FactorizationError if their lengths are not coprime.
func NewGoodThomas[T fft.Float](innerW, innerH fft.Fft[T]) *GoodThomas[T] {
	fft.VerifyDirection("GoodThomas", innerW, innerH)
	w, h := innerW.Len(), innerH.Len()
	n := w * h

	g, wInv64, hInv64 := fft.ExtendedEuclidean(int64(w), int64(h))
	if g != 1 {
		panic(&fft.FactorizationError{Context: "GoodThomas: w and h must be coprime", N: n})
	}
	if wInv64 < 0 {
		wInv64 += int64(h)
	}
	if hInv64 < 0 {
		hInv64 += int64(w)
	}
	wInv, hInv := int(wInv64), int(hInv64)

	inputMap := make([]int, n)
	for i := 0; i < n; i++ {
		x, y := i%w, i/w
		inputMap[i] = (x*h + y*w) % n
	}
	outputMap := make([]int, n)
	for i := 0; i < n; i++ {
		x, y := i/h, i%h
		outputMap[i] = (x*h*hInv + y*w*wInv) % n
	}

	return &GoodThomas[T]{
		w: w, h: h,
		inverse:   innerW.IsInverse(),
		innerW:    innerW,
		innerH:    innerH,
		inputMap:  inputMap,
		outputMap: outputMap,
	}
}

func (gt *GoodThomas[T]) Len() int        { return gt.w * gt.h }
func (gt *GoodThomas[T]) IsInverse() bool { return gt.inverse }

func (gt *GoodThomas[T]) Process(input, output []fft.Complex[T]) {
	n := gt.w * gt.h
	fft.VerifyLength(input, output, "GoodThomas", n)
	gt.block(input, output)
}

func (gt *GoodThomas[T]) ProcessMulti(input, output []fft.Complex[T]) {
	n := gt.w * gt.h
	fft.VerifyLengthDivisible(input, output, "GoodThomas", n)
	for base := 0; base < len(input); base += n {
		gt.block(input[base:base+n], output[base:base+n])
	}
}

func (gt *GoodThomas[T]) block(input, output []fft.Complex[T]) {
	w, h := gt.w, gt.h

	fft.PermuteInto(output, input, gt.inputMap)
	gt.innerW.ProcessMulti(output, input)
	fft.Transpose(w, h, input, output)
	gt.innerH.ProcessMulti(output, input)
	for i, idx := range gt.outputMap {
		output[idx] = input[i]
	}
}
