package algorithm

import fft "github.com/andewx/spectral"

// MixedRadix computes the FFT of a composite size n = w*h from two
// inner plans of size w and h that need not be coprime, using the
// classic transpose/FFT/twiddle/transpose/FFT/transpose construction.
// When w and h are coprime, GoodThomas avoids the twiddle multiply
// entirely and is preferred by the planner; MixedRadix is the fallback
// for composite sizes that share factors.
type MixedRadix[T fft.Float] struct {
	w, h      int
	inverse   bool
	innerW    fft.Fft[T]
	innerH    fft.Fft[T]
	twiddles  []fft.Complex[T] // h rows of w: twiddles[i*w+j] = Twiddle(i*j, n, inverse)
}

// NewMixedRadix builds the FFT of size innerW.Len()*innerH.Len() from
// two same-direction inner plans. It panics with a
// *fft.DirectionMismatchError if the inner plans disagree on direction.
func NewMixedRadix[T fft.Float](innerW, innerH fft.Fft[T]) *MixedRadix[T] {
	fft.VerifyDirection("MixedRadix", innerW, innerH)
	w, h := innerW.Len(), innerH.Len()
	n := w * h
	twiddles := make([]fft.Complex[T], n)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			twiddles[i*w+j] = fft.Twiddle[T](i*j, n, innerW.IsInverse())
		}
	}
	return &MixedRadix[T]{
		w: w, h: h,
		inverse:  innerW.IsInverse(),
		innerW:   innerW,
		innerH:   innerH,
		twiddles: twiddles,
	}
}

func (m *MixedRadix[T]) Len() int        { return m.w * m.h }
func (m *MixedRadix[T]) IsInverse() bool { return m.inverse }

func (m *MixedRadix[T]) Process(input, output []fft.Complex[T]) {
	n := m.w * m.h
	fft.VerifyLength(input, output, "MixedRadix", n)
	m.block(input, output)
}

func (m *MixedRadix[T]) ProcessMulti(input, output []fft.Complex[T]) {
	n := m.w * m.h
	fft.VerifyLengthDivisible(input, output, "MixedRadix", n)
	for base := 0; base < len(input); base += n {
		m.block(input[base:base+n], output[base:base+n])
	}
}

func (m *MixedRadix[T]) block(input, output []fft.Complex[T]) {
	w, h := m.w, m.h

	// 1. Transpose w*h (w rows of h... viewed as w rows of h cols) into h*w.
	fft.Transpose(h, w, input, output)
	// 2. h independent size-w inner FFTs.
	m.innerW.ProcessMulti(output, input)
	// 3. Twiddle the h*w matrix in place.
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			idx := i*w + j
			input[idx] = input[idx].Mul(m.twiddles[idx])
		}
	}
	// 4. Transpose h*w into w*h.
	fft.Transpose(w, h, input, output)
	// 5. w independent size-h inner FFTs.
	m.innerH.ProcessMulti(output, input)
	// 6. Transpose w*h into h*w, landing the answer in natural order.
	fft.Transpose(h, w, input, output)
}
