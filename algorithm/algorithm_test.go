package algorithm

import (
	"math"
	"math/rand"
	"testing"

	fft "github.com/andewx/spectral"
)

func randComplex(n int) []fft.Complex[float64] {
	x := make([]fft.Complex[float64], n)
	for i := range x {
		x[i] = fft.Complex[float64]{Re: rand.NormFloat64(), Im: rand.NormFloat64()}
	}
	return x
}

func copyComplex(x []fft.Complex[float64]) []fft.Complex[float64] {
	y := make([]fft.Complex[float64], len(x))
	copy(y, x)
	return y
}

func maxAbsDiff(a, b []fft.Complex[float64]) float64 {
	var max float64
	for i := range a {
		d := a[i].Sub(b[i]).Abs()
		if d > max {
			max = d
		}
	}
	return max
}

func checkAgainstDFT(t *testing.T, name string, plan fft.Fft[float64]) {
	t.Helper()
	n := plan.Len()
	x := randComplex(n)
	want := make([]fft.Complex[float64], n)
	New[float64](n, plan.IsInverse()).Process(copyComplex(x), want)

	got := make([]fft.Complex[float64], n)
	plan.Process(copyComplex(x), got)

	if e := maxAbsDiff(want, got); e > 1e-9 {
		t.Errorf("%s (n=%d): disagrees with naive DFT, max diff %v", name, n, e)
	}
}

func TestIdentity(t *testing.T) {
	for _, inverse := range []bool{false, true} {
		id := NewIdentity[float64](inverse)
		checkAgainstDFT(t, "Identity", id)
	}
}

func TestButterflies(t *testing.T) {
	sizes := []int{2, 3, 4, 5, 6, 7, 8, 16, 32}
	for _, n := range sizes {
		for _, inverse := range []bool{false, true} {
			var p fft.Fft[float64]
			switch n {
			case 2:
				p = NewButterfly2[float64](inverse)
			case 3:
				p = NewButterfly3[float64](inverse)
			case 4:
				p = NewButterfly4[float64](inverse)
			case 5:
				p = NewButterfly5[float64](inverse)
			case 6:
				p = NewButterfly6[float64](inverse)
			case 7:
				p = NewButterfly7[float64](inverse)
			case 8:
				p = NewButterfly8[float64](inverse)
			case 16:
				p = NewButterfly16[float64](inverse)
			case 32:
				p = NewButterfly32[float64](inverse)
			}
			checkAgainstDFT(t, "Butterfly", p)
		}
	}
}

func TestButterflyProcessMulti(t *testing.T) {
	b := NewButterfly4[float64](false)
	x := randComplex(12)
	want := make([]fft.Complex[float64], 12)
	for base := 0; base < 12; base += 4 {
		b.Process(copyComplex(x[base:base+4]), want[base:base+4])
	}
	got := make([]fft.Complex[float64], 12)
	b.ProcessMulti(copyComplex(x), got)
	if e := maxAbsDiff(want, got); e > 1e-9 {
		t.Errorf("ProcessMulti disagrees with repeated Process, max diff %v", e)
	}
}

func TestDFT(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 11, 13} {
		for _, inverse := range []bool{false, true} {
			d := New[float64](n, inverse)
			if d.Len() != n {
				t.Errorf("DFT(%d).Len() = %d", n, d.Len())
			}
			if d.IsInverse() != inverse {
				t.Errorf("DFT(%d).IsInverse() = %v, want %v", n, d.IsInverse(), inverse)
			}
		}
	}
}

func TestRadix4(t *testing.T) {
	for n := 1; n <= 65536; n <<= 1 {
		for _, inverse := range []bool{false, true} {
			r := NewRadix4[float64](n, inverse)
			checkAgainstDFT(t, "Radix4", r)
		}
	}
}

func TestRadix4RejectsNonPow2(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("NewRadix4(17) did not panic")
		}
		if _, ok := r.(*fft.FactorizationError); !ok {
			t.Errorf("NewRadix4(17) panicked with %T, want *fft.FactorizationError", r)
		}
	}()
	NewRadix4[float64](17, false)
}

func TestMixedRadixSharedFactors(t *testing.T) {
	cases := [][2]int{{4, 6}, {6, 9}, {8, 12}, {9, 12}, {2, 2}}
	for _, c := range cases {
		w, h := c[0], c[1]
		for _, inverse := range []bool{false, true} {
			innerW := New[float64](w, inverse)
			innerH := New[float64](h, inverse)
			m := NewMixedRadix[float64](innerW, innerH)
			if m.Len() != w*h {
				t.Errorf("MixedRadix(%d,%d).Len() = %d, want %d", w, h, m.Len(), w*h)
			}
			checkAgainstDFT(t, "MixedRadix", m)
		}
	}
}

func TestMixedRadixRejectsDirectionMismatch(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("NewMixedRadix with mismatched directions did not panic")
		}
		if _, ok := r.(*fft.DirectionMismatchError); !ok {
			t.Errorf("panicked with %T, want *fft.DirectionMismatchError", r)
		}
	}()
	NewMixedRadix[float64](New[float64](4, false), New[float64](6, true))
}

func TestGoodThomasCoprimePairs(t *testing.T) {
	for w := 2; w <= 20; w++ {
		for h := w + 1; h <= 20; h++ {
			if gcd(w, h) != 1 {
				continue
			}
			for _, inverse := range []bool{false, true} {
				innerW := New[float64](w, inverse)
				innerH := New[float64](h, inverse)
				gt := NewGoodThomas[float64](innerW, innerH)
				checkAgainstDFT(t, "GoodThomas", gt)
			}
		}
	}
}

func TestGoodThomasUnitFactor(t *testing.T) {
	// w or h == 1 is always coprime with the other factor; the size-1
	// side resolves to Identity. Covers (1,10), (10,1) and (1,1).
	cases := [][2]int{{1, 10}, {10, 1}, {1, 1}}
	for _, c := range cases {
		w, h := c[0], c[1]
		for _, inverse := range []bool{false, true} {
			innerW := innerPlanOf(w, inverse)
			innerH := innerPlanOf(h, inverse)
			gt := NewGoodThomas[float64](innerW, innerH)
			if gt.Len() != w*h {
				t.Errorf("GoodThomas(%d,%d).Len() = %d, want %d", w, h, gt.Len(), w*h)
			}
			checkAgainstDFT(t, "GoodThomas", gt)
		}
	}
}

// innerPlanOf returns the Identity plan for size 1 (as the root planner
// does for n == 1) and the naive DFT otherwise.
func innerPlanOf(n int, inverse bool) fft.Fft[float64] {
	if n == 1 {
		return NewIdentity[float64](inverse)
	}
	return New[float64](n, inverse)
}

func TestGoodThomasRejectsNonCoprime(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("NewGoodThomas(4,6) did not panic")
		}
		if _, ok := r.(*fft.FactorizationError); !ok {
			t.Errorf("panicked with %T, want *fft.FactorizationError", r)
		}
	}()
	NewGoodThomas[float64](New[float64](4, false), New[float64](6, false))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestBluesteinPrimesAndComposites(t *testing.T) {
	sizes := []int{5, 17, 257, 1009, 100, 1000}
	for _, n := range sizes {
		for _, inverse := range []bool{false, true} {
			m := nextPow2(2*n - 1)
			fwd := New[float64](m, false)
			inv := New[float64](m, true)
			b := NewBluestein[float64](n, inverse, fwd, inv)
			checkAgainstDFT(t, "Bluestein", b)
		}
	}
}

func TestRaderPrimes(t *testing.T) {
	primes := []int{5, 17, 257, 1009}
	for _, p := range primes {
		for _, inverse := range []bool{false, true} {
			m := p - 1
			fwd := fft.Plan[float64](m, false)
			inv := fft.Plan[float64](m, true)
			r := NewRader[float64](p, inverse, fwd, inv)
			checkAgainstDFT(t, "Rader", r)
		}
	}
}

func TestRaderRejectsNonPrime(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("NewRader(15) did not panic")
		}
		if _, ok := r.(*fft.FactorizationError); !ok {
			t.Errorf("panicked with %T, want *fft.FactorizationError", r)
		}
	}()
	fwd := New[float64](14, false)
	inv := New[float64](14, true)
	NewRader[float64](15, false, fwd, inv)
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func TestRadix4BaseSizeParity(t *testing.T) {
	// 65537 is prime, skip; exercise base-size selection indirectly via
	// Radix4 construction across every pow2 exponent up to 20.
	for e := 0; e <= 20; e++ {
		n := 1 << uint(e)
		r := NewRadix4[float64](n, false)
		if r.Len() != n {
			t.Errorf("Radix4(2^%d).Len() = %d, want %d", e, r.Len(), n)
		}
	}
}

func TestComplexAbsConsistentWithHypot(t *testing.T) {
	c := fft.Complex[float64]{Re: 3, Im: 4}
	if math.Abs(c.Abs()-5) > 1e-12 {
		t.Errorf("Abs() = %v, want 5", c.Abs())
	}
}
