package fft

import (
	"sync"
	"testing"
)

func TestPlannerCachesPlans(t *testing.T) {
	p := NewPlanner[float64](false)
	a := p.PlanFFT(128)
	b := p.PlanFFT(128)
	if a != b {
		t.Errorf("PlanFFT(128) returned different plans on repeated calls")
	}
}

func TestPlannerDirection(t *testing.T) {
	fwd := NewPlanner[float64](false)
	inv := NewPlanner[float64](true)
	for _, n := range []int{1, 4, 5, 17, 100} {
		if fwd.PlanFFT(n).IsInverse() {
			t.Errorf("forward planner returned inverse plan for n=%d", n)
		}
		if !inv.PlanFFT(n).IsInverse() {
			t.Errorf("inverse planner returned forward plan for n=%d", n)
		}
	}
}

func TestPlannerConcurrentPlanFFT(t *testing.T) {
	p := NewPlanner[float64](false)
	var wg sync.WaitGroup
	sizes := []int{2, 3, 4, 5, 7, 8, 16, 17, 32, 64, 100, 257}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range sizes {
				plan := p.PlanFFT(n)
				in := make([]Complex[float64], n)
				out := make([]Complex[float64], n)
				in[0] = Complex[float64]{Re: 1}
				plan.Process(in, out)
			}
		}()
	}
	wg.Wait()
}

func TestSplitFactors(t *testing.T) {
	cases := []struct {
		n               int
		wantCoprime, ok bool
	}{
		{17, false, false},  // prime
		{15, true, true},    // 3*5, coprime
		{35, true, true},    // 5*7, coprime
		{12, true, true},    // 2^2*3: two distinct primes, always coprime-splittable
		{8, false, true},    // 2^3, single prime power: peel off one factor
		{2 * 3 * 5, true, true},
	}
	for _, c := range cases {
		w, h, coprime, ok := splitFactors(c.n)
		if ok != c.ok {
			t.Errorf("splitFactors(%d) ok=%v, want %v", c.n, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if w*h != c.n {
			t.Errorf("splitFactors(%d) = (%d,%d), product %d != %d", c.n, w, h, w*h, c.n)
		}
		if coprime != c.wantCoprime {
			t.Errorf("splitFactors(%d) coprime=%v, want %v", c.n, coprime, c.wantCoprime)
		}
		if coprime && GCD(w, h) != 1 {
			t.Errorf("splitFactors(%d) claimed coprime but gcd(%d,%d)=%d", c.n, w, h, GCD(w, h))
		}
	}
}

func TestPlanRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Plan[float64](%d, false) did not panic", n)
				}
			}()
			Plan[float64](n, false)
		}()
	}
}
