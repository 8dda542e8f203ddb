package fft

import (
	"sort"
	"sync"

	"github.com/andewx/spectral/algorithm"
)

// butterflySizes lists the transform lengths implemented as a
// hardcoded, precomputed-matrix DFT rather than composed from smaller
// plans.
var butterflySizes = map[int]bool{
	2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 16: true, 32: true,
}

const largestButterfly = 32

// Planner caches and assembles Fft plans for one fixed direction.
// Plans it returns are immutable after construction and safe to share
// across goroutines: every Process/ProcessMulti call mutates only its
// caller-supplied buffers, never planner or plan state. The planner's
// own mutable cache is guarded by a mutex, since PlanFFT may be called
// concurrently by callers that share a Planner.
type Planner[T Float] struct {
	mu       sync.Mutex
	inverse  bool
	cache    map[int]Fft[T]
	oppCache map[int]Fft[T] // opposite-direction helper plans for Bluestein/Rader kernels
}

// NewPlanner returns a Planner that produces forward transforms if
// inverse is false, inverse transforms if true.
func NewPlanner[T Float](inverse bool) *Planner[T] {
	return &Planner[T]{
		inverse:  inverse,
		cache:    make(map[int]Fft[T]),
		oppCache: make(map[int]Fft[T]),
	}
}

// PlanFFT returns a plan computing the size-n transform in the
// planner's direction, building and caching it if this is the first
// request for that size. It panics with an *InputSizeError if n is not
// positive.
func (p *Planner[T]) PlanFFT(n int) Fft[T] {
	if n <= 0 {
		panic(&InputSizeError{Name: "Planner.PlanFFT n", Expected: "positive", Actual: n})
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.planDirectional(n, p.inverse)
}

// planDirectional returns a cached or freshly built plan of size n in
// the requested direction. Composite algorithms recurse into this with
// the SAME direction as their own (MixedRadix, GoodThomas); Bluestein
// and Rader are the one exception, needing both
// directions of their inner convolution plan regardless of their own.
// Callers must hold p.mu.
func (p *Planner[T]) planDirectional(n int, inverse bool) Fft[T] {
	if inverse == p.inverse {
		if plan, ok := p.cache[n]; ok {
			return plan
		}
		plan := p.build(n, inverse)
		p.cache[n] = plan
		return plan
	}
	if plan, ok := p.oppCache[n]; ok {
		return plan
	}
	plan := p.build(n, inverse)
	p.oppCache[n] = plan
	return plan
}

// build implements the selection rule: identity, hardcoded butterfly,
// power-of-two Radix4, GoodThomas or MixedRadix for a composite
// factorization, and finally Rader or Bluestein for a prime too large
// for any butterfly.
func (p *Planner[T]) build(n int, inverse bool) Fft[T] {
	switch {
	case n == 1:
		return algorithm.NewIdentity[T](inverse)
	case butterflySizes[n]:
		return newButterflyPlan[T](n, inverse)
	case IsPow2(n):
		return algorithm.NewRadix4[T](n, inverse)
	}

	if w, h, coprime, ok := splitFactors(n); ok {
		innerW := p.planDirectional(w, inverse)
		innerH := p.planDirectional(h, inverse)
		if coprime {
			return algorithm.NewGoodThomas[T](innerW, innerH)
		}
		return algorithm.NewMixedRadix[T](innerW, innerH)
	}

	// n is prime and larger than the largest butterfly.
	if IsSmooth(n-1, 100) {
		fwd := p.planDirectional(n-1, false)
		inv := p.planDirectional(n-1, true)
		return algorithm.NewRader[T](n, inverse, fwd, inv)
	}
	m := NextPow2(2*n - 1)
	fwd := p.planDirectional(m, false)
	inv := p.planDirectional(m, true)
	return algorithm.NewBluestein[T](n, inverse, fwd, inv)
}

func newButterflyPlan[T Float](n int, inverse bool) Fft[T] {
	switch n {
	case 2:
		return algorithm.NewButterfly2[T](inverse)
	case 3:
		return algorithm.NewButterfly3[T](inverse)
	case 4:
		return algorithm.NewButterfly4[T](inverse)
	case 5:
		return algorithm.NewButterfly5[T](inverse)
	case 6:
		return algorithm.NewButterfly6[T](inverse)
	case 7:
		return algorithm.NewButterfly7[T](inverse)
	case 8:
		return algorithm.NewButterfly8[T](inverse)
	case 16:
		return algorithm.NewButterfly16[T](inverse)
	case 32:
		return algorithm.NewButterfly32[T](inverse)
	default:
		panic(&FactorizationError{Context: "newButterflyPlan: unsupported size", N: n})
	}
}

// splitFactors finds a nontrivial factorization n = w*h with w,h > 1,
// preferring one where w and h are coprime. Distinct prime-power
// components are always coprime, so whenever n has at least two
// distinct prime factors it greedily bins their prime-power components
// into two balanced, automatically coprime groups. When n is a prime
// power p^e with e >= 2, no coprime split exists and it instead peels
// off one factor of p for MixedRadix. ok is false only when n itself is
// prime, i.e. has no nontrivial factorization at all.
func splitFactors(n int) (w, h int, coprime, ok bool) {
	primes, exps := Factorize(n)
	if len(primes) == 1 && exps[0] == 1 {
		return 0, 0, false, false
	}
	if len(primes) >= 2 {
		components := make([]int, len(primes))
		for i := range primes {
			c := 1
			for e := 0; e < exps[i]; e++ {
				c *= primes[i]
			}
			components[i] = c
		}
		sort.Sort(sort.Reverse(sort.IntSlice(components)))
		w, h = 1, 1
		for _, c := range components {
			if w <= h {
				w *= c
			} else {
				h *= c
			}
		}
		return w, h, true, true
	}
	p := primes[0]
	return p, n / p, false, true
}

// Plan is a convenience entry point for one-off transforms: it builds
// a throwaway Planner and returns the size-n plan for the requested
// direction. Callers that plan many sizes should construct and reuse a
// Planner directly instead, to share its cache.
func Plan[T Float](n int, inverse bool) Fft[T] {
	return NewPlanner[T](inverse).PlanFFT(n)
}
