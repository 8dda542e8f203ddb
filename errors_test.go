package fft

import (
	"testing"
)

func TestInputSizeError(t *testing.T) {
	e := &InputSizeError{"asdf", "qwer", 5}
	expect := "Size of asdf must be qwer, is: 5"
	got := e.Error()
	if expect != got {
		t.Errorf("InputSizeError.Error(), expected %s, got %s", expect, got)
	}
}

func TestDirectionMismatchError(t *testing.T) {
	e := &DirectionMismatchError{Context: "GoodThomas"}
	expect := "GoodThomas: inner plans must all share the same direction"
	if got := e.Error(); got != expect {
		t.Errorf("DirectionMismatchError.Error(), expected %s, got %s", expect, got)
	}
}

func TestFactorizationError(t *testing.T) {
	e := &FactorizationError{Context: "Radix4", N: 17}
	expect := "Radix4: invalid factorization for n=17"
	if got := e.Error(); got != expect {
		t.Errorf("FactorizationError.Error(), expected %s, got %s", expect, got)
	}
}

func TestPlanFFTRejectsNonPositiveSize(t *testing.T) {
	p := NewPlanner[float64](false)
	for _, n := range []int{0, -1, -100} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("PlanFFT(%d) did not panic", n)
					return
				}
				if _, ok := r.(*InputSizeError); !ok {
					t.Errorf("PlanFFT(%d) panicked with %T, want *InputSizeError", n, r)
				}
			}()
			p.PlanFFT(n)
		}()
	}
}
