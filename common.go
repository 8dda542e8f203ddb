package fft

import "strconv"

// Length reports the size of the transform a plan node computes.
type Length interface {
	Len() int
}

// Direction reports whether a plan node computes a forward or inverse
// transform.
type Direction interface {
	IsInverse() bool
}

// Fft is the capability set every planned algorithm satisfies: report
// its size and direction, transform one block into an output buffer
// (using the input buffer as scratch), or transform any positive multiple of
// blocks back to back. It is the umbrella trait referred to throughout
// the design as a "plan node".
type Fft[T Float] interface {
	Length
	Direction

	// Process transforms one block of Len() elements. input is used as
	// scratch space; the answer is placed in output. Both buffers must
	// have length Len(), or Process panics.
	Process(input, output []Complex[T])

	// ProcessMulti divides input and output into chunks of Len()
	// elements and transforms each chunk independently. Both buffers
	// must share a length that is a positive multiple of Len(), or
	// ProcessMulti panics.
	ProcessMulti(input, output []Complex[T])
}

// VerifyLength panics with an *InputSizeError if input or output does
// not have exactly the expected length. Every algorithm's Process
// method calls this first.
func VerifyLength[T Float](input, output []Complex[T], name string, expected int) {
	if len(input) != expected {
		panic(&InputSizeError{Name: name + " input", Expected: strconv.Itoa(expected), Actual: len(input)})
	}
	if len(output) != expected {
		panic(&InputSizeError{Name: name + " output", Expected: strconv.Itoa(expected), Actual: len(output)})
	}
}

// VerifyLengthDivisible panics with an *InputSizeError unless input and
// output have equal length and that length is a positive multiple of
// expected. Every algorithm's ProcessMulti method calls this first.
func VerifyLengthDivisible[T Float](input, output []Complex[T], name string, expected int) {
	if len(input) != len(output) {
		panic(&InputSizeError{Name: name + " output", Expected: "equal to input length " + strconv.Itoa(len(input)), Actual: len(output)})
	}
	if len(input) == 0 || len(input)%expected != 0 {
		panic(&InputSizeError{Name: name + " input", Expected: "a positive multiple of " + strconv.Itoa(expected), Actual: len(input)})
	}
}

// VerifyDirection panics with a *DirectionMismatchError unless both
// inner plans agree on forward/inverse direction. Every composite
// algorithm's constructor calls this before wiring its inner plans.
func VerifyDirection(context string, a, b Direction) {
	if a.IsInverse() != b.IsInverse() {
		panic(&DirectionMismatchError{Context: context})
	}
}
