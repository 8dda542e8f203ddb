package fft

// GCD returns the greatest common divisor of a and b (both assumed
// non-negative).
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedEuclidean returns (g, x, y) such that a*x + b*y == g ==
// gcd(a, b). GoodThomas uses it to find the multiplicative inverse of
// one coprime factor modulo the other.
func ExtendedEuclidean(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := ExtendedEuclidean(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// ModInverse returns the positive representative of a^-1 mod modulus.
// It panics if a and modulus are not coprime, which should never occur
// for the coprime pairs GoodThomas constructs from.
func ModInverse(a, modulus int64) int64 {
	g, x, _ := ExtendedEuclidean(a, modulus)
	if g != 1 {
		panic(&FactorizationError{Context: "ModInverse: arguments not coprime", N: int(modulus)})
	}
	x %= modulus
	if x < 0 {
		x += modulus
	}
	return x
}

// PrimeFactors returns the distinct prime factors of n in increasing
// order, without multiplicity.
func PrimeFactors(n int) []int {
	var factors []int
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Factorize returns the prime factorization of n as parallel slices of
// primes and their exponents.
func Factorize(n int) (primes, exponents []int) {
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			e := 0
			for n%p == 0 {
				n /= p
				e++
			}
			primes = append(primes, p)
			exponents = append(exponents, e)
		}
	}
	if n > 1 {
		primes = append(primes, n)
		exponents = append(exponents, 1)
	}
	return primes, exponents
}

// IsPrime reports whether n is prime, by trial division. Adequate for
// the sizes this library plans: it is only ever asked about n itself
// or a cofactor thereof, not about arbitrary huge numbers on a hot
// path.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for p := 3; p*p <= n; p += 2 {
		if n%p == 0 {
			return false
		}
	}
	return true
}

// IsSmooth reports whether every prime factor of n is at most bound.
// The planner uses this to decide whether Rader's inner convolution
// length (p-1) is cheap to plan recursively, versus falling back to
// Bluestein.
func IsSmooth(n, bound int) bool {
	if n <= 1 {
		return true
	}
	for _, p := range PrimeFactors(n) {
		if p > bound {
			return false
		}
	}
	return true
}

// PrimitiveRoot finds the smallest primitive root of the prime p: a
// generator g such that {g^0, g^1, ..., g^(p-2)} mod p enumerates
// {1, ..., p-1}. Every prime has one, so this never fails for a true
// prime; it panics if handed a non-prime, a precondition violation by
// the caller (Rader's algorithm).
func PrimitiveRoot(p int64) int64 {
	if p == 2 {
		return 1
	}
	if !IsPrime(int(p)) {
		panic(&FactorizationError{Context: "PrimitiveRoot: argument is not prime", N: int(p)})
	}
	phi := p - 1
	factorPrimes := PrimeFactors(int(phi))
	for g := int64(2); g < p; g++ {
		isRoot := true
		for _, f := range factorPrimes {
			if modPow(g, phi/int64(f), p) == 1 {
				isRoot = false
				break
			}
		}
		if isRoot {
			return g
		}
	}
	panic(&FactorizationError{Context: "PrimitiveRoot: no primitive root found for prime", N: int(p)})
}

// modPow computes base^exp mod modulus via binary exponentiation.
func modPow(base, exp, modulus int64) int64 {
	if modulus == 1 {
		return 0
	}
	result := int64(1)
	base %= modulus
	if base < 0 {
		base += modulus
	}
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % modulus
		}
		exp >>= 1
		base = (base * base) % modulus
	}
	return result
}
