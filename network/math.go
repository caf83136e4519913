package network

import "golang.org/x/exp/constraints"

// Gcd returns the greatest common divisor of a and b, never negative.
func Gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Lcm returns the least common multiple of a and b; 0 if either is 0.
func Lcm[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / Gcd(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}
