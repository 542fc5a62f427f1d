// Package checked provides overflow-aware arithmetic for signed integers.
// Each helper returns the wrapped result together with ok=false when the
// exact result does not fit in T.
package checked

import "golang.org/x/exp/constraints"

// Add returns a+b.
func Add[T constraints.Signed](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return s, false
	}
	return s, true
}

// Sub returns a-b.
func Sub[T constraints.Signed](a, b T) (T, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return d, false
	}
	return d, true
}

// Mul returns a*b.
func Mul[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	// Negating the minimum value wraps to itself; p/b cannot catch it.
	if a == -1 {
		return p, !(b < 0 && p < 0)
	}
	if b == -1 {
		return p, !(a < 0 && p < 0)
	}
	return p, p/b == a
}
