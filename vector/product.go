package vector

import "golang.org/x/exp/constraints"

// Number is the set of element types Multiply and Dot accept: every integer,
// floating-point and complex type, including named types built on them.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Multiply returns a new slice holding the element-wise products of a and b:
// c[i] = a[i] * b[i].
//
// The slices don't have to be the same length; only the first
// min(len(a), len(b)) elements are multiplied and the rest of the longer
// slice is ignored. The result is empty (not nil) when either input is
// empty. Neither input is modified.
//
// Example:
//
//	a := []int{0, 2, 4, 6, 8}
//	b := []int{0, 4, 8}
//	c := Multiply(a, b) // [0 8 32]
func Multiply[T Number](a, b []T) []T {
	n := min(len(a), len(b))
	c := make([]T, n)
	for i := 0; i < n; i++ {
		c[i] = a[i] * b[i]
	}
	return c
}

// Dot returns the dot product of a and b: the sum of a[i] * b[i] over the
// first min(len(a), len(b)) elements, accumulated left to right.
// Returns 0 if either slice is empty.
//
// Example:
//
//	a := []int{0, 2, 4, 6, 8}
//	b := []int{0, 4, 8, 12, 16}
//	d := Dot(a, b) // 240
func Dot[T Number](a, b []T) T {
	n := min(len(a), len(b))
	var sum T
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
