// Package hello provides the fixture's library surface: a fixed greeting
// and trivial integer arithmetic. The functions are pure and share no
// state, so the external harness can call them in any order and any
// number of times with identical results.
package hello

// Greeting is the fixed message the fixture prints. The harness matches
// it byte-for-byte, so it must never change.
const Greeting = "Hello from rch test fixture!"

// GetGreeting returns the fixture greeting. The returned string is a
// compile-time constant and remains valid for the life of the process.
func GetGreeting() string {
	return Greeting
}

// Add returns the sum of a and b. Overflow wraps per Go's two's-complement
// integer semantics.
func Add(a, b int) int {
	return a + b
}

// Multiply returns the product of a and b, with the same wrapping
// overflow behavior as Add.
func Multiply(a, b int) int {
	return a * b
}

// Factorial returns n! as a uint64. Results are exact up to n == 20;
// beyond that the product wraps.
func Factorial(n uint) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(n) * Factorial(n-1)
}
