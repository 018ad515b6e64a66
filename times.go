// Package times provides a fluent, reusable iteration over the positive numbers from 1 to N.
//
// # Summary
//
// A Range is bound to a count at construction and never changes afterwards.
// Every operation walks the range from the beginning,
// either in forward (1..N) or in reverse (N..1) order,
// so the same Range can be traversed as many times as you like.
//
// Callbacks receive the current 1-based number, the 0-based index and an Exit trigger.
// Calling the Exit trigger stops the traversal after the current callback returns.
//
//	times.Must(3).Do(func(n, i int, exit times.Exit) {
//		fmt.Println(n)
//	})
//
// A Range may also be unbounded (see Infinity).
// Forward traversal of an unbounded range only stops when Exit is called,
// or when a TakeWhile/TakeUntil predicate ends it.
package times

import "math"

// Infinity is the count of an unbounded Range.
const Infinity = math.MaxInt

// New creates a Range that walks the numbers from 1 up to count.
// It returns ErrInvalidCount when count is not greater than zero.
func New(count int) (Range, error) {
	if count <= 0 {
		return Range{}, ErrInvalidCount.F("count=%d", count)
	}
	return Range{count: count}, nil
}

// Must is the panicking variant of New,
// meant for fluent chains where the count is known to be valid.
func Must(count int) Range {
	r, err := New(count)
	if err != nil {
		panic(err)
	}
	return r
}

// Infinite returns an unbounded Range.
func Infinite() Range {
	return Range{count: Infinity}
}

// Times is the fire-and-forget form of New(count).Do(fn).
// The visitor is not called when the count is invalid, and ErrInvalidCount is returned.
func Times(count int, fn Visitor) error {
	r, err := New(count)
	if err != nil {
		return err
	}
	r.Do(fn)
	return nil
}
