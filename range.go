package times

import "strconv"

// Exit stops the ongoing traversal once the current callback has returned.
// Calling it more than once has no further effect.
type Exit func()

// Visitor is called once for every visited number.
type Visitor func(number, index int, exit Exit)

// Predicate decides about the current number.
// selected holds the numbers collected so far by the operation, in visiting order.
type Predicate func(number, index int, selected []int, exit Exit) bool

// Range is an immutable iterator over the numbers from 1 up to its count.
//
// The zero value is an empty range that visits nothing;
// use New, Must or Infinite to make one.
type Range struct {
	count int
}

type direction int

const (
	forward direction = iota
	reverse
)

// Len returns the count of the range and whether the range is bounded.
// The zero Range reports a bounded length of 0.
func (r Range) Len() (int, bool) {
	return r.count, r.count != Infinity
}

// IsUnbounded reports if the range has no last number.
func (r Range) IsUnbounded() bool {
	return r.count == Infinity
}

func (r Range) String() string {
	if r.IsUnbounded() {
		return "times(∞)"
	}
	return "times(" + strconv.Itoa(r.count) + ")"
}

// traverse visits the zero based indexes of the range in the given direction.
// The exit flag belongs to a single traverse call,
// and it is only checked after visit returned.
func (r Range) traverse(dir direction, visit func(index int, exit Exit)) {
	var exited bool
	exit := Exit(func() { exited = true })

	if dir == reverse {
		if r.IsUnbounded() {
			panic(ErrUnboundedReverse)
		}
		for i := r.count - 1; 0 <= i; i-- {
			visit(i, exit)
			if exited {
				return
			}
		}
		return
	}

	for i := 0; i < r.count; i++ {
		visit(i, exit)
		if exited {
			return
		}
	}
}

// Do calls fn with every number from 1 to N.
// It returns the same Range, so multiple Do calls can be chained.
func (r Range) Do(fn Visitor) Range {
	return r.do(forward, fn)
}

// ReverseDo calls fn with every number from N down to 1.
func (r Range) ReverseDo(fn Visitor) Range {
	return r.do(reverse, fn)
}

func (r Range) do(dir direction, fn Visitor) Range {
	r.traverse(dir, func(index int, exit Exit) {
		fn(index+1, index, exit)
	})
	return r
}

// Select collects the numbers for which fn returns true.
// A false result only skips the number, the traversal goes on.
func (r Range) Select(fn Predicate) []int {
	return r.selectNumbers(forward, fn)
}

// ReverseSelect is Select in descending order.
func (r Range) ReverseSelect(fn Predicate) []int {
	return r.selectNumbers(reverse, fn)
}

func (r Range) selectNumbers(dir direction, fn Predicate) []int {
	var selected []int
	r.traverse(dir, func(index int, exit Exit) {
		if fn(index+1, index, clip(selected), exit) {
			selected = append(selected, index+1)
		}
	})
	return selected
}

// TakeWhile collects numbers as long as fn returns true.
// The first false result ends the traversal, and that number is left out.
func (r Range) TakeWhile(fn Predicate) []int {
	return r.takeWhile(forward, fn)
}

// ReverseTakeWhile is TakeWhile in descending order.
func (r Range) ReverseTakeWhile(fn Predicate) []int {
	return r.takeWhile(reverse, fn)
}

func (r Range) takeWhile(dir direction, fn Predicate) []int {
	var taken []int
	r.traverse(dir, func(index int, exit Exit) {
		if !fn(index+1, index, clip(taken), exit) {
			exit()
			return
		}
		taken = append(taken, index+1)
	})
	return taken
}

// TakeUntil collects numbers as long as fn returns false.
// The first true result ends the traversal, and that number is left out.
func (r Range) TakeUntil(fn Predicate) []int {
	return r.takeWhile(forward, not(fn))
}

// ReverseTakeUntil is TakeUntil in descending order.
func (r Range) ReverseTakeUntil(fn Predicate) []int {
	return r.takeWhile(reverse, not(fn))
}

// not negates the predicate's result, the exit trigger is passed through as is.
func not(fn Predicate) Predicate {
	return func(number, index int, selected []int, exit Exit) bool {
		return !fn(number, index, selected, exit)
	}
}

// clip limits the capacity to the length,
// so a callback that appends to the results it received can't overwrite the collected values.
func clip[T any](vs []T) []T {
	return vs[:len(vs):len(vs)]
}
