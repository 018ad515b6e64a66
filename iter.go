package times

import "iter"

// All returns an iterator over the index-number pairs of the range in ascending order.
//
// Breaking out of the range loop has the same effect as calling Exit in Do.
// An unbounded range yields values until the loop breaks.
func (r Range) All() iter.Seq2[int, int] {
	return r.seq2(forward)
}

// Backward returns an iterator over the index-number pairs of the range in descending order.
// Ranging over it panics with ErrUnboundedReverse when the range is unbounded.
func (r Range) Backward() iter.Seq2[int, int] {
	return r.seq2(reverse)
}

// Numbers returns an iterator over the numbers of the range in ascending order.
func (r Range) Numbers() iter.Seq[int] {
	return func(yield func(int) bool) {
		r.traverse(forward, func(index int, exit Exit) {
			if !yield(index + 1) {
				exit()
			}
		})
	}
}

func (r Range) seq2(dir direction) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		r.traverse(dir, func(index int, exit Exit) {
			if !yield(index, index+1) {
				exit()
			}
		})
	}
}
