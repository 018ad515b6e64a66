package times

// Map calls fn for every number from 1 to N and collects the returned values in visiting order.
// fn can read the values collected so far through results.
// When fn calls exit, its own value is still collected, but no further numbers are visited.
func Map[T any](r Range, fn func(number, index int, results []T, exit Exit) T) []T {
	return mapping(r, forward, fn)
}

// ReverseMap is Map in descending order.
// The results are not re-sorted, so the value of N comes first.
func ReverseMap[T any](r Range, fn func(number, index int, results []T, exit Exit) T) []T {
	return mapping(r, reverse, fn)
}

func mapping[T any](r Range, dir direction, fn func(number, index int, results []T, exit Exit) T) []T {
	var results []T
	r.traverse(dir, func(index int, exit Exit) {
		results = append(results, fn(index+1, index, clip(results), exit))
	})
	return results
}

// Reduce folds the numbers from 1 to N into an accumulator, starting with initial.
// When fn calls exit, the value it returned is the final result.
func Reduce[A any](r Range, fn func(acc A, number, index int, exit Exit) A, initial A) A {
	return reduce(r, forward, fn, initial)
}

// ReverseReduce is Reduce in descending order.
func ReverseReduce[A any](r Range, fn func(acc A, number, index int, exit Exit) A, initial A) A {
	return reduce(r, reverse, fn, initial)
}

func reduce[A any](r Range, dir direction, fn func(acc A, number, index int, exit Exit) A, initial A) A {
	var acc = initial
	r.traverse(dir, func(index int, exit Exit) {
		acc = fn(acc, index+1, index, exit)
	})
	return acc
}
