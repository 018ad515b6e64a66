package times_test

import (
	"fmt"
	"strconv"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/let"

	"go.llib.dev/times"
)

func ExampleMap() {
	labels := times.Map(times.Must(3), func(n, i int, results []string, exit times.Exit) string {
		return "#" + strconv.Itoa(n)
	})
	fmt.Println(labels)
	// Output: [#1 #2 #3]
}

func ExampleReverseMap() {
	doubled := times.ReverseMap(times.Must(5), func(n, i int, results []int, exit times.Exit) int {
		return n * 2
	})
	fmt.Println(doubled)
	// Output: [10 8 6 4 2]
}

func ExampleReduce() {
	sum := times.Reduce(times.Must(5), func(acc, n, i int, exit times.Exit) int {
		return acc + n
	}, 0)
	fmt.Println(sum)
	// Output: 15
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		count   = let.IntB(s, 1, 64)
		subject = testcase.Let(s, func(t *testcase.T) times.Range {
			return times.Must(count.Get(t))
		})
		identity = func(n, _ int, _ []int, _ times.Exit) int { return n }
	)

	s.Test("smoke", func(t *testcase.T) {
		t.Must.Equal([]int{1, 2, 3, 4, 5}, times.Map(times.Must(5), identity))
		t.Must.Equal([]int{5, 4, 3, 2, 1}, times.ReverseMap(times.Must(5), identity))
	})

	s.Then("one result is collected per visited number", func(t *testcase.T) {
		got := times.Map(subject.Get(t), func(n, i int, _ []string, _ times.Exit) string {
			return strconv.Itoa(i)
		})
		t.Must.Equal(count.Get(t), len(got))
		for i, v := range got {
			t.Must.Equal(strconv.Itoa(i), v)
		}
	})

	s.Then("the projection can read the results collected so far", func(t *testcase.T) {
		got := times.Map(subject.Get(t), func(n, _ int, results []int, _ times.Exit) int {
			t.Must.Equal(n-1, len(results))
			if len(results) == 0 {
				return n
			}
			return results[len(results)-1] + n
		})
		// running total
		t.Must.Equal(count.Get(t)*(count.Get(t)+1)/2, got[len(got)-1])
	})

	s.Then("reverse results are kept in visiting order", func(t *testcase.T) {
		t.Must.Equal(descending(count.Get(t)), times.ReverseMap(subject.Get(t), identity))
	})

	s.When("exit is called", func(s *testcase.Spec) {
		exitAt := testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, count.Get(t))
		})

		s.Then("the result of the exiting step is the last one", func(t *testcase.T) {
			got := times.Map(subject.Get(t), func(n, _ int, _ []int, exit times.Exit) int {
				if n == exitAt.Get(t) {
					exit()
				}
				return n
			})
			t.Must.Equal(ascending(exitAt.Get(t)), got)
		})

		s.Then("reverse map stops just the same", func(t *testcase.T) {
			got := times.ReverseMap(subject.Get(t), func(n, _ int, _ []int, exit times.Exit) int {
				if n == exitAt.Get(t) {
					exit()
				}
				return n
			})
			t.Must.Equal(count.Get(t)-exitAt.Get(t)+1, len(got))
			t.Must.Equal(exitAt.Get(t), got[len(got)-1])
		})
	})

	s.Test("exit vectors", func(t *testcase.T) {
		var calls int
		times.Map(times.Must(5), func(n, _ int, _ []int, exit times.Exit) int {
			calls++
			if n == 3 {
				exit()
			}
			return n
		})
		t.Must.Equal(3, calls)

		calls = 0
		times.ReverseMap(times.Must(5), func(n, _ int, _ []int, exit times.Exit) int {
			calls++
			if 5-n == 2 {
				exit()
			}
			return n
		})
		t.Must.Equal(3, calls)
	})
}

func TestReduce(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		count   = let.IntB(s, 1, 64)
		initial = let.IntB(s, 0, 1024)
		subject = testcase.Let(s, func(t *testcase.T) times.Range {
			return times.Must(count.Get(t))
		})
		sum = func(acc, n, _ int, _ times.Exit) int { return acc + n }
	)

	s.Test("smoke", func(t *testcase.T) {
		t.Must.Equal(15, times.Reduce(times.Must(5), sum, 0))
		t.Must.Equal(15, times.ReverseReduce(times.Must(5), sum, 0))
	})

	s.Then("every number is folded into the initial value", func(t *testcase.T) {
		exp := initial.Get(t) + count.Get(t)*(count.Get(t)+1)/2
		t.Must.Equal(exp, times.Reduce(subject.Get(t), sum, initial.Get(t)))
		t.Must.Equal(exp, times.ReverseReduce(subject.Get(t), sum, initial.Get(t)))
	})

	s.Then("the accumulator type is independent from the numbers", func(t *testcase.T) {
		got := times.Reduce(subject.Get(t), func(acc []string, n, _ int, _ times.Exit) []string {
			return append(acc, strconv.Itoa(n))
		}, nil)
		t.Must.Equal(count.Get(t), len(got))
		t.Must.Equal("1", got[0])
	})

	s.Then("reverse reduce visits the numbers in descending order", func(t *testcase.T) {
		got := times.ReverseReduce(subject.Get(t), func(acc []int, n, _ int, _ times.Exit) []int {
			return append(acc, n)
		}, nil)
		t.Must.Equal(descending(count.Get(t)), got)
	})

	s.When("exit is called", func(s *testcase.Spec) {
		exitAt := testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, count.Get(t))
		})

		s.Then("the value returned by the exiting step is the result", func(t *testcase.T) {
			got := times.Reduce(subject.Get(t), func(acc, n, _ int, exit times.Exit) int {
				if n == exitAt.Get(t) {
					exit()
				}
				return acc + n
			}, initial.Get(t))
			t.Must.Equal(initial.Get(t)+exitAt.Get(t)*(exitAt.Get(t)+1)/2, got)
		})
	})

	s.Test("exit vectors", func(t *testcase.T) {
		var calls int
		times.Reduce(times.Must(5), func(acc, n, _ int, exit times.Exit) int {
			calls++
			if n == 3 {
				exit()
			}
			return acc + n
		}, 20)
		t.Must.Equal(3, calls)

		calls = 0
		times.ReverseReduce(times.Must(5), func(acc, n, _ int, exit times.Exit) int {
			calls++
			if 5-n == 3 {
				exit()
			}
			return acc + n
		}, 20)
		t.Must.Equal(4, calls)
	})
}
