package command

import (
	"fmt"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/times"
)

// Sum prints the total of the numbers from 1 to count.
type Sum struct {
	Reverse bool   `flag:"reverse,r" desc:"add up the numbers in descending order"`
	Count   string `arg:"0" required:"true" desc:"the last number"`

	Deps
}

func (cmd Sum) Summary() string { return "sum the numbers from 1 to count" }

func (cmd Sum) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	rng, err := parseRange(cmd.Count)
	if err != nil {
		cmd.badRequest(ctx, w, err)
		return
	}
	if rng.IsUnbounded() {
		cmd.badRequest(ctx, w, invalid(ErrUnboundedRange, "sum needs a finite count"))
		return
	}

	type total struct{ Sum, Visited int }
	add := func(acc total, n, _ int, _ times.Exit) total {
		return total{Sum: acc.Sum + n, Visited: acc.Visited + 1}
	}

	var result total
	if cmd.Reverse {
		result = times.ReverseReduce(rng, add, total{})
	} else {
		result = times.Reduce(rng, add, total{})
	}
	if _, err := fmt.Fprintln(w, result.Sum); err != nil {
		cmd.failure(ctx, w, err)
		return
	}
	cmd.traversed(ctx, "sum", rng, cmd.Reverse, result.Visited)
}
