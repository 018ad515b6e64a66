package command

import (
	"fmt"
	"io"
	"strconv"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/times"
)

// Seq prints the numbers of a range as they are visited.
type Seq struct {
	Reverse bool   `flag:"reverse,r" desc:"print the numbers from count down to 1"`
	Count   string `arg:"0" required:"true" desc:"the last number, or inf for an endless sequence"`

	Deps
}

func (cmd Seq) Summary() string { return "print the numbers from 1 to count" }

func (cmd Seq) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	rng, err := parseRange(cmd.Count)
	if err != nil {
		cmd.badRequest(ctx, w, err)
		return
	}
	if cmd.Reverse && rng.IsUnbounded() {
		cmd.badRequest(ctx, w, badInput{
			Code:    ErrUnboundedRange,
			Message: "an unbounded sequence can't be printed in reverse",
			Cause:   times.ErrUnboundedReverse,
		})
		return
	}

	var (
		visited int
		werr    error
	)
	visit := func(n, _ int, exit times.Exit) {
		if 0 < visited {
			if _, werr = io.WriteString(w, cmd.separator()); werr != nil {
				exit()
				return
			}
		}
		if _, werr = io.WriteString(w, strconv.Itoa(n)); werr != nil {
			exit()
			return
		}
		visited++
	}
	if cmd.Reverse {
		rng.ReverseDo(visit)
	} else {
		rng.Do(visit)
	}
	if werr == nil {
		_, werr = fmt.Fprintln(w)
	}
	if werr != nil {
		cmd.failure(ctx, w, werr)
		return
	}
	cmd.traversed(ctx, "seq", rng, cmd.Reverse, visited)
}
