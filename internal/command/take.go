package command

import (
	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/times"
)

// Take prints numbers from the start of a range until a condition ends it.
// An empty threshold flag counts as not given.
type Take struct {
	Reverse    bool   `flag:"reverse,r" desc:"start from count and go down"`
	WhileBelow string `flag:"while-below" desc:"take numbers while they are below this value"`
	WhileAbove string `flag:"while-above" desc:"take numbers while they are above this value"`
	Until      string `flag:"until" desc:"take numbers until this value is reached, excluding it"`
	Count      string `arg:"0" default:"inf" desc:"the last number, unbounded by default"`

	Deps
}

func (cmd Take) Summary() string { return "take numbers while or until a condition holds" }

type condition struct {
	below, above, until          int
	hasBelow, hasAbove, hasUntil bool
}

func (cmd Take) condition() (condition, error) {
	var (
		c   condition
		err error
	)
	if c.below, c.hasBelow, err = parseThreshold("while-below", cmd.WhileBelow); err != nil {
		return c, err
	}
	if c.above, c.hasAbove, err = parseThreshold("while-above", cmd.WhileAbove); err != nil {
		return c, err
	}
	if c.until, c.hasUntil, err = parseThreshold("until", cmd.Until); err != nil {
		return c, err
	}
	var given int
	for _, ok := range []bool{c.hasBelow, c.hasAbove, c.hasUntil} {
		if ok {
			given++
		}
	}
	if given != 1 {
		return c, invalid(ErrInvalidCondition, "exactly one of -while-below, -while-above or -until is required")
	}
	return c, nil
}

// endless reports whether the condition holds for every number from 1 upwards.
func (c condition) endless() bool {
	switch {
	case c.hasAbove:
		return c.above < 1
	case c.hasUntil:
		return c.until < 1
	default:
		return false
	}
}

func (cmd Take) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	rng, err := parseRange(cmd.Count)
	if err != nil {
		cmd.badRequest(ctx, w, err)
		return
	}
	if cmd.Reverse && rng.IsUnbounded() {
		cmd.badRequest(ctx, w, badInput{
			Code:    ErrUnboundedRange,
			Message: "an unbounded range can't be taken in reverse",
			Cause:   times.ErrUnboundedReverse,
		})
		return
	}
	cond, err := cmd.condition()
	if err != nil {
		cmd.badRequest(ctx, w, err)
		return
	}
	if rng.IsUnbounded() && cond.endless() {
		cmd.badRequest(ctx, w, invalid(ErrUnboundedRange, "the condition would never end an unbounded range"))
		return
	}

	var (
		visited int
		taken   []int
	)
	switch {
	case cond.hasUntil:
		until := func(n, _ int, _ []int, _ times.Exit) bool {
			visited++
			return n == cond.until
		}
		if cmd.Reverse {
			taken = rng.ReverseTakeUntil(until)
		} else {
			taken = rng.TakeUntil(until)
		}
	default:
		while := func(n, _ int, _ []int, _ times.Exit) bool {
			visited++
			if cond.hasBelow {
				return n < cond.below
			}
			return cond.above < n
		}
		if cmd.Reverse {
			taken = rng.ReverseTakeWhile(while)
		} else {
			taken = rng.TakeWhile(while)
		}
	}

	if err := cmd.writeNumbers(w, taken); err != nil {
		cmd.failure(ctx, w, err)
		return
	}
	cmd.traversed(ctx, "take", rng, cmd.Reverse, visited)
}
