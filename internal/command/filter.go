package command

import (
	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/times"
)

// Filter prints the numbers that give the expected remainder when divided by the modulus.
type Filter struct {
	Reverse bool   `flag:"reverse,r" desc:"list the numbers in descending order"`
	Mod     int    `flag:"mod" default:"2" desc:"the divisor"`
	Rem     int    `flag:"rem" default:"0" desc:"the expected remainder"`
	Count   string `arg:"0" required:"true" desc:"the last number"`

	Deps
}

func (cmd Filter) Summary() string { return "list the numbers where number % mod == rem" }

func (cmd Filter) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	rng, err := parseRange(cmd.Count)
	if err != nil {
		cmd.badRequest(ctx, w, err)
		return
	}
	if rng.IsUnbounded() {
		cmd.badRequest(ctx, w, invalid(ErrUnboundedRange, "filter needs a finite count"))
		return
	}
	if cmd.Mod <= 0 {
		cmd.badRequest(ctx, w, invalid(ErrInvalidModulus, "-mod must be positive, got %d", cmd.Mod))
		return
	}
	if cmd.Rem < 0 || cmd.Mod <= cmd.Rem {
		cmd.badRequest(ctx, w, invalid(ErrInvalidModulus, "-rem must be between 0 and %d, got %d", cmd.Mod-1, cmd.Rem))
		return
	}

	var visited int
	match := func(n, _ int, _ []int, _ times.Exit) bool {
		visited++
		return n%cmd.Mod == cmd.Rem
	}

	var selected []int
	if cmd.Reverse {
		selected = rng.ReverseSelect(match)
	} else {
		selected = rng.Select(match)
	}
	if err := cmd.writeNumbers(w, selected); err != nil {
		cmd.failure(ctx, w, err)
		return
	}
	cmd.traversed(ctx, "filter", rng, cmd.Reverse, visited)
}
