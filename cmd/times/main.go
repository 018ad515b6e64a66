// Command times prints and aggregates ranges of positive numbers.
//
//	times seq 5
//	times seq -reverse 5
//	times sum 100
//	times filter -mod 3 -rem 1 10
//	times take -while-below 3
package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/times/internal/command"
	"go.llib.dev/times/internal/config"
)

func main() {
	ctx := context.Background()

	c, err := config.Load()
	if err != nil {
		l := &logging.Logger{Out: os.Stderr}
		l.Fatal(ctx, "failed to load the configuration", logging.ErrField(err))
		os.Exit(cli.ExitCodeError)
	}

	cli.Main(ctx, command.NewMux(command.Deps{
		Config: c,
		Logger: c.Logger(os.Stderr),
	}))
}
