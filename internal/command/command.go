// Package command implements the sub-commands of the times command line tool.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/times"
	"go.llib.dev/times/internal/config"
)

const (
	ErrInvalidCount     errorkit.Error = "ErrInvalidCount"
	ErrUnboundedRange   errorkit.Error = "ErrUnboundedRange"
	ErrInvalidModulus   errorkit.Error = "ErrInvalidModulus"
	ErrInvalidCondition errorkit.Error = "ErrInvalidCondition"
)

// Unbounded is the count argument value for a range without an end.
const Unbounded = "inf"

// Deps are the dependencies injected into every command.
type Deps struct {
	Config config.Config
	Logger *logging.Logger
}

// NewMux registers the sub-commands.
func NewMux(deps Deps) *cli.Mux {
	var m cli.Mux
	m.Handle("seq", Seq{Deps: deps})
	m.Handle("sum", Sum{Deps: deps})
	m.Handle("filter", Filter{Deps: deps})
	m.Handle("take", Take{Deps: deps})
	return &m
}

func (d Deps) logger() *logging.Logger {
	if d.Logger == nil {
		return &logging.Logger{Out: io.Discard}
	}
	return d.Logger
}

func (d Deps) separator() string {
	if d.Config.Separator == "" {
		return "\n"
	}
	return d.Config.Separator
}

// badInput is an error caused by the command line arguments.
// Its message is printed to the user, while the cause is only logged.
type badInput struct {
	Code    errorkit.Error
	Message string
	Cause   error
}

func invalid(code errorkit.Error, format string, a ...any) badInput {
	return badInput{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (err badInput) Error() string {
	return "[" + string(err.Code) + "] " + err.Message
}

func (err badInput) Is(target error) bool {
	return errors.Is(err.Code, target)
}

func (err badInput) Unwrap() error { return err.Cause }

// parseRange turns the count argument into a times.Range.
func parseRange(raw string) (times.Range, error) {
	if raw == Unbounded || raw == "∞" {
		return times.Infinite(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		in := invalid(ErrInvalidCount, "%q is not a number", raw)
		in.Cause = err
		return times.Range{}, in
	}
	if n == math.MaxInt {
		return times.Infinite(), nil
	}
	r, err := times.New(n)
	if err != nil {
		in := invalid(ErrInvalidCount, "count must be greater than 0, got %d", n)
		in.Cause = err
		return times.Range{}, in
	}
	return r, nil
}

// parseThreshold reads an optional integer flag value.
// An empty value means the flag was not given.
func parseThreshold(name, raw string) (int, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		in := invalid(ErrInvalidCondition, "-%s: %q is not a number", name, raw)
		in.Cause = err
		return 0, false, in
	}
	return n, true, nil
}

func (d Deps) badRequest(ctx context.Context, w cli.Response, err error) {
	d.logger().Debug(ctx, "bad request", logging.ErrField(err))
	w.ExitCode(cli.ExitCodeBadRequest)
	msg := "invalid input"
	var in badInput
	if errors.As(err, &in) {
		msg = in.Error()
	}
	fmt.Fprintln(errOut(w), msg)
}

func (d Deps) failure(ctx context.Context, w cli.Response, err error) {
	d.logger().Error(ctx, "command failed", logging.ErrField(err))
	w.ExitCode(cli.ExitCodeError)
	fmt.Fprintln(errOut(w), err.Error())
}

func (d Deps) traversed(ctx context.Context, cmd string, r times.Range, reverse bool, visited int) {
	d.logger().Debug(ctx, "range traversed",
		logging.Field("command", cmd),
		logging.Field("range", r.String()),
		logging.Field("reverse", reverse),
		logging.Field("visited", visited))
}

// writeNumbers writes the numbers with the configured separator between them.
func (d Deps) writeNumbers(w io.Writer, ns []int) error {
	var b strings.Builder
	for i, n := range ns {
		if 0 < i {
			b.WriteString(d.separator())
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		return ew.Stderr()
	}
	return w
}
