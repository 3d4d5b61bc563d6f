// Command cliargs inspects and validates command-line token streams.
// Each operation takes the raw token list verbatim and mirrors the
// library's result in its output and exit status.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/davrell/cliargs"
	"github.com/fatih/color"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				color.New(color.FgRed).Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// run dispatches the sub-operation and returns nil for success or an
// ExitError whose code mirrors the validation status: 1 for a failed
// validation, 2 for invalid usage.
func run(out io.Writer, argv []string) error {
	if len(argv) == 0 {
		usage(out)
		return &ExitError{Code: 2}
	}

	op, rest := argv[0], argv[1:]

	switch op {
	case "args":
		printLines(out, cliargs.Args(rest))

	case "arg":
		if len(rest) == 0 {
			return &ExitError{Code: 2, Message: "arg: missing INDEX operand"}
		}
		index, err := strconv.Atoi(rest[0])
		if err != nil || index < 0 {
			return &ExitError{Code: 2, Message: fmt.Sprintf("arg: invalid INDEX %q", rest[0])}
		}
		fmt.Fprintln(out, cliargs.Arg(index, rest[1:]))

	case "options":
		printLines(out, cliargs.Options(rest))

	case "option":
		if len(rest) == 0 {
			return &ExitError{Code: 2, Message: "option: missing NAME operand"}
		}
		fmt.Fprintln(out, cliargs.Option(rest[0], rest[1:]))

	case "safe-name":
		if len(rest) == 0 {
			return &ExitError{Code: 2, Message: "safe-name: missing STRING operand"}
		}
		fmt.Fprintln(out, cliargs.SafeName(rest[0]))

	case "require-args":
		if len(rest) == 0 {
			return &ExitError{Code: 2, Message: "require-args: missing COUNT operand"}
		}
		count, err := strconv.Atoi(rest[0])
		if err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("require-args: invalid COUNT %q", rest[0])}
		}
		switch err := cliargs.RequireArgs(count, rest[1:]); {
		case errors.Is(err, cliargs.ErrUsage):
			return &ExitError{Code: 2, Message: fmt.Sprintf("require-args: COUNT must not be negative, got %d", count)}
		case errors.Is(err, cliargs.ErrValidation):
			return &ExitError{Code: 1, Message: fmt.Sprintf("require-args: expected exactly %d non-empty arguments", count)}
		}

	case "require-options":
		if len(rest) == 0 {
			return &ExitError{Code: 2, Message: "require-options: missing NAMES operand"}
		}
		v := cliargs.Validator{Logger: slog.Default()}
		if err := v.RequireOptions(splitNames(rest[0]), rest[1:]); err != nil {
			// each missing option was already reported
			return &ExitError{Code: 1}
		}

	case "help", "-h", "--help":
		usage(out)

	default:
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown operation %q (try \"cliargs help\")", op)}
	}

	return nil
}

// splitNames parses the comma-separated NAMES operand; an empty operand
// means no required options at all.
func splitNames(names string) []string {
	if names == "" {
		return nil
	}
	return strings.Split(names, ",")
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `cliargs - inspect and validate command-line token streams

Usage:
  cliargs OPERATION [OPERAND] [TOKEN...]

Operations:
  args [TOKEN...]                   print positional arguments, one per line
  arg INDEX [TOKEN...]              print the positional argument at INDEX
  options [TOKEN...]                print option tokens verbatim, one per line
  option NAME [TOKEN...]            print the value of option NAME
  safe-name STRING                  print STRING rewritten as a safe identifier
  require-args COUNT [TOKEN...]     require exactly COUNT non-empty arguments
  require-options NAMES [TOKEN...]  require a value for every comma-separated name

Exit status:
  0  ok
  1  validation failed
  2  invalid usage
`)
}
