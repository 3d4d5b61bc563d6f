package cliargs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Err is the error type returned by the validation functions.
type Err string

const (
	// ErrValidation indicates that a required argument or option is
	// missing or empty.
	ErrValidation = Err("validation failed")
	// ErrUsage indicates that the validation call itself was malformed.
	ErrUsage = Err("invalid usage")
)

func (e Err) Error() string {
	return string(e)
}

// RequireArgs verifies that args carries exactly count non-empty
// positional arguments. It returns ErrUsage when count is negative, and
// ErrValidation when the argument count differs from count or any of
// the arguments is the empty string.
func RequireArgs(count int, args []string) error {
	if count < 0 {
		return ErrUsage
	}
	pos := Args(args)
	if len(pos) != count {
		return ErrValidation
	}
	for _, p := range pos {
		if p == "" {
			return ErrValidation
		}
	}
	return nil
}

// Reporter receives the name of a missing required option.
type Reporter func(name string)

// Validator checks required options against a token stream, reporting
// each missing option exactly once.
//
// A custom Reporter wins when set. Otherwise missing options are logged
// through Logger when one is present, and written to stderr as a last
// resort. The zero value is ready to use. A call reads its own copy of
// the fields, so concurrent calls do not race on configuration.
type Validator struct {
	Reporter Reporter
	Logger   *slog.Logger
}

// RequireOptions resolves every name in names (leading hyphens
// stripped) against args and reports each one whose value is empty. All
// names are checked even after a failure, so the reporter fires once
// per missing option. It returns ErrValidation unless every named
// option resolved to a non-empty value; an empty names list succeeds
// without scanning args at all.
func (v Validator) RequireOptions(names, args []string) error {
	if len(names) == 0 {
		return nil
	}

	report := v.report()
	var err error
	for _, name := range names {
		name = strings.TrimLeft(name, "-")
		if Option(name, args) == "" {
			report(name)
			err = ErrValidation
		}
	}
	return err
}

func (v Validator) report() Reporter {
	if v.Reporter != nil {
		return v.Reporter
	}
	if v.Logger != nil {
		return func(name string) {
			v.Logger.Error("missing required option", "name", name)
		}
	}
	return func(name string) {
		fmt.Fprintf(os.Stderr, "Required option is missing: --%s\n", name)
	}
}

// RequireOptions is the zero-Validator convenience form of
// [Validator.RequireOptions].
func RequireOptions(names, args []string) error {
	return Validator{}.RequireOptions(names, args)
}
