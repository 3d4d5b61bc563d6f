// Package cliargs separates a flat command-line token stream into
// options and positional arguments, following GNU-like conventions.
//
// A token whose first character is '-' is an option until the literal
// terminator "--" is seen; the terminator itself is consumed, and every
// token after it is a positional argument even when it looks like an
// option. Values are always opaque strings: a long option without an
// explicit "=value" carries the sentinel value "true", and a lookup for
// an absent option resolves to the empty string rather than an error.
package cliargs

const terminator = "--"

// split scans args left to right and assigns every token to exactly one
// side of the option/argument partition, preserving relative order. At
// most one terminator token is consumed.
func split(args []string) (opts, pos []string) {
	afterTerminator := false
	for _, arg := range args {
		switch {
		case afterTerminator:
			pos = append(pos, arg)
		case arg == terminator:
			afterTerminator = true
		case len(arg) > 0 && arg[0] == '-':
			opts = append(opts, arg)
		default:
			pos = append(pos, arg)
		}
	}
	return opts, pos
}

// Options returns the option tokens from args in their original,
// unsplit form: no short-group expansion and no value decoding. Use it
// to forward options verbatim to another command.
func Options(args []string) []string {
	opts, _ := split(args)
	return opts
}

// Args returns the positional arguments from args: every token that is
// not an option, plus everything after the "--" terminator.
func Args(args []string) []string {
	_, pos := split(args)
	return pos
}

// Arg returns the positional argument at the given zero-based index.
// An out-of-range index yields the empty string, not an error.
func Arg(index int, args []string) string {
	pos := Args(args)
	if index < 0 || index >= len(pos) {
		return ""
	}
	return pos[index]
}
