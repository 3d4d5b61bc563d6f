package cliargs

import "strings"

// optionTrue is the value recorded for options without an explicit
// "=value".
const optionTrue = "true"

// Option returns the value of the named option in args, or the empty
// string when it is absent. Leading hyphens on name are ignored, and
// both the queried name and every extracted long-option name pass
// through SafeName before comparison, so "--retry-count" and
// "--retry_count" resolve to the same option.
//
// A token with two or more leading hyphens is a long option of the form
// "--name" or "--name=value"; without "=", the value is "true". A token
// with a single leading hyphen is a short group: each character is an
// individual flag worth "true", and it matches only on the first
// character of the normalized name. When an option occurs more than
// once, the last occurrence wins. Tokens at or after the "--"
// terminator are never options.
func Option(name string, args []string) string {
	target := SafeName(strings.TrimLeft(name, "-"))

	var value string
	opts, _ := split(args)
	for _, opt := range opts {
		if strings.HasPrefix(opt, "--") {
			key, inline, hasInline := strings.Cut(strings.TrimLeft(opt, "-"), "=")
			if SafeName(key) != target {
				continue
			}
			if hasInline {
				value = inline
			} else {
				value = optionTrue
			}
			continue
		}

		if target == "" {
			continue
		}
		// Short group: "-abc" is the flags 'a', 'b', 'c'. A multi
		// character name can only ever match on its first character.
		for _, r := range opt[1:] {
			if r == rune(target[0]) {
				value = optionTrue
			}
		}
	}
	return value
}
