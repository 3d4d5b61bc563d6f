package cliargs

import "strings"

// SafeName rewrites input into an identifier-safe name. The first
// character must match [A-Za-z_] and every later character [A-Za-z0-9_=];
// anything else becomes '_'. The transform is total and many-to-one
// (collisions are accepted), and it is idempotent: applying it to its
// own output changes nothing.
func SafeName(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i, r := range input {
		switch {
		case isNameRune(r):
			b.WriteRune(r)
		case i > 0 && (r == '=' || ('0' <= r && r <= '9')):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isNameRune(r rune) bool {
	return r == '_' || ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}
