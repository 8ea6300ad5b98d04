package token

import (
	"strings"
	"unicode"
)

// Split tokenizes one line of interactive input.
//
// Tokens are separated by whitespace. Single and double quotes group words
// into one token, and a backslash escapes a quote or backslash inside a
// quoted region. Quotes themselves are not part of the token; a quoted
// empty string is one empty token.
func Split(line string) []string {
	var tokens []string
	var current strings.Builder
	var inSingle, inDouble, quoted bool

	flush := func() {
		if current.Len() > 0 || quoted {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		quoted = false
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true

		case ch == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true

		case ch == '\\' && i+1 < len(runes) && (inSingle || inDouble):
			next := runes[i+1]
			if next == '"' || next == '\'' || next == '\\' {
				current.WriteRune(next)
				i++
			} else {
				current.WriteRune(ch)
			}

		case unicode.IsSpace(ch) && !inSingle && !inDouble:
			flush()

		default:
			current.WriteRune(ch)
		}
	}

	flush()
	return tokens
}
