package dockerfile

import "strings"

// A tokenizer recognizes a prefix of its input and returns the recognized
// text, the unconsumed remainder and whether the input matched. Both returned
// strings are slices of the input; tokenizers never allocate.
type tokenizer func(s string) (match, rest string, ok bool)

const (
	spaceChars      = " \t"
	whitespaceChars = " \t\r\n"
)

// skipWhitespace discards leading whitespace, newlines included. Zero
// characters is a valid skip, so it cannot fail.
func skipWhitespace(s string) string {
	return strings.TrimLeft(s, whitespaceChars)
}

// cutSpaces consumes one or more spaces or tabs and reports whether any were
// present. A newline is not a space: the separator between a keyword and its
// argument must stay on the keyword's line.
func cutSpaces(s string) (rest string, ok bool) {
	rest = strings.TrimLeft(s, spaceChars)
	return rest, len(rest) < len(s)
}

// untilLineEnd recognizes everything up to, but not including, the next
// carriage return or line feed. The match may be empty and the whole input is
// matched when no line break remains.
func untilLineEnd(s string) (match, rest string, ok bool) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i], s[i:], true
	}
	return s, "", true
}

// ws makes whitespace around inner's match insignificant. Spaces before the
// match are skipped, the match is trimmed at both ends and all whitespace
// after it is consumed from the remainder, line breaks and blank lines
// included. The leading skip stays within the current line so that an empty
// match cannot swallow text from the line below.
func ws(inner tokenizer) tokenizer {
	return func(s string) (string, string, bool) {
		match, rest, ok := inner(strings.TrimLeft(s, spaceChars))
		if !ok {
			return "", s, false
		}
		return strings.TrimSpace(match), skipWhitespace(rest), true
	}
}
