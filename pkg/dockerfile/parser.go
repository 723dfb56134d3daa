package dockerfile

import (
	"errors"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/command"
	"github.com/moby/buildkit/util/suggest"
)

// strategyFunc parses one instruction's argument. It receives the text after
// the keyword and its separating space, and returns the finished instruction
// together with the unconsumed remainder.
type strategyFunc func(s string) (Instruction, string, error)

// strategies maps each canonical lowercase keyword to its parsing strategy.
// Keyword recognition and dispatch stay generic; everything an instruction
// knows about its own argument lives in its strategy. Adding an instruction
// means adding a row here.
var strategies = map[string]strategyFunc{
	command.From: parseFrom,
	command.Run:  parseRun,
}

// ParseInstruction parses the first instruction in input and returns it with
// the remainder of the input. Whitespace before the instruction, including
// blank lines, is skipped; whitespace after it is consumed so the remainder
// starts at the next instruction or is empty. On failure no input is
// consumed: the remainder is input itself and the error is a *SyntaxError,
// *UnknownInstructionError or *ArgumentError carrying the failure position.
func ParseInstruction(input string) (Instruction, string, error) {
	instruction, rest, err := parseInstruction(input)
	if err != nil {
		return nil, input, relocate(err, input, 0)
	}
	return instruction, rest, nil
}

// Parse parses an entire document, applying ParseInstruction repeatedly
// until only whitespace remains. The first failure aborts the parse; error
// positions refer to the full input.
func Parse(input string) (*Dockerfile, error) {
	doc := &Dockerfile{}
	rest := input
	for skipWhitespace(rest) != "" {
		instruction, r, err := parseInstruction(rest)
		if err != nil {
			return nil, relocate(err, input, len(input)-len(rest))
		}
		doc.Instructions = append(doc.Instructions, instruction)
		rest = r
	}
	return doc, nil
}

// parseInstruction does the work of ParseInstruction on a suffix of the
// document. Error positions are byte offsets into s; callers rebase them
// onto the document with relocate.
func parseInstruction(s string) (Instruction, string, error) {
	rest := skipWhitespace(s)
	at := len(s) - len(rest)

	keyword, afterKeyword, ok := cutKeyword(rest)
	if !ok {
		return nil, s, &SyntaxError{
			Message: "expected instruction keyword",
			Found:   truncate(rest),
			Pos:     Position{Offset: at},
		}
	}

	afterSep, ok := cutSpaces(afterKeyword)
	if !ok {
		return nil, s, &SyntaxError{
			Message: "expected space after instruction keyword",
			Found:   keyword,
			Pos:     Position{Offset: at},
		}
	}

	strategy, ok := strategies[strings.ToLower(keyword)]
	if !ok {
		err := &UnknownInstructionError{Keyword: keyword, Pos: Position{Offset: at}}
		return nil, s, suggest.WrapError(err, keyword, supportedInstructions(), false)
	}

	instruction, remainder, err := strategy(afterSep)
	if err != nil {
		return nil, s, rebase(err, len(s)-len(afterSep))
	}
	return instruction, remainder, nil
}

// cutKeyword recognizes a maximal run of ASCII letters. Keywords bind
// greedily, so "FROMubuntu" is one malformed keyword rather than FROM with a
// missing separator.
func cutKeyword(s string) (keyword, rest string, ok bool) {
	n := 0
	for n < len(s) && isAlpha(s[n]) {
		n++
	}
	if n == 0 {
		return "", s, false
	}
	return s[:n], s[n:], true
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// parseFrom reads the image reference: the rest of the line, trimmed. Any
// single-line text is accepted, even none at all; reference validation
// belongs to whoever resolves the image.
func parseFrom(s string) (Instruction, string, error) {
	image, rest, _ := ws(untilLineEnd)(s)
	return From{Image: image}, rest, nil
}

// parseRun reads the shell command: the rest of the line with surrounding
// whitespace trimmed and embedded whitespace preserved.
func parseRun(s string) (Instruction, string, error) {
	cmd, rest, _ := ws(untilLineEnd)(s)
	return Run{Command: cmd}, rest, nil
}

// supportedInstructions lists the registered keywords in the uppercase form
// diagnostics use.
func supportedInstructions() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, strings.ToUpper(name))
	}
	return names
}

// rebase shifts a strategy error's offset by base bytes. Strategies only see
// the text after the keyword; their positions are relative to that.
func rebase(err error, base int) error {
	var argumentErr *ArgumentError
	if errors.As(err, &argumentErr) {
		argumentErr.Pos.Offset += base
	}
	return err
}

// truncate bounds the offending text quoted in syntax errors to the first
// word, capped at 16 bytes.
func truncate(s string) string {
	if i := strings.IndexAny(s, whitespaceChars); i >= 0 {
		s = s[:i]
	}
	if len(s) > 16 {
		s = s[:16]
	}
	return s
}
