package dockerfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/command"
)

// Position locates a byte in the parsed text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// SyntaxError reports text that does not form an instruction: a missing or
// non-alphabetic keyword, or a keyword with no space after it.
type SyntaxError struct {
	Message string
	Found   string // the offending text, truncated for display
	Pos     Position
}

func (e *SyntaxError) Error() string {
	msg := e.Message
	if e.Found != "" {
		msg = fmt.Sprintf("%s near %q", msg, e.Found)
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// UnknownInstructionError reports a well-formed keyword that no parsing
// strategy is registered for. The message distinguishes instructions the
// Dockerfile format defines but this parser does not handle from keywords
// the format has never heard of.
type UnknownInstructionError struct {
	Keyword string // as written in the source
	Pos     Position
}

func (e *UnknownInstructionError) Error() string {
	kind := "unknown"
	if _, ok := command.Commands[strings.ToLower(e.Keyword)]; ok {
		kind = "unsupported"
	}
	msg := fmt.Sprintf("%s instruction: %s", kind, strings.ToUpper(e.Keyword))
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// ArgumentError reports an argument rejected by an instruction's parsing
// strategy.
type ArgumentError struct {
	Keyword string
	Message string
	Pos     Position
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("invalid %s argument: %s", strings.ToUpper(e.Keyword), e.Message)
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// position resolves a byte offset within src to a line and column.
func position(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	return Position{
		Line:   strings.Count(before, "\n") + 1,
		Column: offset - strings.LastIndexByte(before, '\n'),
		Offset: offset,
	}
}

// relocate rebases the position carried by err against the document it came
// from. Parsing works on suffixes of the document, so errors are born with
// offsets relative to the suffix; base is where that suffix starts. The error
// may arrive wrapped, suggestions included, and is mutated in place.
func relocate(err error, src string, base int) error {
	var (
		syntaxErr   *SyntaxError
		unknownErr  *UnknownInstructionError
		argumentErr *ArgumentError
	)
	switch {
	case errors.As(err, &syntaxErr):
		syntaxErr.Pos = position(src, base+syntaxErr.Pos.Offset)
	case errors.As(err, &unknownErr):
		unknownErr.Pos = position(src, base+unknownErr.Pos.Offset)
	case errors.As(err, &argumentErr):
		argumentErr.Pos = position(src, base+argumentErr.Pos.Offset)
	}
	return err
}
