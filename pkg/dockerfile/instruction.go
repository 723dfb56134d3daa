package dockerfile

import (
	"io"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/command"
)

// Instruction is a single parsed directive. Concrete types carry the argument
// under the field that instruction defines for it; consumers branch with a
// type switch rather than by re-reading text. Argument strings are slices of
// the parsed input and remain valid for as long as the input does.
type Instruction interface {
	// Name returns the canonical lowercase keyword, e.g. "from".
	Name() string
	// String renders the instruction on one canonical line: uppercase
	// keyword, a single space, then the argument.
	String() string
}

// From names the base image a build starts from. The reference is kept
// verbatim; validating it is the registry client's job, not the parser's.
type From struct {
	Image string
}

func (From) Name() string { return command.From }

func (f From) String() string { return renderLine(command.From, f.Image) }

// Run carries a shell command exactly as written, embedded spacing included.
type Run struct {
	Command string
}

func (Run) Name() string { return command.Run }

func (r Run) String() string { return renderLine(command.Run, r.Command) }

// renderLine always includes the separating space, even for an empty
// argument, so rendered output parses back to the same document.
func renderLine(keyword, arg string) string {
	return strings.ToUpper(keyword) + " " + arg
}

// Dockerfile is the parsed document: its instructions in source order.
type Dockerfile struct {
	Instructions []Instruction
}

// String renders every instruction in canonical form, one per line.
func (d *Dockerfile) String() string {
	var builder strings.Builder
	for _, instruction := range d.Instructions {
		builder.WriteString(instruction.String())
		builder.WriteString("\n")
	}
	return builder.String()
}

// Write writes the canonical rendering to w.
func (d *Dockerfile) Write(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}
