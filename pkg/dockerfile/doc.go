// Package dockerfile parses Dockerfile-like build scripts into a typed
// sequence of instructions.
//
// The parser recognizes one instruction per line: an alphabetic keyword,
// at least one space, then the argument running to the end of the line.
// Keywords are matched case-insensitively and dispatched through a registry
// of per-instruction strategies, so each instruction owns the rules for its
// argument while keyword handling stays in one place. FROM and RUN are
// registered today.
//
// The layers are:
//
//   - Tokenizers: small prefix recognizers for whitespace, separators and
//     line-bounded text. They slice the input and never allocate.
//   - Parser: recognizes the keyword, picks the strategy and rebases error
//     positions onto the document.
//   - Instruction types: the output data structures (Dockerfile, From, Run).
//
// Usage:
//
//	doc, err := dockerfile.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, instruction := range doc.Instructions {
//	    fmt.Println(instruction)
//	}
//
// Failures are typed: *SyntaxError for text that does not form an
// instruction, *UnknownInstructionError for keywords with no registered
// strategy and *ArgumentError for arguments a strategy rejects. All three
// carry the Position of the failure.
package dockerfile
