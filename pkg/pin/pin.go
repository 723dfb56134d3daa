// Package pin anchors the mutable references in a parsed Dockerfile to
// immutable versions: base images to registry digests, with helpers for
// spotting unpinned package installs.
package pin

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/go-containerregistry/pkg/crane"
	"github.com/pkg/errors"

	"github.com/songstitch/capstan/pkg/dockerfile"
)

// Resolver resolves an image reference to its digest.
type Resolver func(ref string) (string, error)

// Options configure a pinning pass.
type Options struct {
	// Resolver overrides how digests are looked up. The default asks the
	// registry through crane.
	Resolver Resolver
}

// Images returns a copy of doc with every FROM instruction anchored to an
// image@digest reference. Only the image token is resolved: a stage alias
// after it ("AS name") is re-attached untouched. Images that already carry a
// digest pass through unchanged, as does every other instruction. The input
// document is not modified.
func Images(ctx context.Context, doc *dockerfile.Dockerfile, opts Options) (*dockerfile.Dockerfile, error) {
	resolve := opts.Resolver
	if resolve == nil {
		resolve = func(ref string) (string, error) {
			return crane.Digest(ref, crane.WithContext(ctx))
		}
	}

	pinned := &dockerfile.Dockerfile{
		Instructions: make([]dockerfile.Instruction, 0, len(doc.Instructions)),
	}
	for _, instruction := range doc.Instructions {
		from, ok := instruction.(dockerfile.From)
		if !ok {
			pinned.Instructions = append(pinned.Instructions, instruction)
			continue
		}
		image, suffix := splitStage(from.Image)
		if strings.Contains(image, "@") {
			pinned.Instructions = append(pinned.Instructions, instruction)
			continue
		}
		if name := stageName(suffix); name != "" {
			color.Blue("Parsing %s image...", name)
		} else {
			color.Blue("Parsing the final image...")
		}
		digest, err := resolve(image)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving digest for %s", image)
		}
		fmt.Printf("\t⚓Anchored %s to %s\n", image, digest)
		pinned.Instructions = append(pinned.Instructions, dockerfile.From{
			Image: fmt.Sprintf("%s@%s%s", image, digest, suffix),
		})
	}
	return pinned, nil
}

// splitStage splits a FROM argument into its image token and the remaining
// text, so "golang:1.22 AS builder" resolves by "golang:1.22" alone with
// " AS builder" re-attached verbatim afterwards.
func splitStage(arg string) (image, suffix string) {
	if i := strings.IndexAny(arg, " \t"); i >= 0 {
		return arg[:i], arg[i:]
	}
	return arg, ""
}

// stageName returns the build-stage alias named by a FROM argument suffix,
// or "" when the suffix is not an AS clause.
func stageName(suffix string) string {
	fields := strings.Fields(suffix)
	if len(fields) == 2 && strings.ToLower(fields[0]) == "as" {
		return fields[1]
	}
	return ""
}
