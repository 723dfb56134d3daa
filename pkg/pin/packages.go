package pin

import (
	"slices"
	"strings"
)

// AptPackages returns the packages a shell command installs via apt-get, in
// order of first appearance and without duplicates. Flags and line
// continuations are skipped; commands that are not an apt-get install
// contribute nothing.
func AptPackages(command string) []string {
	packages := []string{}
	for _, c := range strings.Split(command, "&&") {
		var words []string
		for _, part := range strings.Split(c, " ") {
			part = strings.TrimSpace(part)
			if part == "" || part == "\\" {
				continue
			}
			if strings.HasPrefix(part, "-") {
				continue
			}
			words = append(words, part)
		}
		if len(words) < 3 || words[0] != "apt-get" || words[1] != "install" {
			continue
		}
		for _, pkg := range words[2:] {
			if !slices.Contains(packages, pkg) {
				packages = append(packages, pkg)
			}
		}
	}
	return packages
}
