package cmd

import (
	"fmt"
	"regexp"

	m "github.com/filedbg/filedbg/internal/model"
)

// parsePaths converts bare CLI operands into model.Path values,
// defaulting to the current directory when none are given — the same
// default every subcommand here falls back to so "run filedbg list"
// from a project root needs no arguments.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, a := range args {
		paths = append(paths, m.Path(a))
	}

	return paths
}

// compileExcludes turns --exclude regex strings into compiled matchers,
// failing with ErrUsage on the first invalid pattern rather than on
// the first file it would have been tested against.
func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid --exclude pattern %q: %v", ErrUsage, p, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}
