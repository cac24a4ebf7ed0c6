package main

import (
	"os"
	"path/filepath"

	"github.com/chrisant996/dirx/internal/direntry"
)

// resolvePatterns turns the command line's bare arguments into resolved
// directory/glob patterns, defaulting to the current directory when none
// are given, and coalesces patterns that land on the same directory so
// the render loop only visits it once (spec.md §3).
func resolvePatterns(args []string, ignoreGlobs []string) []direntry.Pattern {
	if len(args) == 0 {
		args = []string{"."}
	}

	patterns := make([]direntry.Pattern, 0, len(args))
	for _, arg := range args {
		patterns = append(patterns, resolvePattern(arg, ignoreGlobs))
	}
	return direntry.CoalescePatterns(patterns)
}

// resolvePattern splits one command-line argument into a directory plus
// the sibling glob(s) it should match inside that directory. A bare
// directory (or one that stats as a directory) implicitly expands to
// "dir/*" (original_source/patterns.cpp's AdjustPattern).
func resolvePattern(arg string, ignoreGlobs []string) direntry.Pattern {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return direntry.Pattern{
			Dir:              filepath.Clean(arg),
			ImplicitWildcard: true,
			Ignore:           ignoreGlobs,
		}
	}

	dir := filepath.Dir(arg)
	base := filepath.Base(arg)
	if dir == "" {
		dir = "."
	}
	return direntry.Pattern{
		Dir:      dir,
		Siblings: []string{base},
		Ignore:   ignoreGlobs,
	}
}
