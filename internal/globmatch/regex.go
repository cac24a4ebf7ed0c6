package globmatch

import (
	"fmt"
	"regexp"
	"strings"
)

// ErrBadRegex is returned when a "::"-prefixed filename pattern fails to
// compile.
var ErrBadRegex = fmt.Errorf("globmatch: bad regex pattern")

// IsRegexPattern reports whether raw uses the "::" regex-mode prefix
// (spec.md §4.3).
func IsRegexPattern(raw string) bool {
	return strings.HasPrefix(raw, "::")
}

// RegexFilter wraps a compiled, case-insensitive regex applied to the
// filename component only. It is compiled with Go's regexp package (RE2
// syntax); ECMAScript-only constructs such as lookaround and
// backreferences are rejected as ErrBadRegex.
type RegexFilter struct {
	re *regexp.Regexp
}

// NewRegexFilter compiles a "::"-prefixed (or bare) pattern as a
// case-insensitive regex.
func NewRegexFilter(raw string) (*RegexFilter, error) {
	src := strings.TrimPrefix(raw, "::")
	re, err := regexp.Compile("(?i)" + src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRegex, raw, err)
	}
	return &RegexFilter{re: re}, nil
}

// MatchName reports whether name (the filename component only) matches
// the compiled regex.
func (f *RegexFilter) MatchName(name string) bool {
	return f.re.MatchString(name)
}
