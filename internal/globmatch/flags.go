// Package globmatch implements a POSIX-fnmatch-style matcher with a
// **-wildstar extension, plus an ordered negatable pattern list modeled on
// gitignore semantics and an ECMAScript regex fallback for "::"-prefixed
// patterns.
package globmatch

// Flags selects which fnmatch extensions apply to a single Match call.
// They combine freely.
type Flags uint8

const (
	// CaseFold folds ASCII case before comparing literal runes.
	CaseFold Flags = 1 << iota
	// SlashFold treats '/' and '\' as equivalent separators in both the
	// pattern and the name.
	SlashFold
	// Wildstar enables "**" to match across path separators.
	Wildstar
	// LeadingDir makes a match against "prefix" succeed when the input
	// is "prefix/suffix".
	LeadingDir
	// Pathname makes '*' and '?' refuse to cross a '/' separator.
	Pathname
	// Period requires a leading '.' in the name to be matched by an
	// explicit leading '.' in the pattern (never by '*', '?', or '[').
	Period
	// NoEscape disables '\' as an escape character, so it matches
	// itself literally.
	NoEscape
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }
