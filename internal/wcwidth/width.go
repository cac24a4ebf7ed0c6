// Package wcwidth classifies Unicode codepoints into terminal display
// cells and iterates ECMA-48 escape sequences embedded in a byte stream.
package wcwidth

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// CellWidth returns the number of terminal cells a single codepoint
// occupies: 0 for combining marks and other zero-width codepoints, 1 for
// ordinary text, 2 for CJK wide and most emoji.
func CellWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r) {
		// Combining marks and format characters (ZWJ, variation selectors)
		// never occupy a cell on their own; they ride on the base rune.
		if r == variationSelector16 {
			return 0
		}
		return 0
	}
	if isEmojiPresentation(r) {
		return 2
	}
	return runewidth.RuneWidth(r)
}

const (
	zeroWidthJoiner     rune = 0x200D
	variationSelector15 rune = 0xFE0E
	variationSelector16 rune = 0xFE0F
)

// isEmojiPresentation reports whether r is in a block that the terminal
// convention renders at emoji (double-wide) presentation by default.
func isEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0x2B50 || r == 0x2764:
		return true
	default:
		return false
	}
}

// StringWidth returns the total display-cell width of s, treating ZWJ
// emoji sequences as a single grapheme whose width is that of its first
// scalar, and letting a trailing U+FE0F (variation selector-16) upgrade
// an otherwise-narrow emoji to width 2. Escape sequences embedded in s
// are treated as zero-width and must be skipped by the caller using the
// Iterator if exact placement matters; StringWidth alone does not strip
// them.
func StringWidth(s string) int {
	width := 0
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		r := runes[i]
		i++
		w := CellWidth(r)
		// Absorb a following variation selector.
		if i < len(runes) && runes[i] == variationSelector16 {
			if w < 2 {
				w = 2
			}
			i++
		} else if i < len(runes) && runes[i] == variationSelector15 {
			w = 1
			i++
		}
		width += w
		// Absorb a ZWJ-joined tail: each ZWJ plus following scalar
		// contributes zero additional width, collapsing the sequence
		// into one grapheme sized by its first scalar.
		for i+1 < len(runes) && runes[i] == zeroWidthJoiner {
			i += 2 // skip the joiner and the scalar it joins
			if i < len(runes) && runes[i] == variationSelector16 {
				i++
			}
		}
	}
	return width
}

// FoldSurrogate replaces an invalid (unpaired) UTF-16 surrogate codepoint
// with the Unicode replacement character. Go strings are UTF-8 and the
// standard library already folds invalid surrogate pairs encountered
// during transcoding to U+FFFD; this helper exists so callers that
// receive raw rune values (e.g. from a custom UTF-16 decoder) can apply
// the same rule explicitly.
func FoldSurrogate(r rune) rune {
	if r >= 0xD800 && r <= 0xDFFF {
		return unicode.ReplacementChar
	}
	return r
}
