package picture

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed picture string.
type ParseError struct {
	Picture string
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad picture %q: %s", e.Picture, e.Msg)
}

// segment is one literal-or-field unit of a parsed picture, in template
// order.
type segment struct {
	literal  string
	fieldIdx int // -1 for a pure-literal segment
}

// group is a "[...]" bracket range over a contiguous run of segments,
// tracking which field indices it contains so the renderer can drop the
// whole run when a conditional field inside is skipped.
type group struct {
	startSeg, endSeg int // [startSeg, endSeg) over Picture.segments
	fieldIdxs        []int
}

// Picture is a parsed format-picture: an ordered field list plus the
// literal template text interleaved between them, and the set of
// width-discovery passes the fields demand (spec.md §3-§4.4).
type Picture struct {
	Fields   []Field
	segments []segment
	groups   []group

	NeedsFilenameWidth     bool
	NeedsBranchWidth       bool
	NeedsFilesizeWidth     bool
	NeedsOwnerWidth        bool
	NeedsRelativeTimeWidth bool
}

// Immediate reports whether every field has a known width without
// scanning entries first (spec.md §4.4's two-pass protocol).
func (p *Picture) Immediate() bool {
	return !(p.NeedsFilenameWidth || p.NeedsBranchWidth || p.NeedsFilesizeWidth ||
		p.NeedsOwnerWidth || p.NeedsRelativeTimeWidth)
}

var kindLetters = map[byte]Kind{
	'F': KindFilename,
	'X': KindShortName,
	'S': KindSize,
	'D': KindTime,
	'C': KindCompression,
	'O': KindOwner,
	'T': KindAttributes,
	'R': KindGitRepo,
	'G': KindGitFile,
}

// Parse parses a picture string into a Picture, per spec.md §4.4's
// grammar: literal text, "\x" escapes, "[...]" bracket groups, and
// uppercase-letter field specifiers followed by lowercase/digit options.
func Parse(raw string) (*Picture, error) {
	p := &Picture{}
	var lit strings.Builder
	var groupStack []int // indices into p.groups, currently open

	flushLiteral := func() {
		if lit.Len() > 0 {
			p.segments = append(p.segments, segment{literal: lit.String(), fieldIdx: -1})
			lit.Reset()
		}
	}

	runes := []rune(raw)
	i := 0
	for i < len(runes) {
		c := runes[i]
		kind, isField := kindLetters[byte(c)]

		switch {
		case c == '\\':
			if i+1 >= len(runes) {
				return nil, &ParseError{Picture: raw, Msg: "dangling '\\' at end of picture"}
			}
			lit.WriteRune(runes[i+1])
			i += 2

		case c == '[':
			flushLiteral()
			p.groups = append(p.groups, group{startSeg: len(p.segments)})
			groupStack = append(groupStack, len(p.groups)-1)
			i++

		case c == ']':
			if len(groupStack) == 0 {
				return nil, &ParseError{Picture: raw, Msg: "unmatched ']'"}
			}
			flushLiteral()
			gi := groupStack[len(groupStack)-1]
			groupStack = groupStack[:len(groupStack)-1]
			p.groups[gi].endSeg = len(p.segments)
			i++

		case isField:
			i++
			f := Field{Kind: kind}
			i = parseOptions(runes, i, &f)
			flushLiteral()
			idx := len(p.Fields)
			p.Fields = append(p.Fields, f)
			p.segments = append(p.segments, segment{fieldIdx: idx})
			if len(groupStack) > 0 && f.Conditional {
				gi := groupStack[len(groupStack)-1]
				p.groups[gi].fieldIdxs = append(p.groups[gi].fieldIdxs, idx)
			}
			classifyWidthNeeds(p, &p.Fields[idx])

		default:
			lit.WriteRune(c)
			i++
		}
	}
	if len(groupStack) > 0 {
		return nil, &ParseError{Picture: raw, Msg: "unterminated '[' group"}
	}
	flushLiteral()

	return p, nil
}

// parseOptions consumes the lowercase-letter/digit option run following a
// field letter and fills in f accordingly. Returns the index just past
// the option run.
func parseOptions(runes []rune, i int, f *Field) int {
	var digits strings.Builder
	for i < len(runes) {
		c := runes[i]
		switch {
		case c >= '0' && c <= '9':
			digits.WriteRune(c)
			i++
			continue
		case c == '?':
			f.Conditional = true
			i++
			continue
		case f.Kind == KindAttributes && (c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'):
			// Attribute masks are themselves letters, e.g. "Trhs"; take
			// the whole contiguous run as the mask once we're past any
			// leading style option (Attributes has none), so just
			// consume every letter here.
			f.AttrMask += string(c)
			i++
			continue
		case c >= 'a' && c <= 'z':
			switch f.Kind {
			case KindFilename:
				switch c {
				case 'f', 'l', 'x':
					f.Style = byte(c)
				}
			case KindSize:
				switch c {
				case 'm', 's':
					f.Style = byte(c)
				case 'a', 'c', 'f':
					f.SubField = byte(c)
				}
			case KindTime:
				switch c {
				case 'l', 'm', 'i', 'p', 's', 'o', 'n', 'x', 'r':
					f.Style = byte(c)
				case 'a', 'c', 'w':
					f.SubField = byte(c)
				}
			case KindCompression:
				switch c {
				case 'a', 'c':
					f.SubField = byte(c)
				}
			}
			i++
		default:
			if digits.Len() > 0 {
				f.Width = atoiSafe(digits.String())
			}
			return i
		}
	}
	if digits.Len() > 0 {
		f.Width = atoiSafe(digits.String())
	}
	return i
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// classifyWidthNeeds marks which of Picture's deferred-width passes field
// f triggers (spec.md §4.4's enumerated deferred-width cases).
func classifyWidthNeeds(p *Picture, f *Field) {
	switch f.Kind {
	case KindFilename:
		if f.Width == 0 {
			f.AutoFilenameWidth = true
			p.NeedsFilenameWidth = true
		}
	case KindShortName:
		if f.Width == 0 {
			f.Width = 12
		}
	case KindSize:
		if f.Width == 0 {
			p.NeedsFilesizeWidth = true
		}
	case KindOwner:
		if f.Width == 0 {
			p.NeedsOwnerWidth = true
		}
	case KindTime:
		if f.Style == 'r' {
			p.NeedsRelativeTimeWidth = true
		}
	case KindGitRepo:
		p.NeedsBranchWidth = true
	}
}
