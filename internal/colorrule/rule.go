// Package colorrule implements the LS_COLORS-style rule syntax, the
// attribute/flag/glob predicate model, and the cascade that maps a
// filesystem entry to a terminal SGR parameter string.
package colorrule

// Attr is a bitset of the file attributes a rule can require or forbid.
type Attr uint32

const (
	AttrReadonly Attr = 1 << iota
	AttrHidden
	AttrSystem
	AttrDirectory
	AttrArchive
	AttrEncrypted
	AttrSparse
	AttrTemporary
	AttrCompressed
	AttrOffline
	AttrNotContentIndexed
	AttrReparsePoint
)

// Flag is a bitset of content-category flags derived from an entry's
// extension or filename, independent of its filesystem attributes.
type Flag uint32

const (
	FlagDocument Flag = 1 << iota
	FlagImage
	FlagVideo
	FlagMusic
	FlagLossless
	FlagCompressedArchive
	FlagBuild
	FlagSourceCode
	FlagCompiled
	FlagCrypto
	FlagExecutable
	FlagTemporary
)

// Category is the coarse per-entry classification consulted first in the
// lookup cascade, ordered by precedence: an orphaned (dangling) reparse
// point beats a plain directory, which beats a reparse point whose target
// resolves, and so on down to a plain regular file.
type Category uint8

const (
	CategoryOrphan Category = iota
	CategoryDirectory
	CategoryReparse
	CategoryReadonly
	CategoryHidden
	CategoryCompressedAttribute
	CategoryTemporaryAttribute
	CategoryFile
)

// Pattern is one glob predicate within a Rule's pattern list.
type Pattern struct {
	Glob string
	Not  bool
}

// Rule is one parsed entry from the colon-separated rule syntax: an
// attribute/flag/glob predicate paired with the SGR string to emit when
// the predicate matches.
type Rule struct {
	ReqAttr  Attr
	NotAttr  Attr
	ReqFlags Flag
	NotFlags Flag
	Patterns []Pattern
	SGR      string

	// ReqOrphan, when set, requires (true) or forbids (false) the entry
	// being an orphaned reparse point. hasOrphanConstraint distinguishes
	// "not specified" from "specified as false" (a bare "!or" rule).
	ReqOrphan           bool
	hasOrphanConstraint bool

	// impliesNotDirectory records the "readonly alone implies
	// not-directory" and "bare pattern implies not-directory" semantic
	// overlays, applied as a rewrite pass in parse.go rather than as an
	// inline check at match time (Design Notes, §9).
	impliesNotDirectory bool

	// onlyReadonlyAttr/onlyGlobConstraint record which overlay rule
	// condition triggered, for parse.go's applyOverlays pass.
	onlyReadonlyAttr   bool
	onlyGlobConstraint bool
}

// Matches reports whether the rule's attribute, flag, and glob predicates
// all hold for the given inputs. name is the entry's filename, used only
// against the rule's glob patterns.
func (r *Rule) Matches(attr Attr, flags Flag, isDir, isOrphan bool, name string, matchGlob func(pattern, name string) bool) bool {
	if r.impliesNotDirectory && isDir {
		return false
	}
	if r.hasOrphanConstraint && r.ReqOrphan != isOrphan {
		return false
	}
	if r.ReqAttr&attr != r.ReqAttr {
		return false
	}
	if r.NotAttr&attr != 0 {
		return false
	}
	if r.ReqFlags&flags != r.ReqFlags {
		return false
	}
	if r.NotFlags&flags != 0 {
		return false
	}
	for _, p := range r.Patterns {
		matched := matchGlob(p.Glob, name)
		if p.Not {
			matched = !matched
		}
		if !matched {
			return false
		}
	}
	return true
}

// Table is an ordered, parsed rule list plus the category fallback colors
// consulted when no user rule matches.
type Table struct {
	Rules      []Rule
	Categories map[Category]string
	ByKey      map[string]string // two-letter key -> SGR, e.g. "ex" -> PATHEXT-derived executable color
}

// NewTable returns an empty Table: no rules and no category colors. A
// category with no color of its own falls back along fallbackChain, in
// which the compressed-attribute and temporary-attribute categories fall
// back to the regular-file color; no category falls back to a content
// flag's color, and the hidden category has no fallback.
func NewTable() *Table {
	return &Table{
		Categories: map[Category]string{},
		ByKey:      map[string]string{},
	}
}

// fallbackChain maps a category with no direct color to another category
// whose color should be used instead, per spec.md's fixed fallback table.
var fallbackChain = map[Category]Category{
	CategoryCompressedAttribute: CategoryFile,
	CategoryTemporaryAttribute:  CategoryFile,
}

// Resolve walks the lookup cascade described in spec.md §4.2: category
// fallback first informs a baseline, then user rules are walked in
// insertion order and the first full match wins, and if nothing matches
// the category color (following fallbackChain if empty) is used.
func (t *Table) Resolve(cat Category, attr Attr, flags Flag, isDir, isOrphan bool, name string, matchGlob func(pattern, name string) bool) string {
	for i := range t.Rules {
		if t.Rules[i].Matches(attr, flags, isDir, isOrphan, name, matchGlob) {
			return t.Rules[i].SGR
		}
	}
	c := cat
	for {
		if s, ok := t.Categories[c]; ok {
			return s
		}
		next, ok := fallbackChain[c]
		if !ok {
			return ""
		}
		c = next
	}
}
