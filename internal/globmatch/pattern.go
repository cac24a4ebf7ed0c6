package globmatch

import "strings"

// Pattern is one entry in an ordered GlobPatterns list: a glob plus a
// "not" bit and whether it is anchored to the pattern's root (a leading
// '/') or free to match at any depth.
//
// The shape is modeled on go-git's gitignore Pattern/Matcher (ParsePattern,
// an ordered Matcher walking patterns last-match-wins) adapted to this
// tool's flag-driven fnmatch semantics instead of pure gitignore semantics
// (spec.md §4.3's "Glob ordered list").
type Pattern struct {
	Not      bool
	anchored bool
	glob     string
}

// ParsePattern parses one raw glob-ignore-list entry: an optional leading
// '!' negates it, an optional leading '/' anchors it to the list's root.
func ParsePattern(raw string) Pattern {
	s := raw
	not := false
	if strings.HasPrefix(s, "!") {
		not = true
		s = s[1:]
	}
	anchored := strings.HasPrefix(s, "/")
	if anchored {
		s = s[1:]
	}
	return Pattern{Not: not, anchored: anchored, glob: s}
}

// GlobPatterns is an ordered, possibly-negated list of ignore glob
// patterns scoped to a root directory (spec.md §3's "per-pattern
// ignore-glob list").
type GlobPatterns struct {
	Root     string
	Patterns []Pattern
	Flags    Flags
}

// NewGlobPatterns parses each raw entry with ParsePattern and returns a
// ready-to-query list.
func NewGlobPatterns(root string, raw []string, flags Flags) *GlobPatterns {
	gp := &GlobPatterns{Root: root, Flags: flags}
	gp.Patterns = make([]Pattern, len(raw))
	for i, r := range raw {
		gp.Patterns[i] = ParsePattern(r)
	}
	return gp
}

// Match reports whether relPath (slash-separated, relative to Root) is
// ignored: the last pattern in insertion order whose glob matches decides
// the outcome (non-negated -> ignored, negated -> included), per spec.md
// §4.3. Anchored patterns (leading '/') and patterns whose glob contains
// a '/' match against the full relPath; the other unanchored patterns
// match against relPath's final component, reproducing "matches at any
// directory depth" by relying on the caller invoking Match once per
// ancestor path.
func (gp *GlobPatterns) Match(relPath string, isDir bool) (bool, error) {
	name := relPath
	if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
		name = relPath[i+1:]
	}

	anyNeg := false
	for _, p := range gp.Patterns {
		if p.Not {
			anyNeg = true
			break
		}
	}

	ignored := false
	for _, p := range gp.Patterns {
		target := name
		if p.anchored || strings.ContainsRune(p.glob, '/') {
			target = relPath
		}
		ok, err := Match(p.glob, target, gp.Flags|Wildstar|LeadingDir)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		ignored = !p.Not
		if !anyNeg {
			return true, nil
		}
	}
	return ignored, nil
}
