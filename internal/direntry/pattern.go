package direntry

// Pattern is one resolved command-line pattern: a directory plus the
// sibling glob patterns that share it, coalesced so a header/footer
// prints once per directory even when several command-line arguments
// target the same place (spec.md §3).
type Pattern struct {
	Dir      string
	Siblings []string

	// ImplicitWildcard is set when the user gave a bare directory (no
	// glob metacharacters), which implicitly expands to "dir/*".
	ImplicitWildcard bool

	// Ignore is the per-pattern ignore-glob list, consulted in addition
	// to any discovered .gitignore.
	Ignore []string

	// RepoRoot is the Git repository root for Dir, if any, resolved once
	// up front so internal/gitstatus only runs `git status` per repo
	// rather than per pattern.
	RepoRoot string
}

// CoalescePatterns groups resolved patterns by directory, merging
// sibling glob lists so each distinct directory appears once in the
// returned slice, in first-seen order.
func CoalescePatterns(patterns []Pattern) []Pattern {
	index := map[string]int{}
	var out []Pattern
	for _, p := range patterns {
		if i, ok := index[p.Dir]; ok {
			out[i].Siblings = append(out[i].Siblings, p.Siblings...)
			out[i].Ignore = append(out[i].Ignore, p.Ignore...)
			if p.ImplicitWildcard {
				out[i].ImplicitWildcard = true
			}
			continue
		}
		index[p.Dir] = len(out)
		out = append(out, p)
	}
	return out
}
