package colorrule

// EntryInfo is the minimal view of a filesystem entry the cascade needs;
// internal/direntry.Entry is adapted to this shape by the scan driver.
type EntryInfo struct {
	Name            string
	Attr            Attr
	OrphanedReparse bool
}

// MatchGlob is injected by the caller so this package doesn't need to
// depend on internal/globmatch directly (it only needs "does this glob
// match this name").
type MatchGlob func(pattern, name string) bool

// Lookup resolves an entry to its SGR color string by deriving its
// category and content flags and walking Table's cascade, per spec.md
// §4.2 steps 1-4.
func (t *Table) Lookup(e EntryInfo, matchGlob MatchGlob) string {
	cat := CategoryForAttr(e.Attr, e.OrphanedReparse)
	flags := FlagsForName(e.Name)
	isDir := e.Attr&AttrDirectory != 0
	return t.Resolve(cat, e.Attr, flags, isDir, e.OrphanedReparse, e.Name, matchGlob)
}
