package picture

import (
	"time"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/locale"
)

// ColorFunc resolves an entry's validated SGR parameter string (or "" for
// no color), decoupling this package from internal/colorrule the same way
// colorrule.MatchGlob decouples colorrule from internal/globmatch.
type ColorFunc func(e *direntry.Entry) string

// GitFileFunc reports the two-character Git working-tree state for an
// entry (staged, working) when it is tracked inside a repository.
type GitFileFunc func(e *direntry.Entry) (staged, working byte, ok bool)

// GitRepoFunc reports a directory's Git repo status: whether it is a
// repo at all, whether the working tree is dirty, and its branch name.
type GitRepoFunc func(dir string) (isRepo, dirty bool, branch string)

// Context bundles everything the renderer needs beyond the Picture
// itself and the entry being rendered: locale-sensitive formatting,
// color resolution, Git state, and the run's fixed formatting options.
type Context struct {
	Locale *locale.Locale
	Now    time.Time

	Color   ColorFunc
	GitFile GitFileFunc
	GitRepo GitRepoFunc

	Lowercase         bool
	FullPath          bool
	TruncateGlyph     rune
	AttrBlank         byte
	HyperlinksEnabled bool
	MiniSizeUnits     bool
}

// DefaultContext returns a Context with the non-nil defaults every
// renderer call assumes (a nil Color/GitFile/GitRepo is valid and simply
// means "field unavailable, render blank").
func DefaultContext(loc *locale.Locale) *Context {
	return &Context{
		Locale:        loc,
		Now:           time.Now(),
		TruncateGlyph: '…',
		AttrBlank:     '_',
	}
}
