package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chrisant996/dirx/internal/colorrule"
	"github.com/chrisant996/dirx/internal/columns"
	"github.com/chrisant996/dirx/internal/console"
	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/gitstatus"
	"github.com/chrisant996/dirx/internal/picture"
	"github.com/chrisant996/dirx/internal/wcwidth"
	"github.com/chrisant996/dirx/pkg/config"
)

// displayMode selects how a directory's entries are laid out, per
// spec.md §6's "display mode" flag category.
type displayMode int

const (
	modeLong displayMode = iota // one entry per line through the picture engine
	modeWide                    // colorized names packed into a column grid
	modeBare                    // names only, one per line, no color or header
)

// renderOptions is the fixed, per-run configuration a renderer needs;
// everything that varies per directory (entries, Git status, FAT-ness)
// arrives through the scan.RenderFunc call instead.
type renderOptions struct {
	Mode     displayMode
	Picture  *picture.Picture
	// FATPicture, if set, replaces Picture for a directory the scan
	// driver reports as a FAT volume, per spec.md's "a FAT volume forces
	// FAT list format unless explicitly overridden" rule.
	FATPicture *picture.Picture
	Table      *colorrule.Table
	Context    *picture.Context
	UserCfg    *config.UserConfig
	Vertical   bool
	Padding    int
	MaxWidth   int
	Classify   bool
}

// renderer wires one internal/scan.RenderFunc against the resolved
// picture, color table, and terminal geometry for a single run.
type renderer struct {
	w           io.Writer
	opts        renderOptions
	namePicture *picture.Picture
}

func newRenderer(w io.Writer, opts renderOptions) *renderer {
	namePicture, _ := picture.Parse("F")
	return &renderer{w: w, opts: opts, namePicture: namePicture}
}

// RenderFunc satisfies internal/scan.RenderFunc.
func (r *renderer) RenderFunc(dir string, entries []*direntry.Entry, repo *gitstatus.RepoStatus, isFAT bool) {
	if len(entries) == 0 {
		return
	}

	ctx := *r.opts.Context
	ctx.GitFile = gitFileFunc(repo)
	ctx.GitRepo = gitRepoFunc(repo)
	ctx.Color = gradientEntryColorFunc(r.baseColor, entries, r.opts.UserCfg)

	pic := r.opts.Picture
	if isFAT && r.opts.FATPicture != nil {
		pic = r.opts.FATPicture
	}

	console.Guarded(func() {
		switch r.opts.Mode {
		case modeBare:
			r.renderBare(entries)
		case modeWide:
			r.renderWide(entries, &ctx)
		default:
			r.renderLong(pic, entries, &ctx)
		}
	})
}

func (r *renderer) baseColor(e *direntry.Entry) string {
	if r.opts.Table == nil {
		return ""
	}
	info := colorrule.EntryInfo{
		Name:            e.Name,
		Attr:            colorrule.Attr(e.Attr),
		OrphanedReparse: e.OrphanedReparse,
	}
	return r.opts.Table.Lookup(info, matchGlobCaseFold)
}

// gitFileFunc and gitRepoFunc build the picture engine's Git hooks
// directly from the RepoStatus the scan driver already fetched once per
// directory, rather than asking internal/gitstatus.Runner to look the
// directory up a second time through its own Status call.
func gitFileFunc(repo *gitstatus.RepoStatus) picture.GitFileFunc {
	return func(e *direntry.Entry) (staged, working byte, ok bool) {
		if repo == nil || !repo.Repo {
			return 0, 0, false
		}
		fs, found := repo.Lookup(e.Path())
		if !found {
			return '-', '-', true
		}
		return fs.Staged.Symbol(), fs.Working.Symbol(), true
	}
}

func gitRepoFunc(repo *gitstatus.RepoStatus) picture.GitRepoFunc {
	return func(dir string) (isRepo, dirty bool, branch string) {
		if repo == nil {
			return false, false, ""
		}
		return repo.Repo, !repo.Clean, repo.Branch
	}
}

// renderLong drives the two-pass Observe/Settle protocol for an ordinary
// one-entry-per-line listing (spec.md §4.4), skipping the first pass
// entirely when every field already has a fixed width.
func (r *renderer) renderLong(pic *picture.Picture, entries []*direntry.Entry, ctx *picture.Context) {
	if !pic.Immediate() {
		st := picture.NewWidthState()
		for _, e := range entries {
			pic.ObserveEntry(st, e, ctx)
		}
		pic.Settle(st, r.opts.MaxWidth)
	}
	for _, e := range entries {
		fmt.Fprintln(r.w, pic.Render(e, ctx))
	}
}

// renderBare prints names only, one per line, uncolored, suitable for
// piping into another command (spec.md's supplemented "--bare" mode).
func (r *renderer) renderBare(entries []*direntry.Entry) {
	for _, e := range entries {
		name := e.Name
		if r.opts.Classify {
			switch {
			case e.IsDir():
				name += "/"
			case e.IsSymlink():
				name += "@"
			}
		}
		fmt.Fprintln(r.w, name)
	}
}

// renderWide packs colorized filenames into the widest column grid that
// fits MaxWidth, via internal/columns (spec.md's column-packer
// contract).
func (r *renderer) renderWide(entries []*direntry.Entry, ctx *picture.Context) {
	texts := make([]string, len(entries))
	widths := make([]int, len(entries))
	for i, e := range entries {
		texts[i] = r.namePicture.Render(e, ctx)
		if r.opts.Classify {
			switch {
			case e.IsDir():
				texts[i] += "/"
			case e.IsSymlink():
				texts[i] += "@"
			}
		}
		widths[i] = wcwidth.VisibleWidth(texts[i])
	}

	layout := columns.Calculate(func(i int) int { return widths[i] }, len(entries), r.opts.Vertical, r.opts.Padding, r.opts.MaxWidth, 0)
	if len(layout) == 0 {
		for _, t := range texts {
			fmt.Fprintln(r.w, t)
		}
		return
	}

	k := len(layout)
	if r.opts.Vertical {
		stride := (len(entries) + k - 1) / k
		for row := 0; row < stride; row++ {
			var line strings.Builder
			for col := 0; col < k; col++ {
				i := col*stride + row
				if i >= len(entries) {
					continue
				}
				r.writeCell(&line, texts[i], layout[col], col == k-1)
			}
			fmt.Fprintln(r.w, strings.TrimRight(line.String(), " "))
		}
		return
	}

	for i := 0; i < len(entries); i += k {
		var line strings.Builder
		for col := 0; col < k && i+col < len(entries); col++ {
			idx := i + col
			r.writeCell(&line, texts[idx], layout[col], col == k-1 || idx == len(entries)-1)
		}
		fmt.Fprintln(r.w, strings.TrimRight(line.String(), " "))
	}
}

func (r *renderer) writeCell(line *strings.Builder, text string, width int, last bool) {
	if last {
		line.WriteString(text)
		return
	}
	w := wcwidth.VisibleWidth(text)
	line.WriteString(text)
	if w < width {
		line.WriteString(strings.Repeat(" ", width-w))
	}
	line.WriteString(strings.Repeat(" ", r.opts.Padding))
}
