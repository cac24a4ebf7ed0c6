package scan

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/errs"
	"github.com/chrisant996/dirx/internal/globmatch"
	"github.com/chrisant996/dirx/internal/gitstatus"
)

// Options controls the scan driver's traversal and filtering behavior.
type Options struct {
	// Recurse enables breadth-first-within-depth subdirectory descent.
	Recurse bool
	// LimitDepth caps recursion depth; 0 means unlimited.
	LimitDepth uint
	// SkipHidden excludes dot-prefixed names from both file listings
	// and subdirectory recursion.
	SkipHidden bool
	// SkipJunctions excludes symlinked directories from recursion.
	SkipJunctions bool
	// ForceNonFAT suppresses the FAT-forces-FAT-format rule even when
	// IsFATVolume reports true for a pattern's directory.
	ForceNonFAT bool

	AttrExcludeAny direntry.Attr
	AttrIncludeAny direntry.Attr
	AttrMatchAll   direntry.Attr

	// Sort orders one directory's entries in place. A nil Sort falls
	// back to a stable case-insensitive name sort.
	Sort func([]*direntry.Entry)

	NeedGit        bool
	NeedIgnoredGit bool
}

// Reporter receives non-fatal, per-entry failures encountered during a
// scan (access denied mid-recursion, a broken reparse point); the
// driver calls it and keeps iterating rather than aborting (spec.md
// §4.6's "Failure semantics").
type Reporter func(err error)

// RenderFunc receives one fully enumerated, sorted directory's worth of
// entries so the caller's picture layer can choose between an
// immediate single-pass render and the two-pass width Observe/Settle
// render (spec.md §4.6's DirectoryEnd finalization). repo is nil when
// the directory isn't under a repository or Git lookups weren't
// requested.
type RenderFunc func(dir string, entries []*direntry.Entry, repo *gitstatus.RepoStatus, isFAT bool)

// Driver walks a coalesced pattern list, tracking volume boundaries
// and recursing into subdirectories up to Options.LimitDepth,
// delegating rendering to RenderDir and Git lookups to Git.
type Driver struct {
	Options Options
	Git     *gitstatus.Runner
	Report  Reporter

	OnVolumeBegin func(dir string)
	OnVolumeEnd   func(dir string, totals Totals)
	RenderDir     RenderFunc

	totals Totals
}

type subdirJob struct {
	dir   string
	depth uint
}

// Run walks patterns in pattern-list order, emitting a volume header
// each time the volume changes and a footer for the previous volume when
// it produced any entries (spec.md §4.6's state machine: Idle →
// VolumeBegin → DirectoryBegin → (File)* → DirectoryEnd [↘ AddSubDir →
// recurse] → VolumeEnd → Idle). It returns a non-nil error only when the
// pattern list holds a single pattern and that pattern's directory
// cannot be opened; every other per-entry or per-pattern failure is
// routed through Report and the walk continues.
func (d *Driver) Run(ctx context.Context, patterns []direntry.Pattern) error {
	var prevVolume string
	inVolume := false
	anyFoundThisVolume := false

	endVolume := func() {
		if !inVolume {
			return
		}
		if anyFoundThisVolume && d.OnVolumeEnd != nil {
			d.OnVolumeEnd(prevVolume, d.totals)
		}
		inVolume = false
		d.totals = Totals{}
	}

	for i := range patterns {
		p := &patterns[i]

		vol := VolumeKey(p.Dir)
		if !inVolume || vol != prevVolume {
			endVolume()
			if d.OnVolumeBegin != nil {
				d.OnVolumeBegin(p.Dir)
			}
			inVolume = true
			anyFoundThisVolume = false
			prevVolume = vol
		}

		found, err := d.scanPattern(ctx, p)
		if found {
			anyFoundThisVolume = true
		}
		if err != nil {
			if len(patterns) == 1 {
				return errs.Newf("The system cannot find the directory %1.").Arg(p.Dir).WithKind(errs.KindFileNotFound).WithCode(1)
			}
			if d.Report != nil {
				d.Report(errs.Newf("%1: no such directory").Arg(p.Dir).WithKind(errs.KindFileNotFound))
			}
		}
	}

	endVolume()
	return nil
}

// scanPattern enumerates p.Dir and, when Options.Recurse is set, its
// subdirectories up to Options.LimitDepth. It returns (true, nil) if
// any directory in the walk produced entries, and a non-nil error only
// when the pattern's own top-level directory could not be opened.
func (d *Driver) scanPattern(ctx context.Context, p *direntry.Pattern) (bool, error) {
	ignore := globmatch.NewGlobPatterns(p.Dir, p.Ignore, globmatch.CaseFold)
	isFAT := !d.Options.ForceNonFAT && IsFATVolume(p.Dir)

	queue := []subdirJob{{dir: p.Dir, depth: 0}}
	anyFound := false

	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		entries, err := listEntries(job.dir, p.Siblings, ignore, d.Options)
		if err != nil {
			if job.depth == 0 {
				return anyFound, err
			}
			// ERROR_FILE_NOT_FOUND / ERROR_ACCESS_DENIED are absorbed
			// silently during recursion (spec.md §4.6); anything else
			// is reported but doesn't abort sibling subdirectories.
			if !isNotExist(err) && !isPermission(err) {
				if d.Report != nil {
					d.Report(errs.Wrap(err, "%1").Arg(job.dir))
				}
			}
			continue
		}

		if len(entries) > 0 {
			anyFound = true
			d.accumulate(entries)
		}

		sortEntries(entries, d.Options.Sort)

		var repo *gitstatus.RepoStatus
		if d.Options.NeedGit && d.Git != nil {
			repo, _ = d.Git.Status(ctx, job.dir, d.Options.NeedIgnoredGit)
		}

		if d.RenderDir != nil && len(entries) > 0 {
			d.RenderDir(job.dir, entries, repo, isFAT)
		}

		if !d.Options.Recurse {
			continue
		}

		newDepth := job.depth + 1
		if d.Options.LimitDepth > 0 && newDepth > d.Options.LimitDepth {
			continue
		}

		names, err := listSubdirs(job.dir, d.Options)
		if err != nil {
			if !isNotExist(err) && !isPermission(err) && d.Report != nil {
				d.Report(errs.Wrap(err, "%1").Arg(job.dir))
			}
			continue
		}
		for _, name := range names {
			queue = append(queue, subdirJob{dir: filepath.Join(job.dir, name), depth: newDepth})
		}
	}

	return anyFound, nil
}

func (d *Driver) accumulate(entries []*direntry.Entry) {
	for _, e := range entries {
		if e.IsDir() {
			d.totals.Dirs++
			continue
		}
		d.totals.Files++
		d.totals.Bytes += e.LogicalSize
	}
}

func sortEntries(entries []*direntry.Entry, custom func([]*direntry.Entry)) {
	if custom != nil {
		custom(entries)
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func isPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
