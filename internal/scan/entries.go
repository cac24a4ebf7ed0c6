package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/globmatch"
)

// listEntries reads dir and returns the entries matching any of
// siblings (case-folded fnmatch; an empty siblings list matches
// everything), skipping names the ignore list or the attribute filters
// exclude. Matching is case-insensitive and deduplicates by folded
// name, so two sibling patterns that both hit "Foo.txt" only produce
// one entry (spec.md §4.6's "deduplicate by filename").
func listEntries(dir string, siblings []string, ignore *globmatch.GlobPatterns, opts Options) ([]*direntry.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	dirents = lo.UniqBy(dirents, func(de os.DirEntry) string {
		return strings.ToLower(de.Name())
	})

	if len(siblings) > 0 {
		dirents = lo.Filter(dirents, func(de os.DirEntry, _ int) bool {
			return matchesAny(siblings, de.Name())
		})
	}

	// Vanished-between-ReadDir-and-Info entries (a race with another
	// process) are dropped rather than failing the whole listing.
	entries := lo.FilterMap(dirents, func(de os.DirEntry, _ int) (*direntry.Entry, bool) {
		info, err := de.Info()
		if err != nil {
			return nil, false
		}
		return entryFromInfo(dir, de.Name(), info), true
	})

	entries = lo.Filter(entries, func(e *direntry.Entry, _ int) bool {
		if opts.SkipHidden && e.Attr&direntry.AttrHidden != 0 {
			return false
		}
		if ignore != nil {
			if ign, _ := ignore.Match(e.Name, e.IsDir()); ign {
				return false
			}
		}
		return passesAttrFilters(e, opts)
	})

	return entries, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, pat := range patterns {
		if ok, _ := globmatch.Match(pat, name, globmatch.CaseFold); ok {
			return true
		}
	}
	return false
}

func passesAttrFilters(e *direntry.Entry, opts Options) bool {
	if opts.AttrExcludeAny != 0 && e.Attr&opts.AttrExcludeAny != 0 {
		return false
	}
	if opts.AttrIncludeAny != 0 && e.Attr&opts.AttrIncludeAny == 0 {
		return false
	}
	if opts.AttrMatchAll != 0 && e.Attr&opts.AttrMatchAll != opts.AttrMatchAll {
		return false
	}
	return true
}

func entryFromInfo(dir, name string, info fs.FileInfo) *direntry.Entry {
	e := &direntry.Entry{
		Name:     name,
		Dir:      dir,
		Modified: info.ModTime(),
	}

	mode := info.Mode()
	if mode.IsDir() {
		e.Attr |= direntry.AttrDirectory
	}
	if mode&os.ModeSymlink != 0 {
		e.Attr |= direntry.AttrReparsePoint
		if _, err := filepath.EvalSymlinks(filepath.Join(dir, name)); err != nil {
			e.OrphanedReparse = true
		}
	}
	if isHiddenName(name) {
		e.Attr |= direntry.AttrHidden
	}
	if !mode.IsDir() {
		e.LogicalSize = info.Size()
		e.AllocationSize = info.Size()
	}

	// io/fs.FileInfo exposes only ModTime; access/creation times need a
	// platform-specific stat (syscall.Stat_t, GetFileTime) with no
	// portable stdlib equivalent, so both fall back to Modified.
	e.Accessed = e.Modified
	e.Created = e.Modified

	return e
}

func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// listSubdirs returns the subdirectory names of dir, alphabetically
// sorted, honoring the hidden/junction skip flags before the caller
// ever enqueues them (spec.md §4.6's "Depth control").
func listSubdirs(dir string, opts Options) ([]string, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(dirents))
	for _, de := range dirents {
		if !de.IsDir() && de.Type()&os.ModeSymlink == 0 {
			continue
		}
		name := de.Name()
		if opts.SkipHidden && isHiddenName(name) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}
		isSymlink := info.Mode()&os.ModeSymlink != 0
		if isSymlink {
			if opts.SkipJunctions {
				continue
			}
			target, err := filepath.EvalSymlinks(filepath.Join(dir, name))
			if err != nil {
				continue // dangling symlink, nothing to recurse into
			}
			targetInfo, err := os.Stat(target)
			if err != nil || !targetInfo.IsDir() {
				continue
			}
		} else if !info.IsDir() {
			continue
		}

		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
