package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/errs"
	"github.com/chrisant996/dirx/internal/globmatch"
	"github.com/chrisant996/dirx/internal/gitstatus"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func TestListEntriesMatchesSiblingGlobs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.go")
	touch(t, dir, "b.txt")

	entries, err := listEntries(dir, []string{"*.go"}, nil, Options{})
	if err != nil {
		t.Fatalf("listEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "a.go" {
		t.Fatalf("entries = %+v, want just a.go", entries)
	}
}

func TestListEntriesSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "visible.txt")
	touch(t, dir, ".hidden")

	entries, err := listEntries(dir, nil, nil, Options{SkipHidden: true})
	if err != nil {
		t.Fatalf("listEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "visible.txt" {
		t.Fatalf("entries = %+v, want just visible.txt", entries)
	}
}

func TestListEntriesAppliesIgnoreGlobs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "keep.go")
	touch(t, dir, "generated.go")

	ignore := globmatch.NewGlobPatterns(dir, []string{"generated.go"}, globmatch.CaseFold)
	entries, err := listEntries(dir, nil, ignore, Options{})
	if err != nil {
		t.Fatalf("listEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "keep.go" {
		t.Fatalf("entries = %+v, want just keep.go", entries)
	}
}

func TestListEntriesDirectoryAttribute(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "file.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	entries, err := listEntries(dir, nil, nil, Options{})
	if err != nil {
		t.Fatalf("listEntries: %v", err)
	}
	var gotDir, gotFile bool
	for _, e := range entries {
		switch e.Name {
		case "sub":
			gotDir = e.IsDir()
		case "file.txt":
			gotFile = !e.IsDir()
		}
	}
	if !gotDir || !gotFile {
		t.Fatalf("entries = %+v, expected one dir and one file with correct Attr", entries)
	}
}

func TestListSubdirsSortedAndSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", ".dot"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatalf("Mkdir(%s): %v", name, err)
		}
	}
	touch(t, dir, "notadir.txt")

	names, err := listSubdirs(dir, Options{SkipHidden: true})
	if err != nil {
		t.Fatalf("listSubdirs: %v", err)
	}
	want := []string{"alpha", "zeta"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Fatalf("listSubdirs = %v, want %v", names, want)
	}
}

func newTestDriver(renderDir RenderFunc) (d *Driver, volBegins, volEnds *int, totals *Totals) {
	begins, ends := 0, 0
	var last Totals
	d = &Driver{
		OnVolumeBegin: func(dir string) { begins++ },
		OnVolumeEnd: func(dir string, t Totals) {
			ends++
			last = t
		},
		RenderDir: renderDir,
	}
	return d, &begins, &ends, &last
}

func TestDriverRunSingleDirectoryRendersAndTotals(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")
	touch(t, dir, "b.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	var renderedDirs []string
	var renderedCount int
	d, volBegins, volEnds, totals := newTestDriver(func(dir string, entries []*direntry.Entry, repo *gitstatus.RepoStatus, isFAT bool) {
		renderedDirs = append(renderedDirs, dir)
		renderedCount = len(entries)
	})

	if err := d.Run(context.Background(), []direntry.Pattern{{Dir: dir}}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if *volBegins != 1 || *volEnds != 1 {
		t.Fatalf("volBegins=%d volEnds=%d, want 1 and 1", *volBegins, *volEnds)
	}
	if len(renderedDirs) != 1 || renderedDirs[0] != dir {
		t.Fatalf("renderedDirs = %v, want [%s]", renderedDirs, dir)
	}
	if renderedCount != 3 {
		t.Fatalf("renderedCount = %d, want 3", renderedCount)
	}
	if totals.Files != 2 || totals.Dirs != 1 {
		t.Fatalf("totals = %+v, want Files=2 Dirs=1 (one subdirectory entry, not one per listing)", *totals)
	}
}

func TestDriverRunRecursesWithDepthLimit(t *testing.T) {
	root := t.TempDir()
	sub1 := filepath.Join(root, "sub1")
	sub2 := filepath.Join(sub1, "sub2")
	if err := os.MkdirAll(sub2, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	touch(t, root, "root.txt")
	touch(t, sub1, "one.txt")
	touch(t, sub2, "two.txt")

	var renderedDirs []string
	d, _, _, _ := newTestDriver(func(dir string, entries []*direntry.Entry, repo *gitstatus.RepoStatus, isFAT bool) {
		renderedDirs = append(renderedDirs, dir)
	})
	d.Options = Options{Recurse: true, LimitDepth: 1}

	if err := d.Run(context.Background(), []direntry.Pattern{{Dir: root}}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(renderedDirs) != 2 {
		t.Fatalf("renderedDirs = %v, want exactly root and sub1 (depth limit 1)", renderedDirs)
	}
	for _, rd := range renderedDirs {
		if rd == sub2 {
			t.Fatalf("sub2 should not have been visited with LimitDepth=1: %v", renderedDirs)
		}
	}
}

func TestDriverRunMissingDirectorySolePattern(t *testing.T) {
	d, _, _, _ := newTestDriver(nil)
	err := d.Run(context.Background(), []direntry.Pattern{{Dir: filepath.Join(t.TempDir(), "does-not-exist")}})
	if err == nil {
		t.Fatal("Run: expected an error for a missing sole pattern")
	}
	e, ok := err.(*errs.Error)
	if !ok {
		t.Fatalf("err = %T, want *errs.Error", err)
	}
	if e.Kind() != errs.KindFileNotFound {
		t.Errorf("Kind() = %v, want KindFileNotFound", e.Kind())
	}
}

func TestDriverRunMissingDirectoryAmongManyReportsAndContinues(t *testing.T) {
	good := t.TempDir()
	touch(t, good, "present.txt")
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	var reports int
	var rendered []string
	d, _, _, _ := newTestDriver(func(dir string, entries []*direntry.Entry, repo *gitstatus.RepoStatus, isFAT bool) {
		rendered = append(rendered, dir)
	})
	d.Report = func(err error) { reports++ }

	err := d.Run(context.Background(), []direntry.Pattern{{Dir: missing}, {Dir: good}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if reports != 1 {
		t.Errorf("reports = %d, want 1", reports)
	}
	if len(rendered) != 1 || rendered[0] != good {
		t.Fatalf("rendered = %v, want [%s]", rendered, good)
	}
}

func TestVolumeKeyDefaultAndFATStub(t *testing.T) {
	if IsFATVolume("/anything") {
		t.Error("IsFATVolume default should be false")
	}
	// VolumeKey is a thin wrapper over filepath.VolumeName; on a
	// single-root platform it is always empty, so equal paths compare
	// equal.
	if VolumeKey("/a/b") != VolumeKey("/c/d") {
		t.Error("VolumeKey should agree for two single-root paths")
	}
}
