package main

import (
	"testing"
	"time"

	"github.com/chrisant996/dirx/internal/colorrule"
	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/pkg/config"
)

func TestBuildColorTableFallsBackToDefaultsOnStar(t *testing.T) {
	cfg := &config.UserConfig{Colors: "*"}
	table, errs := buildColorTable(cfg, "")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	info := direntry.Attr(direntry.AttrDirectory)
	sgr := table.Lookup(colorrule.EntryInfo{Name: "somedir", Attr: colorrule.Attr(info)}, matchGlobCaseFold)
	if sgr == "" {
		t.Error("built-in defaults should color a directory entry")
	}
}

func TestMatchGlobCaseFold(t *testing.T) {
	if !matchGlobCaseFold("*.GO", "main.go") {
		t.Error("matchGlobCaseFold should fold case")
	}
	if matchGlobCaseFold("*.txt", "main.go") {
		t.Error("matchGlobCaseFold should not match a different extension")
	}
}

func TestColorScaleFromConfig(t *testing.T) {
	cases := map[string]colorrule.Scale{
		"":     colorrule.ScaleNone,
		"none": colorrule.ScaleNone,
		"size": colorrule.ScaleSize,
		"time": colorrule.ScaleTime,
		"all":  colorrule.ScaleSize | colorrule.ScaleTime,
	}
	for in, want := range cases {
		if got := colorScaleFromConfig(&config.UserConfig{ColorScale: in}); got != want {
			t.Errorf("colorScaleFromConfig(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBaseRGBForSGR(t *testing.T) {
	if rgb := baseRGBForSGR("01;34"); rgb != (colorrule.RGB{R: 0, G: 0, B: 170}) {
		t.Errorf("baseRGBForSGR(\"01;34\") = %+v, want blue", rgb)
	}
	if rgb := baseRGBForSGR("38;2;9;9;9"); rgb == (colorrule.RGB{}) {
		t.Errorf("baseRGBForSGR should fall back to a non-zero gray for unknown codes, got %+v", rgb)
	}
}

func TestSplitSGR(t *testing.T) {
	got := splitSGR("01;34;40")
	want := []string{"01", "34", "40"}
	if len(got) != len(want) {
		t.Fatalf("splitSGR = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitSGR[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGradientEntryColorFuncSkipsWhenModeFixed(t *testing.T) {
	base := func(e *direntry.Entry) string { return "01;34" }
	entries := []*direntry.Entry{{Name: "a", LogicalSize: 1}, {Name: "b", LogicalSize: 100}}
	cfg := &config.UserConfig{ColorScale: "size", ColorScaleMode: "fixed"}
	fn := gradientEntryColorFunc(base, entries, cfg)
	if fn(entries[0]) != "01;34" {
		t.Error("fixed mode should pass the base color through unchanged")
	}
}

func TestGradientEntryColorFuncAppliesScaleForSize(t *testing.T) {
	base := func(e *direntry.Entry) string { return "01;32" }
	entries := []*direntry.Entry{
		{Name: "a", LogicalSize: 0, Modified: time.Unix(0, 0)},
		{Name: "b", LogicalSize: 1000, Modified: time.Unix(1000, 0)},
	}
	cfg := &config.UserConfig{ColorScale: "size", ColorScaleMode: "gradient"}
	fn := gradientEntryColorFunc(base, entries, cfg)
	got := fn(entries[1])
	if got == "01;32" {
		t.Error("gradient mode should remap the base color, not pass it through")
	}
}
