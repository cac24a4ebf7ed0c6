package main

import (
	"time"

	"github.com/chrisant996/dirx/internal/colorrule"
	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/globmatch"
	"github.com/chrisant996/dirx/pkg/config"
)

// defaultColorRules is the built-in rule set loaded when UserConfig.Colors
// is left at its default "*" (spec.md §4.2: "a bare '*' loads nothing
// here, callers wire built-in defaults themselves"). It mirrors a
// conventional LS_COLORS-style baseline: directories blue-bold, reparse
// points cyan, executables green, archives red, and a handful of content
// categories by extension flag.
const defaultColorRules = "di=01;34:ln=01;36:or=01;31:ro=37:hi=90:" +
	"ex=01;32:do=33:im=35:vi=35:mu=35:co=31:sc=32:bu=33:cr=33:tm=90"

// buildColorTable parses cfg's color rules (or the built-in defaults)
// into a lookup table, folding PATHEXT into the executable flag set the
// way spec.md §4.2 describes ("the ex category auto-imports PATHEXT").
func buildColorTable(cfg *config.UserConfig, pathext string) (*colorrule.Table, []error) {
	t := colorrule.NewTable()
	rules := cfg.Colors
	if rules == "" || rules == "*" {
		rules = defaultColorRules
	}
	errs := colorrule.ParseRules(t, rules)
	if pathext != "" {
		colorrule.FoldPathext(pathext)
	}
	return t, errs
}

func matchGlobCaseFold(pattern, name string) bool {
	ok, err := globmatch.Match(pattern, name, globmatch.CaseFold)
	if err != nil {
		return false
	}
	return ok
}

// colorScaleFromConfig translates the "none"/"size"/"time"/"all" knob
// into the bitset internal/colorrule.ApplyGradient's caller needs to
// decide which fields opt into the scale.
func colorScaleFromConfig(cfg *config.UserConfig) colorrule.Scale {
	switch cfg.ColorScale {
	case "size":
		return colorrule.ScaleSize
	case "time":
		return colorrule.ScaleTime
	case "all":
		return colorrule.ScaleSize | colorrule.ScaleTime
	default:
		return colorrule.ScaleNone
	}
}

// ansiBaseColors maps the small set of standard/bright SGR foreground
// codes this tool's built-in rules and most user LS_COLORS-style strings
// use into an approximate RGB seed for the gradient remap. An SGR string
// outside this table (256-color or already-truecolor) falls back to a
// mid-gray seed rather than failing the gradient outright.
var ansiBaseColors = map[string]colorrule.RGB{
	"30": {R: 0, G: 0, B: 0}, "31": {R: 170, G: 0, B: 0},
	"32": {R: 0, G: 170, B: 0}, "33": {R: 170, G: 85, B: 0},
	"34": {R: 0, G: 0, B: 170}, "35": {R: 170, G: 0, B: 170},
	"36": {R: 0, G: 170, B: 170}, "37": {R: 170, G: 170, B: 170},
	"90": {R: 85, G: 85, B: 85}, "91": {R: 255, G: 85, B: 85},
	"92": {R: 85, G: 255, B: 85}, "93": {R: 255, G: 255, B: 85},
	"94": {R: 85, G: 85, B: 255}, "95": {R: 255, G: 85, B: 255},
	"96": {R: 85, G: 255, B: 255}, "97": {R: 255, G: 255, B: 255},
}

func baseRGBForSGR(sgr string) colorrule.RGB {
	for _, field := range splitSGR(sgr) {
		if rgb, ok := ansiBaseColors[field]; ok {
			return rgb
		}
	}
	return colorrule.RGB{R: 170, G: 170, B: 170}
}

func splitSGR(sgr string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(sgr); i++ {
		if i == len(sgr) || sgr[i] == ';' {
			if i > start {
				out = append(out, sgr[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// gradientEntryColorFunc wraps base with the luminance-gradient
// post-processing step (spec.md §4.2's "Gradient" paragraph): it scans
// entries once for the min/max size and/or modified time this directory
// listing covers, then remaps each resolved color's luminance toward
// cfg's configured minimum by the entry's normalized position in that
// range. "fixed" mode skips the remap and returns base's color as-is,
// matching the simpler of the two color-scale-mode knobs.
func gradientEntryColorFunc(base func(e *direntry.Entry) string, entries []*direntry.Entry, cfg *config.UserConfig) func(e *direntry.Entry) string {
	scale := colorScaleFromConfig(cfg)
	if scale == colorrule.ScaleNone || cfg.ColorScaleMode == "fixed" || len(entries) == 0 {
		return base
	}

	var minSize, maxSize int64
	var minTime, maxTime time.Time
	minSize, maxSize = entries[0].LogicalSize, entries[0].LogicalSize
	minTime, maxTime = entries[0].Modified, entries[0].Modified
	for _, e := range entries[1:] {
		if e.LogicalSize < minSize {
			minSize = e.LogicalSize
		}
		if e.LogicalSize > maxSize {
			maxSize = e.LogicalSize
		}
		if e.Modified.Before(minTime) {
			minTime = e.Modified
		}
		if e.Modified.After(maxTime) {
			maxTime = e.Modified
		}
	}

	minLuminance := cfg.NormalizedMinLuminance()

	return func(e *direntry.Entry) string {
		sgr := base(e)
		if sgr == "" {
			return sgr
		}
		rgb := baseRGBForSGR(sgr)
		switch {
		case scale&colorrule.ScaleSize != 0 && !e.IsDir():
			return sgr + ";" + colorrule.ApplyGradient(rgb, e.LogicalSize, minSize, maxSize, minLuminance)
		case scale&colorrule.ScaleTime != 0:
			return sgr + ";" + colorrule.ApplyGradient(rgb, e.Modified.Unix(), minTime.Unix(), maxTime.Unix(), minLuminance)
		default:
			return sgr
		}
	}
}
