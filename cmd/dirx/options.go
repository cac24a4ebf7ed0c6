package main

import (
	"strings"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/picture"
	"github.com/chrisant996/dirx/pkg/config"
)

// cliFlags holds every bound flag variable flaggy registers in main.go.
// Fields are seeded from the resolved UserConfig (file + env already
// merged by pkg/config) and its Defaults preset before flaggy registers
// them, so flaggy.Parse() only has to overwrite a field when the user
// actually passed that flag — giving flags the final word over
// everything else, per spec.md §6's "later occurrences override earlier
// ones" extended across config sources.
type cliFlags struct {
	Wide    bool
	Bare    bool
	Recurse bool
	Depth   uint

	Vertical   bool
	Hyperlinks bool
	Classify   bool

	SkipHidden    bool
	SkipJunctions bool
	IncludeAttr   string
	ExcludeAttr   string

	PictureStr     string
	Justify        string
	Lowercase      bool
	SizeStyle      string
	TimeStyle      string
	TruncateChar   string
	Icons          bool
	IconSpacing    uint
	NerdFonts      uint
	Colors         string
	ColorScale     string
	ColorScaleMode string
	EscapeCodes    string
	GitIgnored     bool

	PrintConfig bool
	Debug       bool
}

// newCLIFlags seeds flag defaults from cfg, then layers the
// DIRX_DEFAULTS-style preset string on top (spec.md §6's "default preset
// flags").
func newCLIFlags(cfg *config.UserConfig) *cliFlags {
	f := &cliFlags{
		PictureStr:     cfg.Picture,
		Justify:        cfg.Justify,
		Lowercase:      cfg.Lowercase,
		SizeStyle:      cfg.SizeStyle,
		TimeStyle:      cfg.TimeStyle,
		TruncateChar:   cfg.TruncateChar,
		Icons:          cfg.Icons,
		IconSpacing:    uint(cfg.IconSpacing),
		NerdFonts:      uint(cfg.NerdFonts),
		Colors:         cfg.Colors,
		ColorScale:     cfg.ColorScale,
		ColorScaleMode: cfg.ColorScaleMode,
		EscapeCodes:    cfg.EscapeCodes,
		GitIgnored:     cfg.GitIgnored,
		SkipHidden:     true,
	}
	applyDefaultsPreset(cfg.Defaults, f)
	return f
}

// applyDefaultsPreset interprets a small letter-coded preset string (the
// original tool's DIRCMD-style environment default, generalized here to
// DIRX_DEFAULTS) as initial flag values: 'w' wide, 'b' bare, 's' recurse,
// 'v' vertical sort, 'h' hidden entries included, 'z' hyperlinks, 'c'
// classify suffixes. Unknown letters are ignored rather than rejected,
// since a preset string is advisory, not validated input.
func applyDefaultsPreset(defaults string, f *cliFlags) {
	for _, c := range defaults {
		switch c {
		case 'w':
			f.Wide = true
		case 'b':
			f.Bare = true
		case 's':
			f.Recurse = true
		case 'v':
			f.Vertical = true
		case 'h':
			f.SkipHidden = false
		case 'z':
			f.Hyperlinks = true
		case 'c':
			f.Classify = true
		}
	}
}

// mode resolves the display mode these flags request, bare taking
// precedence over wide when both are somehow set.
func (f *cliFlags) mode() displayMode {
	switch {
	case f.Bare:
		return modeBare
	case f.Wide:
		return modeWide
	default:
		return modeLong
	}
}

// applyTo folds every flag-backed field back onto cfg. Since the flag
// variables were seeded from cfg before registration (newCLIFlags) and
// flaggy.Parse() only overwrote the ones the user actually passed, this
// is a plain copy rather than a conditional merge — the precedence
// chain was already resolved by the seeding step.
func (f *cliFlags) applyTo(cfg *config.UserConfig) {
	cfg.Picture = f.PictureStr
	cfg.Justify = f.Justify
	cfg.Lowercase = f.Lowercase
	cfg.SizeStyle = f.SizeStyle
	cfg.TimeStyle = f.TimeStyle
	cfg.TruncateChar = f.TruncateChar
	cfg.Icons = f.Icons
	cfg.IconSpacing = int(f.IconSpacing)
	cfg.NerdFonts = int(f.NerdFonts)
	cfg.Colors = f.Colors
	cfg.ColorScale = f.ColorScale
	cfg.ColorScaleMode = f.ColorScaleMode
	cfg.EscapeCodes = f.EscapeCodes
	cfg.GitIgnored = f.GitIgnored
}

// defaultLongPicture is used when neither the config file nor a flag
// supplies an explicit picture string: mini size, relative time,
// filename, the same three columns a conventional directory listing
// leads with.
const defaultLongPicture = "Sm  Dr  F"

// defaultFATPicture is defaultLongPicture's FAT-forced variant (spec.md's
// "a FAT volume forces FAT list format"): the filename field gets the
// 'f' (8.3 fixed-field) style instead of auto width.
const defaultFATPicture = "Sm  Dr  Ff"

// pictureString resolves the raw template to parse: an explicit flag or
// config value wins, otherwise the mode-appropriate built-in default.
func (f *cliFlags) pictureString() string {
	if f.PictureStr != "" {
		return f.PictureStr
	}
	return defaultLongPicture
}

func (f *cliFlags) fatPictureString() string {
	if f.PictureStr != "" {
		return f.PictureStr
	}
	return defaultFATPicture
}

// attrSetFromLetters parses a compact attribute-letter string (e.g.
// "rhs") into direntry.Attr bits, for the include/exclude attribute
// filter flags.
func attrSetFromLetters(letters string) direntry.Attr {
	var attr direntry.Attr
	table := map[byte]direntry.Attr{
		'r': direntry.AttrReadonly, 'h': direntry.AttrHidden, 's': direntry.AttrSystem,
		'd': direntry.AttrDirectory, 'a': direntry.AttrArchive, 'e': direntry.AttrEncrypted,
		'p': direntry.AttrSparse, 't': direntry.AttrTemporary, 'c': direntry.AttrCompressed,
		'o': direntry.AttrOffline, 'i': direntry.AttrNotContentIndexed, 'l': direntry.AttrReparsePoint,
	}
	for i := 0; i < len(letters); i++ {
		if bit, ok := table[letters[i]]; ok {
			attr |= bit
		}
	}
	return attr
}

// needsGit reports whether p's field list includes a Git-repo or
// Git-file column, so the caller only pays for `git status` when the
// chosen picture actually asks for it.
func needsGit(p *picture.Picture) bool {
	for i := range p.Fields {
		if p.Fields[i].Kind == picture.KindGitRepo || p.Fields[i].Kind == picture.KindGitFile {
			return true
		}
	}
	return false
}

func truncateGlyph(s string) rune {
	for _, r := range s {
		return r
	}
	return '…'
}

func escapeCodesEnabled(mode string, isTTY bool) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTTY
	}
}
