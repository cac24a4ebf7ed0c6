// Package config handles all of the user-configurable options: colors,
// icons, picture and justify defaults, and the handful of knobs that are
// more convenient to persist in a YAML file than to type as flags every
// time. The fields here are PascalCase in Go but camelCase in config.yml.
// You can view the resolved config with `dirx --print-config`.
package config

// UserConfig holds all of the user-configurable options. Zero values mean
// "unset": NewAppConfig starts from GetDefaultConfig() plus the DIRX_*
// presets and loadUserConfig overlays whatever the file on disk sets, so
// omitting a key in config.yml keeps that value rather than zeroing it
// out.
type UserConfig struct {
	// Colors is the tool-specific color-rule string, parsed with the full
	// key set (category letters, content-flag keys, glob predicates). A
	// literal "*" loads the built-in defaults; a leading "reset" token
	// clears whatever LS_COLORS already contributed.
	Colors string `yaml:"colors,omitempty"`

	// ColorScale selects which fields (size, time, none, all) opt into
	// the OKLab luminance gradient.
	ColorScale string `yaml:"colorScale,omitempty"`

	// ColorScaleMode selects the gradient's rounding behavior: fixed or
	// gradient.
	ColorScaleMode string `yaml:"colorScaleMode,omitempty"`

	// MinLuminance is the gradient's floor, accepted in the user-facing
	// range [-100, 100] and scaled to [-1, 1] before being handed to
	// colorrule.ApplyGradient.
	MinLuminance int `yaml:"minLuminance,omitempty"`

	// Icons turns on icon glyphs before each filename field.
	Icons bool `yaml:"icons,omitempty"`

	// IconSpacing is the number of blank cells rendered between an icon
	// glyph and the filename that follows it.
	IconSpacing int `yaml:"iconSpacing,omitempty"`

	// NerdFonts selects which Nerd Fonts glyph revision the icon table
	// targets: 2 or 3. Any other value is a config error.
	NerdFonts int `yaml:"nerdFonts,omitempty"`

	// Picture is the default format-picture string used when no -f flag
	// is given on the command line.
	Picture string `yaml:"picture,omitempty"`

	// Justify selects the default column-justify style: "left", "right",
	// or "fat" (8.3-style base/extension padding).
	Justify string `yaml:"justify,omitempty"`

	// Lowercase folds rendered filenames to lowercase, matching the
	// classic DIR /L switch.
	Lowercase bool `yaml:"lowercase,omitempty"`

	// SizeStyle selects how the size field renders: "bytes", "mini"
	// (K/M/G suffix), or "comma" (thousands separators).
	SizeStyle string `yaml:"sizeStyle,omitempty"`

	// TimeStyle selects how time fields render: "locale", "iso", or
	// "relative".
	TimeStyle string `yaml:"timeStyle,omitempty"`

	// TruncateChar is the single rune appended when a field is truncated
	// to fit its column. Empty means no glyph.
	TruncateChar string `yaml:"truncateChar,omitempty"`

	// EscapeCodes controls whether SGR sequences are ever emitted:
	// "always", "never", or "auto" (TTY-detected).
	EscapeCodes string `yaml:"escapeCodes,omitempty"`

	// Defaults holds a preset flag string applied before command-line
	// flags are parsed, the persisted equivalent of the DIRX_DEFAULTS
	// environment variable.
	Defaults string `yaml:"defaults,omitempty"`

	// GitIgnored includes git-ignored files in the status annotation
	// pass (the --ignored flag to `git status`) instead of just the
	// default tracked/untracked/modified set.
	GitIgnored bool `yaml:"gitIgnored,omitempty"`
}

// GetDefaultConfig returns dirx's built-in option defaults, overlaid by
// whatever the user's config.yml sets.
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Colors:         "*",
		ColorScale:     "none",
		ColorScaleMode: "gradient",
		MinLuminance:   0,
		Icons:          false,
		IconSpacing:    1,
		NerdFonts:      3,
		Picture:        "",
		Justify:        "left",
		Lowercase:      false,
		SizeStyle:      "bytes",
		TimeStyle:      "locale",
		TruncateChar:   "",
		EscapeCodes:    "auto",
		Defaults:       "",
		GitIgnored:     false,
	}
}
