package config

import (
	"strconv"

	"github.com/chrisant996/dirx/internal/errs"
)

var validJustify = map[string]bool{"left": true, "right": true, "fat": true}
var validSizeStyle = map[string]bool{"bytes": true, "mini": true, "comma": true}
var validTimeStyle = map[string]bool{"locale": true, "iso": true, "relative": true}
var validEscapeCodes = map[string]bool{"always": true, "never": true, "auto": true}
var validColorScale = map[string]bool{"none": true, "size": true, "time": true, "all": true}
var validColorScaleMode = map[string]bool{"fixed": true, "gradient": true}

// Validate checks the fields a user can only set by hand-editing
// config.yml (the ones a flaggy flag can't already reject at parse time):
// enum-valued strings and the nerd-fonts/min-luminance ranges.
func (config *UserConfig) Validate() error {
	if config.NerdFonts != 0 && config.NerdFonts != 2 && config.NerdFonts != 3 {
		return errs.Newf("nerdFonts must be 2 or 3, got %1").Arg(strconv.Itoa(config.NerdFonts)).WithKind(errs.KindUsageError)
	}
	if config.MinLuminance < -100 || config.MinLuminance > 100 {
		return errs.Newf("minLuminance must be within [-100, 100], got %1").Arg(strconv.Itoa(config.MinLuminance)).WithKind(errs.KindUsageError)
	}
	if config.Justify != "" && !validJustify[config.Justify] {
		return errs.Newf("justify %1 is not recognized").Arg(config.Justify).WithKind(errs.KindUsageError)
	}
	if config.SizeStyle != "" && !validSizeStyle[config.SizeStyle] {
		return errs.Newf("sizeStyle %1 is not recognized").Arg(config.SizeStyle).WithKind(errs.KindUsageError)
	}
	if config.TimeStyle != "" && !validTimeStyle[config.TimeStyle] {
		return errs.Newf("timeStyle %1 is not recognized").Arg(config.TimeStyle).WithKind(errs.KindUsageError)
	}
	if config.EscapeCodes != "" && !validEscapeCodes[config.EscapeCodes] {
		return errs.Newf("escapeCodes %1 is not recognized").Arg(config.EscapeCodes).WithKind(errs.KindUsageError)
	}
	if config.ColorScale != "" && !validColorScale[config.ColorScale] {
		return errs.Newf("colorScale %1 is not recognized").Arg(config.ColorScale).WithKind(errs.KindUsageError)
	}
	if config.ColorScaleMode != "" && !validColorScaleMode[config.ColorScaleMode] {
		return errs.Newf("colorScaleMode %1 is not recognized").Arg(config.ColorScaleMode).WithKind(errs.KindUsageError)
	}
	return nil
}

// NormalizedMinLuminance scales the user-facing [-100, 100] value down to
// the [-1, 1] range colorrule.ApplyGradient expects.
func (config *UserConfig) NormalizedMinLuminance() float64 {
	return float64(config.MinLuminance) / 100.0
}
