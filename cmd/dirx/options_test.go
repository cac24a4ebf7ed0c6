package main

import (
	"testing"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/picture"
	"github.com/chrisant996/dirx/pkg/config"
)

func TestNewCLIFlagsSeedsFromUserConfig(t *testing.T) {
	cfg := &config.UserConfig{
		Picture:  "Sm F",
		Justify:  "right",
		NerdFonts: 3,
		Defaults: "wc",
	}
	f := newCLIFlags(cfg)
	if f.PictureStr != "Sm F" {
		t.Errorf("PictureStr = %q, want seeded from cfg.Picture", f.PictureStr)
	}
	if f.Justify != "right" {
		t.Errorf("Justify = %q, want seeded from cfg.Justify", f.Justify)
	}
	if !f.Wide {
		t.Error("Defaults=\"wc\" should have set Wide via applyDefaultsPreset")
	}
	if !f.Classify {
		t.Error("Defaults=\"wc\" should have set Classify via applyDefaultsPreset")
	}
}

func TestApplyDefaultsPresetIgnoresUnknownLetters(t *testing.T) {
	f := &cliFlags{}
	applyDefaultsPreset("xqz", f)
	if !f.Hyperlinks {
		t.Error("'z' should enable Hyperlinks")
	}
	if f.Wide || f.Bare || f.Recurse {
		t.Error("unknown preset letters should not set unrelated flags")
	}
}

func TestCLIFlagsMode(t *testing.T) {
	cases := []struct {
		f    cliFlags
		want displayMode
	}{
		{cliFlags{}, modeLong},
		{cliFlags{Wide: true}, modeWide},
		{cliFlags{Bare: true}, modeBare},
		{cliFlags{Wide: true, Bare: true}, modeBare},
	}
	for _, c := range cases {
		if got := c.f.mode(); got != c.want {
			t.Errorf("mode() = %v, want %v for %+v", got, c.want, c.f)
		}
	}
}

func TestCLIFlagsApplyToCopiesBack(t *testing.T) {
	cfg := &config.UserConfig{}
	f := &cliFlags{Justify: "fat", SizeStyle: "mini", Icons: true, IconSpacing: 2}
	f.applyTo(cfg)
	if cfg.Justify != "fat" || cfg.SizeStyle != "mini" || !cfg.Icons || cfg.IconSpacing != 2 {
		t.Errorf("applyTo produced %+v", cfg)
	}
}

func TestPictureStringFallsBackToDefault(t *testing.T) {
	f := &cliFlags{}
	if f.pictureString() != defaultLongPicture {
		t.Errorf("pictureString() = %q, want default", f.pictureString())
	}
	if f.fatPictureString() != defaultFATPicture {
		t.Errorf("fatPictureString() = %q, want FAT default", f.fatPictureString())
	}
	f.PictureStr = "F"
	if f.pictureString() != "F" || f.fatPictureString() != "F" {
		t.Error("an explicit picture string should override both defaults")
	}
}

func TestAttrSetFromLetters(t *testing.T) {
	attr := attrSetFromLetters("rh")
	if attr&direntry.AttrReadonly == 0 || attr&direntry.AttrHidden == 0 {
		t.Errorf("attrSetFromLetters(\"rh\") = %v, missing expected bits", attr)
	}
	if attr&direntry.AttrSystem != 0 {
		t.Error("attrSetFromLetters should not set bits for letters not supplied")
	}
	if attrSetFromLetters("") != 0 {
		t.Error("attrSetFromLetters(\"\") should be zero")
	}
}

func TestNeedsGit(t *testing.T) {
	withGit, err := picture.Parse("R F")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	withoutGit, err := picture.Parse("Sm F")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !needsGit(withGit) {
		t.Error("picture with a Git-repo field should report needsGit")
	}
	if needsGit(withoutGit) {
		t.Error("picture with no Git fields should not report needsGit")
	}
}

func TestTruncateGlyph(t *testing.T) {
	if g := truncateGlyph("…"); g != '…' {
		t.Errorf("truncateGlyph(%q) = %q, want …", "…", g)
	}
	if g := truncateGlyph(""); g != '…' {
		t.Errorf("truncateGlyph(\"\") = %q, want fallback …", g)
	}
}

func TestEscapeCodesEnabled(t *testing.T) {
	if !escapeCodesEnabled("always", false) {
		t.Error("always should enable regardless of TTY")
	}
	if escapeCodesEnabled("never", true) {
		t.Error("never should disable regardless of TTY")
	}
	if !escapeCodesEnabled("auto", true) {
		t.Error("auto should follow isTTY=true")
	}
	if escapeCodesEnabled("auto", false) {
		t.Error("auto should follow isTTY=false")
	}
}
