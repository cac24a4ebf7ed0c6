package config

import (
	"testing"

	"github.com/jesseduffield/yaml"
)

func TestGetDefaultConfig(t *testing.T) {
	defaults := GetDefaultConfig()

	if defaults.Colors != "*" {
		t.Errorf("Colors = %q, want \"*\"", defaults.Colors)
	}
	if defaults.Justify != "left" {
		t.Errorf("Justify = %q, want left", defaults.Justify)
	}
	if defaults.SizeStyle != "bytes" {
		t.Errorf("SizeStyle = %q, want bytes", defaults.SizeStyle)
	}
	if defaults.NerdFonts != 3 {
		t.Errorf("NerdFonts = %d, want 3", defaults.NerdFonts)
	}
	if defaults.EscapeCodes != "auto" {
		t.Errorf("EscapeCodes = %q, want auto", defaults.EscapeCodes)
	}
}

func TestUserConfigYAMLRoundTrip(t *testing.T) {
	in := UserConfig{
		Colors:       "di=01;34",
		Icons:        true,
		IconSpacing:  2,
		NerdFonts:    2,
		Justify:      "fat",
		MinLuminance: -30,
	}

	out, err := yaml.Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got UserConfig
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != in {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, in)
	}
}

func TestUserConfigYAMLOmitsZeroValues(t *testing.T) {
	in := UserConfig{Colors: "*"}

	out, err := yaml.Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// omitempty keeps the file from accumulating every zero-value field
	// the first time it's rewritten.
	var asMap map[string]interface{}
	if err := yaml.Unmarshal(out, &asMap); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := asMap["icons"]; ok {
		t.Error("icons should be omitted when false")
	}
	if _, ok := asMap["colors"]; !ok {
		t.Error("colors should be present when set")
	}
}

func TestValidateRejectsBadNerdFonts(t *testing.T) {
	c := GetDefaultConfig()
	c.NerdFonts = 4
	if err := c.Validate(); err == nil {
		t.Fatal("Validate should reject nerdFonts=4")
	}
}

func TestValidateRejectsOutOfRangeMinLuminance(t *testing.T) {
	c := GetDefaultConfig()
	c.MinLuminance = 150
	if err := c.Validate(); err == nil {
		t.Fatal("Validate should reject minLuminance=150")
	}
}

func TestValidateRejectsUnknownJustify(t *testing.T) {
	c := GetDefaultConfig()
	c.Justify = "centered"
	if err := c.Validate(); err == nil {
		t.Fatal("Validate should reject an unrecognized justify value")
	}
}

func TestNormalizedMinLuminanceScalesToUnitRange(t *testing.T) {
	c := UserConfig{MinLuminance: -50}
	if got := c.NormalizedMinLuminance(); got != -0.5 {
		t.Errorf("NormalizedMinLuminance() = %v, want -0.5", got)
	}
}
