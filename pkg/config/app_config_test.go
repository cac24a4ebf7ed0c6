package config

import (
	"os"
	"testing"

	"github.com/jesseduffield/yaml"
)

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, hadOld := os.LookupEnv("CONFIG_DIR")
	os.Setenv("CONFIG_DIR", dir)
	t.Cleanup(func() {
		if hadOld {
			os.Setenv("CONFIG_DIR", old)
		} else {
			os.Unsetenv("CONFIG_DIR")
		}
	})
	return dir
}

func TestNewAppConfigLoadsBuiltinDefaults(t *testing.T) {
	withConfigDir(t)

	conf, err := NewAppConfig("dirx", "v0", "deadbeef", "2026-01-01", "source", false)
	if err != nil {
		t.Fatalf("NewAppConfig: %v", err)
	}
	if conf.UserConfig.Colors != "*" {
		t.Errorf("Colors = %q, want \"*\"", conf.UserConfig.Colors)
	}
	if conf.UserConfig.NerdFonts != 3 {
		t.Errorf("NerdFonts = %d, want 3", conf.UserConfig.NerdFonts)
	}
	if conf.UserConfig.Justify != "left" {
		t.Errorf("Justify = %q, want left", conf.UserConfig.Justify)
	}
}

func TestNewAppConfigDebugFromFlagOrEnv(t *testing.T) {
	withConfigDir(t)

	conf, err := NewAppConfig("dirx", "v0", "", "", "", true)
	if err != nil {
		t.Fatalf("NewAppConfig: %v", err)
	}
	if !conf.Debug {
		t.Error("Debug should be true when debuggingFlag is true")
	}

	os.Setenv("DEBUG", "TRUE")
	defer os.Unsetenv("DEBUG")
	conf2, err := NewAppConfig("dirx", "v0", "", "", "", false)
	if err != nil {
		t.Fatalf("NewAppConfig: %v", err)
	}
	if !conf2.Debug {
		t.Error("Debug should be true when DEBUG=TRUE is set")
	}
}

func TestNewAppConfigEnvOverridesBuiltinButNotFile(t *testing.T) {
	withConfigDir(t)

	os.Setenv("DIRX_MIN_LUMINANCE", "40")
	os.Setenv("DIRX_NERD_FONTS", "2")
	defer os.Unsetenv("DIRX_MIN_LUMINANCE")
	defer os.Unsetenv("DIRX_NERD_FONTS")

	conf, err := NewAppConfig("dirx", "v0", "", "", "", false)
	if err != nil {
		t.Fatalf("NewAppConfig: %v", err)
	}
	if conf.UserConfig.MinLuminance != 40 {
		t.Errorf("MinLuminance = %d, want 40 from env", conf.UserConfig.MinLuminance)
	}
	if conf.UserConfig.NerdFonts != 2 {
		t.Errorf("NerdFonts = %d, want 2 from env", conf.UserConfig.NerdFonts)
	}
}

func TestNewAppConfigRejectsBadEnvMinLuminance(t *testing.T) {
	withConfigDir(t)

	os.Setenv("DIRX_MIN_LUMINANCE", "not-a-number")
	defer os.Unsetenv("DIRX_MIN_LUMINANCE")

	conf, err := NewAppConfig("dirx", "v0", "", "", "", false)
	if err != nil {
		t.Fatalf("NewAppConfig: %v", err)
	}
	if conf.UserConfig.MinLuminance != 0 {
		t.Errorf("MinLuminance = %d, want default 0 when env value is unparsable", conf.UserConfig.MinLuminance)
	}
}

func TestWritingToConfigFile(t *testing.T) {
	withConfigDir(t)

	conf, err := NewAppConfig("dirx", "v0", "", "", "", false)
	if err != nil {
		t.Fatalf("NewAppConfig: %v", err)
	}

	testFn := func(t *testing.T, ac *AppConfig, newValue string) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.Picture = newValue
			return nil
		}

		if err := ac.WriteToUserConfig(updateFn); err != nil {
			t.Fatalf("WriteToUserConfig: %v", err)
		}

		file, err := os.OpenFile(ac.ConfigFilename(), os.O_RDONLY, 0o660)
		if err != nil {
			t.Fatalf("OpenFile: %v", err)
		}
		defer file.Close()

		sampleUC := UserConfig{}
		if err := yaml.NewDecoder(file).Decode(&sampleUC); err != nil {
			t.Fatalf("Decode: %v", err)
		}

		if sampleUC.Picture != newValue {
			t.Fatalf("Picture = %q, want %q", sampleUC.Picture, newValue)
		}
	}

	testFn(t, conf, "[F] [S]")
	testFn(t, conf, "[F]")
}
