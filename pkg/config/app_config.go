package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// AppConfig contains the base configuration fields required to run dirx,
// plus the environment-variable presets read before flags are parsed
// (spec.md §6's "Preset flags may be supplied via an environment
// variable").
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"dirx"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`

	// Env mirrors the DIRX_* environment-variable presets (§6 "Environment
	// discovery"): colors, icon spacing, color-scale defaults,
	// min-luminance, nerd-fonts version, and a default preset flag
	// string. Each is read once at startup and applied by applyEnv under
	// config.yml's values; the merged UserConfig is then validated, and a
	// flag parsed afterward still overrides it (later wins).
	Env EnvConfig

	UserConfig *UserConfig
	ConfigDir  string
}

// EnvConfig holds the raw DIRX_* environment-variable values, read before
// UserConfig is merged with them.
type EnvConfig struct {
	Colors       string
	ColorScale   string
	MinLuminance string
	NerdFonts    string
	Defaults     string
}

// readEnvConfig reads the recognized DIRX_* variables. LS_COLORS is read
// separately by the color-rule loader at level 0 (permissive), per
// spec.md §6's "Colors may be sourced from the LS_COLORS environment
// variable ... and a tool-specific variable".
func readEnvConfig() EnvConfig {
	return EnvConfig{
		Colors:       os.Getenv("DIRX_COLORS"),
		ColorScale:   os.Getenv("DIRX_COLOR_SCALE"),
		MinLuminance: os.Getenv("DIRX_MIN_LUMINANCE"),
		NerdFonts:    os.Getenv("DIRX_NERD_FONTS"),
		Defaults:     os.Getenv("DIRX_DEFAULTS"),
	}
}

// applyEnv overlays e onto config, which NewAppConfig passes in holding
// the built-in defaults before config.yml is loaded over it, so an
// explicit config.yml setting always wins over the environment, and a
// later command-line flag always wins over both. minLuminance is clamped
// to [-100, 100], nerdFonts is taken only when it is 2 or 3, and an
// unparsable number is ignored.
func (e EnvConfig) applyEnv(config *UserConfig) {
	if e.Colors != "" {
		config.Colors = e.Colors
	}
	if e.ColorScale != "" {
		config.ColorScale = e.ColorScale
	}
	if e.MinLuminance != "" && config.MinLuminance == 0 {
		if n, err := strconv.Atoi(e.MinLuminance); err == nil {
			if n < -100 {
				n = -100
			} else if n > 100 {
				n = 100
			}
			config.MinLuminance = n
		}
	}
	if e.NerdFonts != "" {
		if n, err := strconv.Atoi(e.NerdFonts); err == nil && (n == 2 || n == 3) {
			config.NerdFonts = n
		}
	}
	if e.Defaults != "" && config.Defaults == "" {
		config.Defaults = e.Defaults
	}
}

// NewAppConfig makes a new app config: it finds or creates the config
// directory, overlays the DIRX_* environment presets on the built-in
// defaults, loads config.yml over the result, and validates it.
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	dir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	env := readEnvConfig()
	base := GetDefaultConfig()
	env.applyEnv(&base)

	userConfig, err := loadUserConfig(dir, &base)
	if err != nil {
		return nil, err
	}

	if err := userConfig.Validate(); err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		Env:         env,
		UserConfig:  userConfig,
		ConfigDir:   dir,
	}

	return appConfig, nil
}

func configDirForVendor(vendor string, projectName string) string {
	if envConfigDir := os.Getenv("CONFIG_DIR"); envConfigDir != "" {
		return envConfigDir
	}
	configDirs := xdg.New(vendor, projectName)
	return configDirs.ConfigHome()
}

func configDir(projectName string) string {
	return configDirForVendor("", projectName)
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folder := configDir(projectName)

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	return folder, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows a caller (e.g. a --save-defaults flag) to set
// a value on the user config to be saved. Note that a zero-value write
// may be dropped on the next load, since omitempty skips zero values
// when the file is re-encoded.
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	file, err := os.OpenFile(c.ConfigFilename(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	return yaml.NewEncoder(file).Encode(userConfig)
}

// ConfigFilename returns the filename of the current config file.
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
