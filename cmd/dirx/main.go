package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"

	"github.com/chrisant996/dirx/internal/console"
	"github.com/chrisant996/dirx/internal/errs"
	"github.com/chrisant996/dirx/internal/gitstatus"
	"github.com/chrisant996/dirx/internal/locale"
	"github.com/chrisant996/dirx/internal/picture"
	"github.com/chrisant996/dirx/internal/scan"
	"github.com/chrisant996/dirx/pkg/applog"
	"github.com/chrisant996/dirx/pkg/config"
)

const defaultVersion = "unversioned"

var (
	commit      string
	version     = defaultVersion
	date        string
	buildSource = "unknown"
)

func main() {
	updateBuildInfo()

	// NewAppConfig is loaded before any flag is registered: its result
	// seeds every flag's default value (newCLIFlags), so flaggy.Parse()
	// only has to overwrite the flags a user actually passed. The debug
	// argument is hardcoded false here since the -d/--debug flag itself
	// hasn't been parsed yet; DEBUG=TRUE in the environment still takes
	// effect independently, and an explicit -d folds back in afterward.
	appConfig, err := config.NewAppConfig("dirx", version, commit, date, buildSource, false)
	if err != nil {
		errs.Fatal(errs.Wrap(err, "loading configuration"))
	}
	cfg := appConfig.UserConfig

	var ignoreGlobs []string
	flags := newCLIFlags(cfg)

	flaggy.SetName("dirx")
	flaggy.SetDescription("A colorized, format-picture directory lister")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/chrisant996/dirx"

	flaggy.Bool(&flags.Wide, "w", "wide", "List names in a multi-column grid instead of one per line")
	flaggy.Bool(&flags.Bare, "b", "bare", "List names only, one per line, no color or summary")
	flaggy.Bool(&flags.Recurse, "s", "recurse", "Recurse into subdirectories")
	flaggy.UInt(&flags.Depth, "", "depth", "Limit recursion to this many levels (0 = unlimited)")
	flaggy.Bool(&flags.Vertical, "", "vertical", "Sort multi-column output down each column before across")
	flaggy.Bool(&flags.Hyperlinks, "", "hyperlinks", "Wrap filenames in OSC 8 terminal hyperlinks")
	flaggy.Bool(&flags.Classify, "", "classify", "Append / to directories and @ to symlinks")
	flaggy.Bool(&flags.SkipHidden, "", "skip-hidden", "Exclude dot-prefixed entries")
	flaggy.Bool(&flags.SkipJunctions, "", "skip-junctions", "Don't recurse into symlinked directories")
	flaggy.StringSlice(&ignoreGlobs, "", "ignore", "Glob pattern to exclude (repeatable)")
	flaggy.String(&flags.IncludeAttr, "", "attr-include", "Only list entries with all of these attribute letters")
	flaggy.String(&flags.ExcludeAttr, "", "attr-exclude", "Exclude entries with any of these attribute letters")
	flaggy.String(&flags.PictureStr, "p", "picture", "Format-picture string controlling the fields and layout of each line")
	flaggy.String(&flags.Justify, "", "justify", "Filename justification: left, right, or fat")
	flaggy.Bool(&flags.Lowercase, "", "lowercase", "Force filenames to lowercase")
	flaggy.String(&flags.SizeStyle, "", "size-style", "Size column style: bytes, mini, or comma")
	flaggy.String(&flags.TimeStyle, "", "time-style", "Time column style: locale, iso, or relative")
	flaggy.String(&flags.TruncateChar, "", "truncate-char", "Glyph used when a filename is truncated to fit its column")
	flaggy.Bool(&flags.Icons, "", "icons", "Show a Nerd Fonts glyph before each filename")
	flaggy.UInt(&flags.IconSpacing, "", "icon-spacing", "Cells of padding after each icon glyph")
	flaggy.UInt(&flags.NerdFonts, "", "nerd-fonts", "Nerd Fonts glyph set version: 2 or 3")
	flaggy.String(&flags.Colors, "", "color", "Color rule string (LS_COLORS-style syntax); \"*\" selects the built-in defaults")
	flaggy.String(&flags.ColorScale, "", "color-scale", "Gradient field selection: none, size, time, or all")
	flaggy.String(&flags.ColorScaleMode, "", "color-scale-mode", "Gradient remap mode: fixed or gradient")
	flaggy.String(&flags.EscapeCodes, "", "escape-codes", "When to emit color/hyperlink escape codes: always, never, or auto")
	flaggy.Bool(&flags.GitIgnored, "", "git-ignored", "Include .gitignore-excluded paths in Git status lookups")
	flaggy.Bool(&flags.PrintConfig, "", "print-config", "Print the resolved configuration and exit")
	flaggy.Bool(&flags.Debug, "d", "debug", "Write a development log and keep full stack traces on unexpected errors")

	info := fmt.Sprintf("%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version, date, buildSource, commit, runtime.GOOS, runtime.GOARCH)
	flaggy.SetVersion(info)

	flaggy.Parse()

	appConfig.Debug = appConfig.Debug || flags.Debug
	flags.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		errs.Fatal(err)
	}

	if flags.PrintConfig {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		if err := encoder.Encode(cfg); err != nil {
			log.Fatal(err.Error())
		}
		fmt.Print(buf.String())
		os.Exit(0)
	}

	logEntry := applog.NewLogger(appConfig)

	restore := console.InstallBreakHandler(os.Stdout, nil)
	defer restore()

	pictureRaw := flags.pictureString()
	pic, err := picture.Parse(pictureRaw)
	if err != nil {
		errs.Fatal(errs.Wrap(err, "parsing format picture %1").Arg(pictureRaw))
	}
	fatPic, err := picture.Parse(flags.fatPictureString())
	if err != nil {
		errs.Fatal(errs.Wrap(err, "parsing format picture %1").Arg(flags.fatPictureString()))
	}

	table, colorErrs := buildColorTable(cfg, os.Getenv("PATHEXT"))
	for _, e := range colorErrs {
		logEntry.WithError(e).Warn("ignoring malformed color rule")
	}

	loc := locale.Default()
	pictureCtx := picture.DefaultContext(loc)
	pictureCtx.Lowercase = cfg.Lowercase
	pictureCtx.FullPath = false
	pictureCtx.HyperlinksEnabled = flags.Hyperlinks
	pictureCtx.MiniSizeUnits = cfg.SizeStyle == "mini"
	if cfg.TruncateChar != "" {
		pictureCtx.TruncateGlyph = truncateGlyph(cfg.TruncateChar)
	}
	if !escapeCodesEnabled(cfg.EscapeCodes, isatty.IsTerminal(os.Stdout.Fd())) {
		table = nil
		pictureCtx.HyperlinksEnabled = false
	}

	reporter := applog.ScanReporter(logEntry, os.Stderr)

	render := newRenderer(os.Stdout, renderOptions{
		Mode:       flags.mode(),
		Picture:    pic,
		FATPicture: fatPic,
		Table:      table,
		Context:    pictureCtx,
		UserCfg:    cfg,
		Vertical:   flags.Vertical,
		Padding:    2,
		MaxWidth:   terminalWidth(),
		Classify:   flags.Classify,
	})

	bare := flags.mode() == modeBare
	driver := &scan.Driver{
		Options: scan.Options{
			Recurse:        flags.Recurse,
			LimitDepth:     flags.Depth,
			SkipHidden:     flags.SkipHidden,
			SkipJunctions:  flags.SkipJunctions,
			AttrExcludeAny: attrSetFromLetters(flags.ExcludeAttr),
			AttrIncludeAny: attrSetFromLetters(flags.IncludeAttr),
			NeedGit:        needsGit(pic) || needsGit(fatPic),
			NeedIgnoredGit: cfg.GitIgnored,
		},
		Git:    gitstatus.NewRunner(),
		Report: reporter,
		OnVolumeBegin: func(dir string) {
			if !bare {
				printVolumeBegin(os.Stdout, dir)
			}
		},
		OnVolumeEnd: func(dir string, totals scan.Totals) {
			if !bare {
				printVolumeEnd(os.Stdout, loc, totals)
			}
		},
		RenderDir: render.RenderFunc,
	}

	patterns := resolvePatterns(flaggy.TrailingArguments, ignoreGlobs)
	if runErr := driver.Run(context.Background(), patterns); runErr != nil {
		if e, ok := runErr.(*errs.Error); ok {
			errs.Report(os.Stderr, e)
			os.Exit(1)
		}
		errs.FatalUnexpected(runErr)
	}
}

func updateBuildInfo() {
	if version != defaultVersion {
		return
	}
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if revision, ok := lo.Find(buildInfo.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.revision"
	}); ok {
		commit = revision.Value
		if len(commit) > 7 {
			version = commit[:7]
		} else {
			version = commit
		}
	}
	if t, ok := lo.Find(buildInfo.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.time"
	}); ok {
		date = t.Value
	}
}
