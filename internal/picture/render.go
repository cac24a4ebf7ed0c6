package picture

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/wcwidth"
)

// Render produces one rendered line for e, honoring the literal template
// text, group-skip rules for disabled conditional fields, and each
// field's settled width (spec.md §4.4 "Rendering").
func (p *Picture) Render(e *direntry.Entry, ctx *Context) string {
	skip := p.skippedFieldSet()

	var out strings.Builder
	lastFieldIsFilename := len(p.Fields) > 0 && p.Fields[len(p.Fields)-1].Kind == KindFilename

	for i, seg := range p.segments {
		if seg.fieldIdx < 0 {
			if !p.segmentInSkippedGroup(i, skip) {
				out.WriteString(seg.literal)
			}
			continue
		}
		if skip[seg.fieldIdx] {
			continue
		}
		f := &p.Fields[seg.fieldIdx]
		isLastFilename := lastFieldIsFilename && seg.fieldIdx == len(p.Fields)-1 && f.Kind == KindFilename
		text := p.renderFieldWithContext(f, e, ctx, isLastFilename)
		if isLastFilename && ctx.FullPath {
			out.WriteString(text)
			continue
		}
		out.WriteString(padCells(text, f.Width))
	}
	return out.String()
}

// skippedFieldSet reports, per field index, whether a disabled
// conditional field should be omitted.
func (p *Picture) skippedFieldSet() []bool {
	skip := make([]bool, len(p.Fields))
	for i := range p.Fields {
		f := &p.Fields[i]
		skip[i] = f.Conditional && !f.Enabled
	}
	return skip
}

// segmentInSkippedGroup reports whether literal segment i falls inside a
// bracket group whose only conditional field(s) are all skipped.
func (p *Picture) segmentInSkippedGroup(segIdx int, skip []bool) bool {
	for _, g := range p.groups {
		if segIdx < g.startSeg || segIdx >= g.endSeg || len(g.fieldIdxs) == 0 {
			continue
		}
		allSkipped := true
		for _, fi := range g.fieldIdxs {
			if !skip[fi] {
				allSkipped = false
				break
			}
		}
		if allSkipped {
			return true
		}
	}
	return false
}

func padCells(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := wcwidth.VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func (p *Picture) renderFieldWithContext(f *Field, e *direntry.Entry, ctx *Context, isLastFilename bool) string {
	if f.Kind == KindFilename {
		return renderFilename(f, e, ctx, isLastFilename)
	}
	return p.renderField(f, e, ctx)
}

func (p *Picture) renderField(f *Field, e *direntry.Entry, ctx *Context) string {
	switch f.Kind {
	case KindFilename:
		return renderFilename(f, e, ctx, false)
	case KindShortName:
		return renderShortName(f, e)
	case KindSize:
		return renderSize(f, e, ctx)
	case KindTime:
		return renderTime(f, e, ctx)
	case KindCompression:
		return renderCompression(f, e)
	case KindOwner:
		return renderOwner(e)
	case KindAttributes:
		return renderAttributes(f, e, ctx)
	case KindGitRepo:
		return renderGitRepo(f, e, ctx)
	case KindGitFile:
		return renderGitFile(e, ctx)
	default:
		return ""
	}
}

func renderFilename(f *Field, e *direntry.Entry, ctx *Context, isLastFilename bool) string {
	name := e.Name
	if isLastFilename && ctx.FullPath {
		name = e.Path()
	}
	if ctx.Lowercase {
		name = strings.ToLower(name)
	}

	suffix := ""
	if e.IsDir() {
		suffix = "\\"
	} else if e.IsSymlink() {
		suffix = "@"
	}

	switch f.Style {
	case 'f':
		name = fatJustify(name)
	case 'x':
		// short/8.3 style handled by renderShortName; 'x' on Filename
		// just forces the short form if one exists.
		if e.ShortName != "" {
			name = e.ShortName
		}
	}

	rendered := name + suffix
	if f.Width > 0 && !e.IsDir() && !(isLastFilename && ctx.FullPath) {
		rendered = wcwidth.Truncate(rendered, f.Width, ctx.TruncateGlyph)
	}

	if ctx.HyperlinksEnabled {
		rendered = "\x1b]8;;" + e.Path() + "\x07" + rendered + "\x1b]8;;\x07"
	}

	if ctx.Color != nil {
		if sgr := ctx.Color(e); sgr != "" {
			rendered = "\x1b[" + sgr + "m" + rendered + "\x1b[0m"
		}
	}
	return rendered
}

// fatJustify splits a name at its last dot and pads the basename to 8
// cells and the extension to 3, FAT-12.3 style.
func fatJustify(name string) string {
	base, ext := name, ""
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		base, ext = name[:i], name[i+1:]
	}
	if wcwidth.StringWidth(base) < 8 {
		base += strings.Repeat(" ", 8-wcwidth.StringWidth(base))
	}
	if ext == "" {
		return base + "   "
	}
	if wcwidth.StringWidth(ext) < 3 {
		ext += strings.Repeat(" ", 3-wcwidth.StringWidth(ext))
	}
	return base + "." + ext
}

func renderShortName(f *Field, e *direntry.Entry) string {
	if f.Conditional && !f.Enabled {
		return ""
	}
	return e.ShortName
}

func renderOwner(e *direntry.Entry) string {
	return e.Owner
}

// sizeTag maps the attribute combinations that render as a bracketed tag
// instead of a byte count.
func sizeTag(e *direntry.Entry) (string, bool) {
	switch {
	case e.Attr&direntry.AttrReparsePoint != 0 && e.Attr&direntry.AttrDirectory != 0:
		if e.OrphanedReparse {
			return "<JUNCTION>", true
		}
		return "<SYMLINKD>", true
	case e.Attr&direntry.AttrReparsePoint != 0:
		return "<SYMLINK>", true
	case e.Attr&direntry.AttrDirectory != 0:
		return "<DIR>", true
	default:
		return "", false
	}
}

func renderSize(f *Field, e *direntry.Entry, ctx *Context) string {
	if tag, ok := sizeTag(e); ok {
		return tag
	}

	n := e.LogicalSize
	switch f.SubField {
	case 'a':
		n = e.AllocationSize
	case 'c':
		n = e.CompressedSize
	}

	var text string
	switch f.Style {
	case 'm':
		text = formatMiniSize(n)
	case 's':
		text = formatShortSize(n, ctx)
	default:
		text = ctx.Locale.GroupThousands(strconv.FormatInt(n, 10))
	}

	if ctx.Color != nil {
		if sgr := ctx.Color(e); sgr != "" {
			text = "\x1b[" + sgr + "m" + text + "\x1b[0m"
		}
	}
	return text
}

func formatMiniSize(n int64) string {
	const unit = 1024.0
	units := []byte{'K', 'M', 'G', 'T', 'P', 'E'}
	f := float64(n)
	if f < 1000 {
		return fmt.Sprintf("%dB", n)
	}
	ui := -1
	for f >= 1000 && ui < len(units)-1 {
		f /= unit
		ui++
	}
	if f < 9.95 {
		return fmt.Sprintf("%.1f%c", f, units[ui])
	}
	return fmt.Sprintf("%.0f%c", f, units[ui])
}

func formatShortSize(n int64, ctx *Context) string {
	const unit = 1024.0
	units := []string{"B", "K", "M", "G", "T", "P", "E"}
	f := float64(n)
	ui := 0
	for f >= unit && ui < len(units)-1 {
		f /= unit
		ui++
	}
	if ui == 0 {
		return ctx.Locale.GroupThousands(strconv.FormatInt(n, 10)) + " " + units[0]
	}
	return fmt.Sprintf("%.1f %s", f, units[ui])
}

func renderCompression(f *Field, e *direntry.Entry) string {
	if f.Conditional && !f.Enabled {
		return ""
	}
	var num, den int64
	switch f.SubField {
	case 'a':
		num, den = e.LogicalSize, e.AllocationSize
	default:
		num, den = e.CompressedSize, e.LogicalSize
	}
	if den == 0 {
		return ""
	}
	pct := num * 100 / den
	if pct > 99 {
		pct = 99
	}
	return fmt.Sprintf("%d%%", pct)
}

var attrBits = map[byte]direntry.Attr{
	'r': direntry.AttrReadonly,
	'h': direntry.AttrHidden,
	's': direntry.AttrSystem,
	'd': direntry.AttrDirectory,
	'a': direntry.AttrArchive,
	'e': direntry.AttrEncrypted,
	'p': direntry.AttrSparse,
	't': direntry.AttrTemporary,
	'c': direntry.AttrCompressed,
	'o': direntry.AttrOffline,
	'i': direntry.AttrNotContentIndexed,
	'l': direntry.AttrReparsePoint,
}

func renderAttributes(f *Field, e *direntry.Entry, ctx *Context) string {
	mask := f.AttrMask
	if mask == "" {
		mask = "rhsdaepctoil"
	}
	var out strings.Builder
	for i := 0; i < len(mask); i++ {
		ch := mask[i]
		bit, ok := attrBits[ch]
		if ok && e.Attr&bit != 0 {
			out.WriteByte(ch)
		} else {
			out.WriteByte(ctx.AttrBlank)
		}
	}
	return out.String()
}

// renderGitFile and renderGitRepo read Git state through the
// caller-supplied Context functions rather than internal/gitstatus
// directly, consistent with this package's functional-injection design.
// Neither they nor the time formatters below apply color.

func renderGitFile(e *direntry.Entry, ctx *Context) string {
	if ctx.GitFile == nil {
		return "  "
	}
	staged, working, ok := ctx.GitFile(e)
	if !ok {
		return "  "
	}
	return string(staged) + string(working)
}

func renderGitRepo(f *Field, e *direntry.Entry, ctx *Context) string {
	if ctx.GitRepo == nil {
		return padCells("-", f.Width)
	}
	isRepo, dirty, branch := ctx.GitRepo(e.Dir)
	var status byte = '-'
	if isRepo {
		status = '|'
		if dirty {
			status = '+'
		}
	}
	text := string(status) + " " + branch
	if f.Width > 0 {
		text = wcwidth.Truncate(text, f.Width, 0)
	}
	return text
}

func renderTime(f *Field, e *direntry.Entry, ctx *Context) string {
	t := e.Modified
	switch f.SubField {
	case 'a':
		t = e.Accessed
	case 'c':
		t = e.Created
	}

	if f.Style == 'r' {
		return formatRelativeTime(t, ctx.Now)
	}
	return formatAbsoluteTime(t, f.Style, ctx)
}

func formatAbsoluteTime(t time.Time, style byte, ctx *Context) string {
	switch style {
	case 'i': // ISO 8601-ish
		return t.Format("2006-01-02 15:04")
	case 'l': // long-iso
		return t.Format("2006-01-02 15:04:05")
	case 'x': // extended, with milliseconds
		return t.Format("2006-01-02 15:04:05.000")
	case 'n': // numeric, locale month numbers
		return t.Format("01/02/2006 15:04")
	case 'o': // compact
		return t.Format("060102.1504")
	case 's': // short
		return fmt.Sprintf("%s %2d %02d:%02d", ctx.Locale.Month(t), t.Day(), t.Hour(), t.Minute())
	default: // 'm' rolling MM/DD HH:mm vs MM/DD YYYY, per spec.md's 11-cell default
		if ctx.Now.Sub(t) > 183*24*time.Hour || t.Sub(ctx.Now) > 183*24*time.Hour {
			return t.Format("01/02  2006")
		}
		return t.Format("01/02 15:04")
	}
}

func formatRelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%d s", int(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%d m", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hr", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d dy", int(d/(24*time.Hour)))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d wk", int(d/(7*24*time.Hour)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d mo", int(d/(30*24*time.Hour)))
	default:
		return fmt.Sprintf("%d yr", int(d/(365*24*time.Hour)))
	}
}
