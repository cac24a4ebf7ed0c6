package picture

import (
	"strconv"

	"github.com/chrisant996/dirx/internal/direntry"
)

// ObserveEntry is the convenience first-pass entry point for callers
// outside this package: it derives the plain (uncolored) size, branch,
// and relative-age strings this Picture's fields actually need and
// feeds them into Observe, so a caller like cmd/dirx never has to
// duplicate the size/time formatting rules just to measure them.
//
// The strings built here are deliberately uncolored: wcwidth.StringWidth
// doesn't strip escape sequences, so folding SGR codes in at this stage
// would corrupt the column-width measurement. Render applies color
// separately, on the second pass, once widths are already settled.
func (p *Picture) ObserveEntry(st *widthState, e *direntry.Entry, ctx *Context) {
	var renderedSize, branch, relativeAge string
	if p.NeedsFilesizeWidth {
		renderedSize = p.plainSizeText(e, ctx)
	}
	if p.NeedsBranchWidth && ctx.GitRepo != nil {
		_, _, branch = ctx.GitRepo(e.Dir)
	}
	if p.NeedsRelativeTimeWidth {
		relativeAge = p.plainRelativeTime(e, ctx)
	}
	p.Observe(st, e, renderedSize, branch, relativeAge)
}

// sizeField returns this picture's last Size field; its style and
// sub-field decide the measured text. Settle gives every auto-width Size
// field the same observed width.
func (p *Picture) sizeField() *Field {
	var f *Field
	for i := range p.Fields {
		if p.Fields[i].Kind == KindSize {
			f = &p.Fields[i]
		}
	}
	return f
}

// relativeTimeField returns this picture's relative-style Time field, if
// it has one.
func (p *Picture) relativeTimeField() *Field {
	for i := range p.Fields {
		if p.Fields[i].Kind == KindTime && p.Fields[i].Style == 'r' {
			return &p.Fields[i]
		}
	}
	return nil
}

func (p *Picture) plainSizeText(e *direntry.Entry, ctx *Context) string {
	f := p.sizeField()
	if f == nil {
		return ""
	}
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

	switch f.Style {
	case 'm':
		return formatMiniSize(n)
	case 's':
		return formatShortSize(n, ctx)
	default:
		return ctx.Locale.GroupThousands(strconv.FormatInt(n, 10))
	}
}

func (p *Picture) plainRelativeTime(e *direntry.Entry, ctx *Context) string {
	f := p.relativeTimeField()
	if f == nil {
		return ""
	}
	t := e.Modified
	switch f.SubField {
	case 'a':
		t = e.Accessed
	case 'c':
		t = e.Created
	}
	return formatRelativeTime(t, ctx.Now)
}
