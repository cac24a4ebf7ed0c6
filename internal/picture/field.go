// Package picture implements the format-picture mini-language: parsing a
// picture string into a typed field list, the two-pass width-discovery
// protocol, and the per-entry renderer.
package picture

// Kind identifies which of the nine field letters a Field represents.
type Kind uint8

const (
	KindFilename Kind = iota
	KindShortName
	KindSize
	KindTime
	KindCompression
	KindOwner
	KindAttributes
	KindGitRepo
	KindGitFile
)

// Field is one parsed picture specifier: a field kind plus the option
// letters that followed it in the picture string (spec.md §3).
type Field struct {
	Kind Kind

	// SubField selects which timestamp/size a Time/Size field reports:
	// 'a' accessed/allocation, 'c' created/compressed, 'w'/'f' written/
	// file (the default), matching the source's WhichFileSize/
	// WhichTimeStamp selector characters.
	SubField byte

	// Style selects a rendering variant: size mini/short/normal, time
	// iso/long-iso/relative/locale/..., filename long/short/FAT.
	Style byte

	// Width is the declared cell width; 0 means "auto" (width is
	// negotiated by the two-pass protocol below).
	Width int

	// Conditional marks a field carrying '?': it is only emitted when
	// the corresponding command-line option was given.
	Conditional bool

	// Enabled is the resolved value of a Conditional field, set by the
	// caller (cmd/dirx) from the active option set before rendering.
	Enabled bool

	// AttrMask is the ordered list of attribute letters for an
	// Attributes field (e.g. "rhs").
	AttrMask string

	// AutoFilenameWidth marks a Filename field with no declared width
	// that must share leftover space with its siblings once widths are
	// settled.
	AutoFilenameWidth bool

	// insertOffset is not set by Parse and is not read; a field's
	// position comes from the owning Picture's segment list.
	insertOffset int

	// groupStart/groupEnd are not set by Parse (they stay 0) and are not
	// read. Bracket groups live in Picture.groups, which the renderer
	// uses to drop a group whose conditional fields are all skipped.
	groupStart, groupEnd int
}
