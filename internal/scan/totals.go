// Package scan implements the directory-walking state machine: pattern
// enumeration, volume tracking, depth-limited recursion, and per-entry
// failure handling, delegating sort and render decisions to the caller
// (spec.md §4.6).
package scan

// Totals accumulates one volume's worth of file/directory counts and
// byte sum, surfaced to OnVolumeEnd at the volume footer.
type Totals struct {
	Files uint64
	Dirs  uint64
	Bytes int64
}
