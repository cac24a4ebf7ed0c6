package scan

import "path/filepath"

// VolumeKey returns the volume identity of dir: its drive letter or UNC
// share root on Windows (filepath.VolumeName), or "" everywhere else.
// The driver compares successive VolumeKeys to decide when to emit a
// volume footer/header pair (spec.md §4.6's "Volume tracking").
func VolumeKey(dir string) string {
	return filepath.VolumeName(filepath.Clean(dir))
}

// IsFATVolume reports whether dir's volume uses the FAT filesystem,
// which forces FAT list formatting (8.3 name justification, modified-
// time-only fields) unless the caller explicitly overrides it.
// Querying a volume's filesystem type is platform-specific (Windows'
// FSCTL_QUERY_FILE_SYSTEM, Linux's statfs f_type) with no portable
// stdlib equivalent, so this is a swappable func-var defaulting to
// "never FAT" rather than a hand-rolled syscall shim; a build-tagged
// replacement can swap it in without touching any caller.
var IsFATVolume = func(dir string) bool { return false }
