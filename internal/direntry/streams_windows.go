//go:build windows

package direntry

// StreamLookup is reserved for a real NTFS alternate-data-stream
// enumeration (BackupRead / FindFirstStreamW); out of scope here, so it
// returns an empty list rather than erroring, keeping the Streams field
// well-defined on every platform.
func StreamLookup(path string) ([]Stream, error) {
	return nil, nil
}
