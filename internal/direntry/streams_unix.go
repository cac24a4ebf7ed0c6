//go:build !windows

package direntry

// StreamLookup populates e.Streams on platforms with alternate-data-stream
// support. Outside Windows there is no such mechanism, so this is always a
// no-op returning nil (spec.md §1: ADS enumeration is an external
// collaborator, out of scope beyond the Stream field itself).
func StreamLookup(path string) ([]Stream, error) {
	return nil, nil
}
