// Package direntry holds the filesystem entry and pattern data model
// shared by the picture renderer and the scan driver.
package direntry

import "time"

// Attr is the bitset of attributes an Entry can carry, in the same
// numbering as internal/colorrule.Attr (the two packages intentionally
// share bit positions so a caller can cast between them without a
// translation table).
type Attr uint32

const (
	AttrReadonly Attr = 1 << iota
	AttrHidden
	AttrSystem
	AttrDirectory
	AttrArchive
	AttrEncrypted
	AttrSparse
	AttrTemporary
	AttrCompressed
	AttrOffline
	AttrNotContentIndexed
	AttrReparsePoint
)

// Stream is one alternate data stream belonging to an Entry. On platforms
// without ADS support Entry.Streams is always nil; StreamLookup never
// populates it (see streams_unix.go / streams_windows.go).
type Stream struct {
	Name string
	Size int64
}

// Entry is one immutable directory entry as populated by a single scan
// pass. Owner is populated lazily by OwnerLookup, only when a picture
// actually requests the Owner field.
type Entry struct {
	Name      string
	ShortName string

	Attr Attr

	Accessed time.Time
	Created  time.Time
	Modified time.Time

	LogicalSize    int64
	AllocationSize int64
	CompressedSize int64

	ReparseTag uint32
	Owner      string

	Streams []Stream

	// OrphanedReparse marks a reparse point whose target no longer
	// resolves (a dangling symlink/junction); colorrule's CategoryOrphan
	// and "or" predicate key off this.
	OrphanedReparse bool

	// Dir is the entry's containing directory, as rendered (used for
	// hyperlink construction and full-path rendering).
	Dir string
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool { return e.Attr&AttrDirectory != 0 }

// IsSymlink reports whether the entry is a reparse point (symlink or
// junction) of any kind.
func (e *Entry) IsSymlink() bool { return e.Attr&AttrReparsePoint != 0 }

// Path returns the entry's full path, joining Dir and Name with a single
// separator (Dir is expected to already be rendered without a trailing
// separator).
func (e *Entry) Path() string {
	if e.Dir == "" {
		return e.Name
	}
	return e.Dir + "/" + e.Name
}
