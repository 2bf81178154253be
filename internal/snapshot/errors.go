// Package snapshot persists the logical contents of an [ordmap.Map] to a
// small binary file and restores it again.
//
// A snapshot is a throwaway convenience for the CLI tools in cmd/: on
// corruption or version mismatch, delete and rebuild from whatever source
// populated the map in the first place. It does not serialize the map's
// three-region internals, only its logical key/value pairs, so reloading a
// snapshot never reproduces the original Storage/Buffer/Erased layout - only
// the same contents in the same iteration order.
package snapshot

import "errors"

// Error classification follows the same rebuild-vs-operational split used
// elsewhere in this codebase: [ErrCorrupt] and [ErrIncompatible] mean
// "delete the file and start over"; everything else is an ordinary
// operational failure from the underlying filesystem.
var (
	// ErrCorrupt indicates the snapshot file is truncated or its checksum
	// doesn't match its contents (rebuild-class).
	ErrCorrupt = errors.New("snapshot: corrupt")
	// ErrIncompatible indicates the snapshot file has the wrong magic number
	// or was written by an incompatible format version (rebuild-class).
	ErrIncompatible = errors.New("snapshot: incompatible")
)
