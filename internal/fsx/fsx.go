// Package fsx provides a small filesystem abstraction: just enough surface
// (read, write, existence, directory creation) to swap the real disk for an
// in-memory fake. cmd/ordmap-shell uses it to check whether a snapshot file
// exists; the snapshot package itself reads and writes files directly
// through os and github.com/natefinch/atomic, not through this interface.
package fsx

import "os"

// FS defines a minimal set of filesystem operations.
//
// Implementations: [Real] for production, [Fake] for tests.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating it if necessary and
	// truncating it if it already exists. Not atomic; callers that need
	// atomicity write through [github.com/natefinch/atomic] directly
	// against the real filesystem instead of through this interface.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Exists reports whether path exists. Returns (false, nil), not an
	// error, when the path is simply absent.
	Exists(path string) (bool, error)

	// MkdirAll creates a directory and all necessary parents. See
	// [os.MkdirAll]. No error if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error
}
