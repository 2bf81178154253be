package ordmap

import "fmt"

// Debug gates precondition checks that are expensive enough to skip in a
// release build but valuable during development and in tests.
//
// When Debug is true, violating a checked precondition (erasing with a
// foreign iterator, calling Reserve with a smaller capacity, advancing an
// exhausted iterator) panics with a descriptive message. Using an iterator
// after a mutation of its Map is not detected, even with Debug set. When
// Debug is false,
// the same calls are undefined behavior: they may panic, corrupt the Map,
// or silently do the wrong thing. Tests should run with Debug = true.
//
// This mirrors the "fatal in debug builds, undefined in release" precondition
// model: key-not-found is never an error (it is an ordinary false/zero
// result), but an out-of-contract call is a programming bug, not a runtime
// condition to recover from.
var Debug = true

func preconditionf(format string, args ...any) {
	if Debug {
		panic(fmt.Sprintf("ordmap: precondition violated: "+format, args...))
	}
}
