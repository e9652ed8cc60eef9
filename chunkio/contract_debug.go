//go:build !chunkrelease

package chunkio

// Debug enables contract checking. Build with -tags chunkrelease to compile
// checks out entirely; violated preconditions are then undefined behaviour.
const Debug = true
