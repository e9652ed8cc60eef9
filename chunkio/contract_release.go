//go:build chunkrelease

package chunkio

// Debug is false in release builds; contract checks are dead code.
const Debug = false
