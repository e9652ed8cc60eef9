// Package wowchunk implements the chunked binary layout shared by World of Warcraft
// client file formats; files built from tagged, length-prefixed records.
//
// A chunked file is a flat sequence of records. Each record starts with an 8 byte
// Header naming the chunk with a FourCC Tag and giving the exact byte length of the
// payload that follows. The payload itself takes one of three shapes, implemented
// in wowchunk/chunk:
//
// chunk.Data wraps exactly one fixed-layout structure, for header-like chunks
// where the payload size always equals the structure size.
//
// chunk.Array and chunk.FixedArray wrap a run of fixed-layout structures, with
// optional or exact element-count guarantees for formats that mandate them.
//
// chunk.StringBlock and chunk.StringOffsetBlock wrap a block of null-terminated
// strings, the latter indexing each string by its byte offset inside the block so
// other chunks can reference strings by offset.
//
// This package holds the pieces shared by every chunk: the FourCC codec and the
// Header record. File format definitions are built elsewhere by composing the chunk
// types; the dispatch loop that reads headers and routes payloads to chunks by tag
// also lives with the format definitions. wowchunk/chunkio provides the byte-cursor
// buffer the chunks decode from and encode to.
//
// Preconditions throughout the module are enforced with debug-only contract checks;
// see wowchunk/chunkio.Ensure.
package wowchunk

import (
	"github.com/freadblangks/wowchunk/chunkio"
)

// Tag is a FourCC chunk identifier packed into 32 bits.
// It is semantically opaque; the TagOrder used to build it decides only which
// character lands in which byte.
type Tag uint32

// TagOrder determines which byte of a Tag holds which character of the FourCC.
type TagOrder uint8

const (
	// LittleTag places character 0 in the least significant byte.
	// The common order; chars read right to left in a hex dump.
	LittleTag TagOrder = iota

	// BigTag places character 0 in the most significant byte. Used by m2.
	BigTag
)

// MakeTag packs a 4-character identifier into a Tag under the given order.
// Any 4 bytes are a legal identifier; no validation of content is performed.
// The length is contract-checked.
//
// For tags known at compile time an untyped constant expression produces the
// identical LittleTag value:
//
//	const TagMVER wowchunk.Tag = 'M' | 'V'<<8 | 'E'<<16 | 'R'<<24
func MakeTag(fourcc string, order TagOrder) Tag {
	chunkio.Ensure(len(fourcc) == 4, "fourcc identifier must be 4 bytes; got %v", len(fourcc))
	if order == BigTag {
		return Tag(fourcc[0])<<24 | Tag(fourcc[1])<<16 | Tag(fourcc[2])<<8 | Tag(fourcc[3])
	}
	return Tag(fourcc[3])<<24 | Tag(fourcc[2])<<16 | Tag(fourcc[1])<<8 | Tag(fourcc[0])
}

// Fourcc unpacks the 4-character identifier from t under the given order.
// It is the inverse of MakeTag for a fixed order.
func (t Tag) Fourcc(order TagOrder) string {
	var s [4]byte
	if order == BigTag {
		s[0], s[1], s[2], s[3] = byte(t>>24), byte(t>>16), byte(t>>8), byte(t)
	} else {
		s[0], s[1], s[2], s[3] = byte(t), byte(t>>8), byte(t>>16), byte(t>>24)
	}
	return string(s[:])
}

// String returns the LittleTag reading of t. Diagnostic use only; tags built
// with BigTag will read reversed.
func (t Tag) String() string {
	return t.Fourcc(LittleTag)
}
