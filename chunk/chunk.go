// Package chunk implements the three payload shapes chunked client files are
// built from: a single fixed-layout value, a bounded array of fixed-layout
// values, and a block of null-terminated strings.
//
// Every chunk type carries the Tag a dispatcher matches file headers against,
// an initialized flag recording whether the chunk was populated (explicitly or
// by decoding it from a file), and the shared Read/Write/ByteSize contract.
// The initialized flag records provenance only; Write always serializes the
// current payload, present-in-file or not.
//
// Chunks are plain value types. They own their payload exclusively, never
// retain buffer memory past a Read or Write call, and hold no references to
// other chunks. Concurrent mutation of one chunk is the caller's problem;
// concurrent read-only access is safe.
//
// Element types must be fixed-layout: sized integers, floats, complex values,
// bools, and arrays or structs of those. Anything carrying indirection
// (pointers, slices, maps, strings, interfaces) or a platform-dependent size
// (int, uint, uintptr) cannot be copied byte-for-byte to a file; debug builds
// contract-check this on every Read and Write.
package chunk

// Buffer is the byte-cursor surface chunks decode from and encode to.
// *chunkio.Buffer implements it. Chunks request exact byte counts at the
// cursor and never seek.
type Buffer interface {
	// ReadBuff returns a view of the next n unread bytes, advancing the
	// cursor past them. The view is only valid until the next buffer call.
	ReadBuff(n int) []byte

	// WriteBuff appends n bytes and returns the slice to fill.
	WriteBuff(n int) []byte

	// Len returns the number of unread bytes.
	Len() int
}

// Chunk is the per-chunk contract a tag dispatcher drives: having read a
// header and matched its tag, the dispatcher hands the payload size to Read;
// when serializing, it sizes the header from ByteSize and calls Write.
type Chunk interface {
	// Read decodes exactly size payload bytes from the buffer's cursor and
	// marks the chunk initialized. A size incompatible with the chunk's
	// element layout or declared bounds is a contract violation.
	Read(buf Buffer, size int)

	// Write appends the chunk's serialized payload to the buffer. It does not
	// require the chunk to be initialized; the current payload, empty or not,
	// is what gets written.
	Write(buf Buffer)

	// ByteSize returns the exact number of bytes Write would produce.
	ByteSize() int

	// IsInitialized reports whether the chunk was populated by an Initialize
	// call or a Read.
	IsInitialized() bool
}
