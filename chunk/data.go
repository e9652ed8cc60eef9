package chunk

import (
	"github.com/freadblangks/wowchunk"
	"github.com/freadblangks/wowchunk/chunkio"
)

// NewData returns a Data chunk registered under tag.
func NewData[T any](tag wowchunk.Tag) Data[T] {
	return Data[T]{Tag: tag}
}

// Data wraps exactly one fixed-layout structure; the common pattern of
// header-like chunks where the payload size always equals the structure size.
//
// Value is exported so callers can treat the chunk transparently as the
// structure it wraps: read it, assign to it, or take its address.
type Data[T any] struct {
	// Tag identifies the chunk to the dispatcher.
	Tag wowchunk.Tag

	// Value is the wrapped structure.
	Value T

	initialized bool
}

// Initialize resets Value to its zero value and marks the chunk initialized.
func (c *Data[T]) Initialize() {
	var zero T
	c.Value = zero
	c.initialized = true
}

// InitializeWith copies v into Value and marks the chunk initialized.
func (c *Data[T]) InitializeWith(v T) {
	c.Value = v
	c.initialized = true
}

// Read decodes Value from the next Sizeof[T]() bytes at the buffer's cursor.
// size must equal Sizeof[T]() exactly; contract-checked.
func (c *Data[T]) Read(buf Buffer, size int) {
	verifyLayout[T]()
	n := Sizeof[T]()
	chunkio.Ensure(size == n, "chunk size %v does not match value size %v", size, n)
	chunkio.Ensure(buf.Len() >= n, "buffer has %v bytes; value needs %v", buf.Len(), n)
	copy(bytesOf(&c.Value), buf.ReadBuff(n))
	c.initialized = true
}

// Write appends the Sizeof[T]() raw bytes of Value to the buffer.
func (c *Data[T]) Write(buf Buffer) {
	verifyLayout[T]()
	copy(buf.WriteBuff(Sizeof[T]()), bytesOf(&c.Value))
}

// ByteSize returns Sizeof[T](), regardless of initialization state.
func (c *Data[T]) ByteSize() int {
	return Sizeof[T]()
}

// IsInitialized reports whether the chunk was populated by Initialize,
// InitializeWith or Read.
func (c *Data[T]) IsInitialized() bool {
	return c.initialized
}

var _ Chunk = (*Data[uint32])(nil)
