package chunk

import (
	"github.com/freadblangks/wowchunk"
	"github.com/freadblangks/wowchunk/chunkio"
)

// NewFixedArray returns a FixedArray chunk registered under tag, holding
// exactly n elements from construction on.
func NewFixedArray[T any](tag wowchunk.Tag, n int) FixedArray[T] {
	chunkio.Ensure(n >= 0, "capacity %v is negative", n)
	return FixedArray[T]{Tag: tag, elements: make([]T, n)}
}

// FixedArray wraps exactly n fixed-layout structures; the pattern of chunks
// whose record count is mandated by the format, like a header block with a
// fixed number of sub-records. The count is set at construction and every
// successful Initialize or Read preserves it, so consumers get the exact-count
// guarantee from the type rather than a runtime branch. There are no
// mutators; use Array for variable-length chunks.
type FixedArray[T any] struct {
	// Tag identifies the chunk to the dispatcher.
	Tag wowchunk.Tag

	elements    []T
	initialized bool
}

// Initialize resets every slot to the zero value and marks the chunk initialized.
func (c *FixedArray[T]) Initialize() {
	var zero T
	for i := range c.elements {
		c.elements[i] = zero
	}
	c.initialized = true
}

// InitializeFill populates the chunk with n copies of v.
// n must equal the declared capacity; contract-checked.
func (c *FixedArray[T]) InitializeFill(v T, n int) {
	chunkio.Ensure(n == len(c.elements), "fill count %v does not match fixed capacity %v", n, len(c.elements))
	for i := range c.elements {
		c.elements[i] = v
	}
	c.initialized = true
}

// InitializeWith copies s into the payload.
// len(s) must equal the declared capacity; contract-checked.
func (c *FixedArray[T]) InitializeWith(s []T) {
	chunkio.Ensure(len(s) == len(c.elements), "source count %v does not match fixed capacity %v", len(s), len(c.elements))
	copy(c.elements, s)
	c.initialized = true
}

// Read bulk-decodes the payload from the buffer's cursor.
// size must equal capacity * Sizeof[T]() exactly; contract-checked.
func (c *FixedArray[T]) Read(buf Buffer, size int) {
	verifyLayout[T]()
	want := c.ByteSize()
	chunkio.Ensure(size == want, "chunk size %v does not match fixed payload size %v", size, want)
	chunkio.Ensure(buf.Len() >= size, "buffer has %v bytes; chunk needs %v", buf.Len(), size)
	copy(sliceBytes(c.elements), buf.ReadBuff(size))
	c.initialized = true
}

// Write appends the raw bytes of every slot, in storage order.
func (c *FixedArray[T]) Write(buf Buffer) {
	verifyLayout[T]()
	copy(buf.WriteBuff(c.ByteSize()), sliceBytes(c.elements))
}

// Size returns the declared capacity; the element count never differs from it.
func (c *FixedArray[T]) Size() int {
	return len(c.elements)
}

// ByteSize returns Size() * Sizeof[T]().
func (c *FixedArray[T]) ByteSize() int {
	return len(c.elements) * Sizeof[T]()
}

// IsInitialized reports whether the chunk was populated by an initializer or Read.
func (c *FixedArray[T]) IsInitialized() bool {
	return c.initialized
}

// At returns a pointer to the element at index for reading or mutation.
// Index validity is contract-checked.
func (c *FixedArray[T]) At(index int) *T {
	chunkio.Ensure(index >= 0 && index < len(c.elements), "index %v out of range; %v elements", index, len(c.elements))
	return &c.elements[index]
}

// Elements returns the payload as a slice, in storage order. It is a live
// view over all slots.
func (c *FixedArray[T]) Elements() []T {
	return c.elements
}

var _ Chunk = (*FixedArray[uint32])(nil)
