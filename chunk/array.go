package chunk

import (
	"github.com/freadblangks/wowchunk"
	"github.com/freadblangks/wowchunk/chunkio"
)

// NewArray returns an unbounded growable Array chunk registered under tag.
func NewArray[T any](tag wowchunk.Tag) Array[T] {
	return Array[T]{Tag: tag}
}

// NewBoundedArray returns a growable Array chunk whose element count is
// contract-checked against [min, max] on reads, initializers and mutation.
func NewBoundedArray[T any](tag wowchunk.Tag, min, max int) Array[T] {
	return Array[T]{Tag: tag, bounds: declaredBounds(min, max)}
}

// Array wraps zero or more fixed-layout structures in a growable sequence;
// the pattern of chunks holding size/Sizeof[T]() records. Formats that
// mandate an exact record count use FixedArray instead, which carries that
// guarantee in its type and has no mutators.
//
// The zero value is an uninitialized, unbounded array with a zero Tag.
type Array[T any] struct {
	// Tag identifies the chunk to the dispatcher.
	Tag wowchunk.Tag

	elements    []T
	bounds      bounds
	initialized bool
}

// Initialize empties the payload and marks the chunk initialized.
// Declared bounds are not applied here; an empty payload is the documented
// starting state even for arrays whose final count must land in [min, max].
func (c *Array[T]) Initialize() {
	c.elements = c.elements[:0]
	c.initialized = true
}

// InitializeFill populates the chunk with n copies of v.
// n must satisfy declared bounds; contract-checked.
func (c *Array[T]) InitializeFill(v T, n int) {
	c.bounds.check(n)
	c.elements = make([]T, n)
	for i := range c.elements {
		c.elements[i] = v
	}
	c.initialized = true
}

// InitializeWith adopts s as the payload verbatim.
// len(s) must satisfy declared bounds; contract-checked.
func (c *Array[T]) InitializeWith(s []T) {
	c.bounds.check(len(s))
	c.elements = s
	c.initialized = true
}

// Read bulk-decodes size/Sizeof[T]() elements from the buffer's cursor.
// size must be a multiple of Sizeof[T]() and the implied element count must
// satisfy declared bounds; contract-checked.
func (c *Array[T]) Read(buf Buffer, size int) {
	verifyLayout[T]()
	es := Sizeof[T]()
	chunkio.Ensure(es > 0, "cannot size an array payload of zero-size elements")
	chunkio.Ensure(size%es == 0, "chunk size %v is not a multiple of element size %v", size, es)
	chunkio.Ensure(buf.Len() >= size, "buffer has %v bytes; chunk needs %v", buf.Len(), size)
	count := size / es
	c.bounds.check(count)
	c.elements = make([]T, count)
	copy(sliceBytes(c.elements), buf.ReadBuff(size))
	c.initialized = true
}

// Write appends the raw bytes of every element, in storage order.
func (c *Array[T]) Write(buf Buffer) {
	verifyLayout[T]()
	copy(buf.WriteBuff(c.ByteSize()), sliceBytes(c.elements))
}

// Size returns the current element count.
func (c *Array[T]) Size() int {
	return len(c.elements)
}

// ByteSize returns Size() * Sizeof[T]().
func (c *Array[T]) ByteSize() int {
	return len(c.elements) * Sizeof[T]()
}

// IsInitialized reports whether the chunk was populated by an initializer or Read.
func (c *Array[T]) IsInitialized() bool {
	return c.initialized
}

// Add appends a zero element and returns a pointer to it for filling in.
// The grown count must not pass a declared maximum; contract-checked.
// The pointer is valid until the next Add or Remove.
func (c *Array[T]) Add() *T {
	c.bounds.checkGrow(len(c.elements) + 1)
	var zero T
	c.elements = append(c.elements, zero)
	return &c.elements[len(c.elements)-1]
}

// Remove deletes the element at index, preserving order.
// Index validity and a declared minimum are contract-checked.
func (c *Array[T]) Remove(index int) {
	chunkio.Ensure(index >= 0 && index < len(c.elements), "index %v out of range; %v elements", index, len(c.elements))
	c.bounds.checkShrink(len(c.elements) - 1)
	c.elements = append(c.elements[:index], c.elements[index+1:]...)
}

// Clear empties the payload. Like Initialize, declared bounds are not applied
// to the empty starting state.
func (c *Array[T]) Clear() {
	c.elements = c.elements[:0]
}

// At returns a pointer to the element at index for reading or mutation.
// Index validity is contract-checked.
func (c *Array[T]) At(index int) *T {
	chunkio.Ensure(index >= 0 && index < len(c.elements), "index %v out of range; %v elements", index, len(c.elements))
	return &c.elements[index]
}

// Elements returns the payload as a slice, in storage order. It is a live
// view; ranging over it is how the chunk is iterated, and element writes
// through it are seen by the chunk. Add and Remove invalidate it.
func (c *Array[T]) Elements() []T {
	return c.elements
}

var _ Chunk = (*Array[uint32])(nil)
