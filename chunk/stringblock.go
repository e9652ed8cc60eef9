package chunk

import (
	"github.com/freadblangks/wowchunk"
	"github.com/freadblangks/wowchunk/chunkio"
)

// NewStringBlock returns an unbounded StringBlock chunk registered under tag.
func NewStringBlock(tag wowchunk.Tag) StringBlock {
	return StringBlock{Tag: tag}
}

// NewBoundedStringBlock returns a StringBlock chunk whose string count is
// contract-checked against [min, max] on reads, initializers and mutation.
func NewBoundedStringBlock(tag wowchunk.Tag, min, max int) StringBlock {
	return StringBlock{Tag: tag, bounds: declaredBounds(min, max)}
}

// StringBlock wraps an ordered list of null-terminated strings. On disk the
// payload is the concatenation, in order, of each string's bytes followed by
// one zero byte. Stored strings never contain the terminator.
//
// A payload whose last string is missing its terminator decodes to that
// string all the same; Write then emits the terminator, canonicalizing the
// block. String content always round-trips, byte-exact layout round-trips
// whenever the source block was properly terminated.
type StringBlock struct {
	// Tag identifies the chunk to the dispatcher.
	Tag wowchunk.Tag

	strings     []string
	bounds      bounds
	initialized bool
}

// Initialize empties the payload and marks the chunk initialized.
func (c *StringBlock) Initialize() {
	c.strings = c.strings[:0]
	c.initialized = true
}

// InitializeWith adopts ss as the payload verbatim.
// len(ss) must satisfy declared bounds; contract-checked.
func (c *StringBlock) InitializeWith(ss []string) {
	c.bounds.check(len(ss))
	c.strings = ss
	c.initialized = true
}

// Read consumes exactly size bytes from the buffer's cursor and splits them
// on zero bytes. The resulting string count must satisfy declared bounds;
// contract-checked.
func (c *StringBlock) Read(buf Buffer, size int) {
	chunkio.Ensure(buf.Len() >= size, "buffer has %v bytes; chunk needs %v", buf.Len(), size)
	ss := splitStrings(buf.ReadBuff(size))
	c.bounds.check(len(ss))
	c.strings = ss
	c.initialized = true
}

// Write appends every string followed by its terminator, in storage order.
func (c *StringBlock) Write(buf Buffer) {
	b := buf.WriteBuff(c.ByteSize())
	off := 0
	for _, s := range c.strings {
		off += copy(b[off:], s)
		b[off] = 0
		off++
	}
}

// Size returns the current string count.
func (c *StringBlock) Size() int {
	return len(c.strings)
}

// ByteSize returns the sum of len(s)+1 over all strings.
func (c *StringBlock) ByteSize() (n int) {
	for _, s := range c.strings {
		n += len(s) + 1
	}
	return
}

// IsInitialized reports whether the chunk was populated by an initializer or Read.
func (c *StringBlock) IsInitialized() bool {
	return c.initialized
}

// Add appends s to the block. The grown count must not pass a declared
// maximum; contract-checked. No path conversion is performed on filepath
// strings.
func (c *StringBlock) Add(s string) {
	c.bounds.checkGrow(len(c.strings) + 1)
	c.strings = append(c.strings, s)
}

// Remove deletes the string at index, preserving order.
// Index validity and a declared minimum are contract-checked.
func (c *StringBlock) Remove(index int) {
	chunkio.Ensure(index >= 0 && index < len(c.strings), "index %v out of range; %v strings", index, len(c.strings))
	c.bounds.checkShrink(len(c.strings) - 1)
	c.strings = append(c.strings[:index], c.strings[index+1:]...)
}

// Clear empties the payload.
func (c *StringBlock) Clear() {
	c.strings = c.strings[:0]
}

// At returns a pointer to the string at index for reading or replacement.
// Index validity is contract-checked.
func (c *StringBlock) At(index int) *string {
	chunkio.Ensure(index >= 0 && index < len(c.strings), "index %v out of range; %v strings", index, len(c.strings))
	return &c.strings[index]
}

// Elements returns the payload as a slice, in storage order. It is a live
// view; Add and Remove invalidate it.
func (c *StringBlock) Elements() []string {
	return c.strings
}

var _ Chunk = (*StringBlock)(nil)

// splitStrings splits b on zero bytes. A trailing run without a terminator
// becomes one final string.
func splitStrings(b []byte) []string {
	var ss []string
	start := 0
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			ss = append(ss, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		ss = append(ss, string(b[start:]))
	}
	return ss
}
