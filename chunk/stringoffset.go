package chunk

import (
	"github.com/freadblangks/wowchunk"
	"github.com/freadblangks/wowchunk/chunkio"
)

// StringEntry pairs a string with its byte offset inside the block's
// serialized form; the position other chunks use to reference it.
type StringEntry struct {
	Offset uint32
	Value  string
}

// NewStringOffsetBlock returns an unbounded StringOffsetBlock chunk
// registered under tag.
func NewStringOffsetBlock(tag wowchunk.Tag) StringOffsetBlock {
	return StringOffsetBlock{Tag: tag}
}

// NewBoundedStringOffsetBlock returns a StringOffsetBlock chunk whose string
// count is contract-checked against [min, max] on reads, initializers and
// mutation.
func NewBoundedStringOffsetBlock(tag wowchunk.Tag, min, max int) StringOffsetBlock {
	return StringOffsetBlock{Tag: tag, bounds: declaredBounds(min, max)}
}

// StringOffsetBlock wraps an ordered list of null-terminated strings indexed
// by byte offset. The serialized form is identical to StringBlock's; offsets
// are derived, each entry's offset being the summed len+1 of the entries
// before it. Offsets are therefore always unique and always consistent with
// what Write produces.
//
// Add deduplicates: adding a string equal to a present entry appends nothing
// and hands back the existing entry's offset, so references to equal strings
// share bytes in the file. Strings that arrive distinct in a decoded payload
// stay distinct entries.
//
// Entries are exposed by value; mutating a stored string would silently shift
// every offset after it, so reshaping the block goes through Add and Remove,
// which keep the derived offsets current.
type StringOffsetBlock struct {
	// Tag identifies the chunk to the dispatcher.
	Tag wowchunk.Tag

	entries     []StringEntry
	bounds      bounds
	initialized bool
}

// Initialize empties the payload and marks the chunk initialized.
func (c *StringOffsetBlock) Initialize() {
	c.entries = c.entries[:0]
	c.initialized = true
}

// InitializeWith populates the block from ss in order, applying the Add
// dedup policy, and marks the chunk initialized. The resulting entry count
// must satisfy declared bounds; contract-checked.
func (c *StringOffsetBlock) InitializeWith(ss []string) {
	c.entries = c.entries[:0]
	c.initialized = true
	for _, s := range ss {
		c.Add(s)
	}
	c.bounds.check(len(c.entries))
}

// Read consumes exactly size bytes from the buffer's cursor, splitting them
// on zero bytes and recording each string's starting offset. Equal strings in
// the payload stay distinct entries; their offsets differ by position.
// The trailing-unterminated policy matches StringBlock.Read. The resulting
// string count must satisfy declared bounds; contract-checked.
func (c *StringOffsetBlock) Read(buf Buffer, size int) {
	chunkio.Ensure(buf.Len() >= size, "buffer has %v bytes; chunk needs %v", buf.Len(), size)
	ss := splitStrings(buf.ReadBuff(size))
	c.bounds.check(len(ss))
	c.entries = make([]StringEntry, len(ss))
	off := uint32(0)
	for i, s := range ss {
		c.entries[i] = StringEntry{Offset: off, Value: s}
		off += uint32(len(s)) + 1
	}
	c.initialized = true
}

// Write appends every string followed by its terminator, in storage order;
// the same bytes a StringBlock with these strings would produce.
func (c *StringOffsetBlock) Write(buf Buffer) {
	b := buf.WriteBuff(c.ByteSize())
	off := 0
	for _, e := range c.entries {
		off += copy(b[off:], e.Value)
		b[off] = 0
		off++
	}
}

// Size returns the current entry count.
func (c *StringOffsetBlock) Size() int {
	return len(c.entries)
}

// ByteSize returns the sum of len(s)+1 over all entries.
func (c *StringOffsetBlock) ByteSize() (n int) {
	for _, e := range c.entries {
		n += len(e.Value) + 1
	}
	return
}

// IsInitialized reports whether the chunk was populated by an initializer or Read.
func (c *StringOffsetBlock) IsInitialized() bool {
	return c.initialized
}

// Add appends s and returns its offset. If an equal string is already
// present, nothing is appended and the existing entry's offset is returned.
// When appending, the grown count must not pass a declared maximum;
// contract-checked.
func (c *StringOffsetBlock) Add(s string) uint32 {
	for _, e := range c.entries {
		if e.Value == s {
			return e.Offset
		}
	}
	c.bounds.checkGrow(len(c.entries) + 1)
	off := uint32(c.ByteSize())
	c.entries = append(c.entries, StringEntry{Offset: off, Value: s})
	return off
}

// Remove deletes the entry at index and recomputes the offsets of the
// entries after it, keeping them consistent with the serialized layout.
// Index validity and a declared minimum are contract-checked.
func (c *StringOffsetBlock) Remove(index int) {
	chunkio.Ensure(index >= 0 && index < len(c.entries), "index %v out of range; %v entries", index, len(c.entries))
	c.bounds.checkShrink(len(c.entries) - 1)

	off := uint32(0)
	if index > 0 {
		prev := c.entries[index-1]
		off = prev.Offset + uint32(len(prev.Value)) + 1
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
	for i := index; i < len(c.entries); i++ {
		c.entries[i].Offset = off
		off += uint32(len(c.entries[i].Value)) + 1
	}
}

// Clear empties the payload.
func (c *StringOffsetBlock) Clear() {
	c.entries = c.entries[:0]
}

// At returns the entry at index. Index validity is contract-checked.
func (c *StringOffsetBlock) At(index int) StringEntry {
	chunkio.Ensure(index >= 0 && index < len(c.entries), "index %v out of range; %v entries", index, len(c.entries))
	return c.entries[index]
}

// ByOffset resolves a byte offset back to its string; how chunks that store
// string references by offset look their strings up.
func (c *StringOffsetBlock) ByOffset(offset uint32) (string, bool) {
	for _, e := range c.entries {
		if e.Offset == offset {
			return e.Value, true
		}
	}
	return "", false
}

// Elements returns the payload as a slice, in storage order. It is a live
// view; Add and Remove invalidate it.
func (c *StringOffsetBlock) Elements() []StringEntry {
	return c.entries
}

var _ Chunk = (*StringOffsetBlock)(nil)
