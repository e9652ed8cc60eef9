package chunkio

import (
	"fmt"
	"io"
)

// NewBuffer returns a Buffer reading from data, cursor at the start.
// The buffer takes ownership of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{buff: data}
}

// Buffer is a cursor-based byte store. Reads consume from the cursor; writes
// append at the end. The zero value is an empty buffer ready for writes.
//
// Slices returned by ReadBuff and WriteBuff point into the buffer's storage
// and are only valid until the next call that grows it.
type Buffer struct {
	buff []byte
	off  int
}

// Read implements io.Reader
func (b *Buffer) Read(buff []byte) (int, error) {
	n := copy(buff, b.buff[b.off:])
	b.off += n
	if n < len(buff) {
		return n, io.EOF
	}
	return n, nil
}

// ReadByte implements io.ByteReader
func (b *Buffer) ReadByte() (byte, error) {
	if b.Len() == 0 {
		return 0, io.EOF
	}
	by := b.buff[b.off]
	b.off++
	return by, nil
}

// ReadBuff returns a view of the next n unread bytes, advancing the cursor
// past them. If fewer than n bytes remain, the view covers only the remainder.
func (b *Buffer) ReadBuff(n int) []byte {
	if b.Len() < n {
		n = b.Len()
	}
	b.off += n
	return b.buff[b.off-n : b.off]
}

// ReadUint32 reads a constant-length (4 byte) little-endian encoding of a
// uint32; the native integer layout of chunked files.
func (b *Buffer) ReadUint32() (n uint32) {
	buff := b.ReadBuff(4)
	Ensure(len(buff) == 4, "buffer exhausted reading a uint32; got %v bytes", len(buff))
	n = uint32(buff[0])
	n += uint32(buff[1]) << 8
	n += uint32(buff[2]) << 16
	n += uint32(buff[3]) << 24
	return
}

// Write implements io.Writer
func (b *Buffer) Write(buff []byte) (int, error) {
	return copy(b.buff[b.grow(len(buff)):], buff), nil
}

// WriteByte implements io.ByteWriter
func (b *Buffer) WriteByte(by byte) error {
	b.buff[b.grow(1)] = by
	return nil
}

// WriteBuff appends n bytes and returns the slice to fill.
// The slice must be written before other calls on the buffer.
func (b *Buffer) WriteBuff(n int) []byte {
	return b.buff[b.grow(n):]
}

// WriteUint32 appends a constant-length (4 byte) little-endian encoding of n.
func (b *Buffer) WriteUint32(n uint32) {
	buff := b.WriteBuff(4)
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
}

// Len returns the length of the unread portion of the buffer.
func (b *Buffer) Len() int {
	return len(b.buff) - b.off
}

// Size returns the total size of the buffer, read or not.
func (b *Buffer) Size() int {
	return len(b.buff)
}

// Bytes returns the unread portion of the buffer without consuming it.
func (b *Buffer) Bytes() []byte {
	return b.buff[b.off:]
}

// Reset clears the buffer, retaining storage for later writes.
func (b *Buffer) Reset() {
	b.buff = b.buff[:0]
	b.off = 0
}

func (b *Buffer) grow(n int) int {
	if n > TooBig {
		panic(fmt.Errorf("%v is too big", n))
	}

	l := len(b.buff)
	if l+n <= cap(b.buff) {
		b.buff = b.buff[:l+n]
		return l
	}

	l -= b.off
	c := cap(b.buff)
	if (l+n)*8 <= c { // let cap grow to 8 times the size so we're not always sliding.
		// slide down
		copy(b.buff, b.buff[b.off:])
		b.buff = b.buff[:l+n]
		b.off = 0
		return l
	}
	// must allocate
	nb := make([]byte, l+n, c*2+n)
	copy(nb, b.buff[b.off:])
	b.buff = nb
	b.off = 0
	return l
}
