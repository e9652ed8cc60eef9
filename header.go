package wowchunk

import (
	"github.com/freadblangks/wowchunk/chunkio"
)

// HeaderSize is the encoded size of a Header in bytes.
const HeaderSize = 8

// Header is the 8-byte control record preceding every chunk payload.
// Size is the exact payload byte length that follows; it is produced by the
// writer and trusted by the reader.
type Header struct {
	Tag  Tag
	Size uint32
}

// ReadHeader decodes a Header from the buffer's current cursor.
// Having at least HeaderSize unread bytes is contract-checked.
func ReadHeader(buf *chunkio.Buffer) Header {
	chunkio.Ensure(buf.Len() >= HeaderSize, "buffer has %v bytes; a chunk header needs %v", buf.Len(), HeaderSize)
	return Header{
		Tag:  Tag(buf.ReadUint32()),
		Size: buf.ReadUint32(),
	}
}

// Write appends the 8-byte encoding of h to the buffer.
func (h Header) Write(buf *chunkio.Buffer) {
	buf.WriteUint32(uint32(h.Tag))
	buf.WriteUint32(h.Size)
}
