package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freadblangks/wowchunk/chunk"
	"github.com/freadblangks/wowchunk/chunkio"
)

func TestStringBlockRead(t *testing.T) {
	payload := []byte("foo\x00bar\x00")

	b := chunk.NewStringBlock(tagMWMO)
	b.Read(chunkio.NewBuffer(payload), len(payload))

	require.True(t, b.IsInitialized())
	require.Equal(t, 2, b.Size())
	require.Equal(t, "foo", *b.At(0))
	require.Equal(t, "bar", *b.At(1))
	require.Equal(t, len(payload), b.ByteSize())

	buf := new(chunkio.Buffer)
	b.Write(buf)
	require.Equal(t, payload, buf.Bytes())
}

// A trailing run without a terminator decodes as one final string; writing
// the block back canonicalizes it by emitting the missing terminator.
func TestStringBlockTrailingUnterminated(t *testing.T) {
	b := chunk.NewStringBlock(tagMWMO)
	b.Read(chunkio.NewBuffer([]byte("foo\x00bar")), 7)

	require.Equal(t, []string{"foo", "bar"}, b.Elements())

	buf := new(chunkio.Buffer)
	b.Write(buf)
	require.Equal(t, []byte("foo\x00bar\x00"), buf.Bytes())
}

func TestStringBlockEmptyStrings(t *testing.T) {
	// Adjacent terminators are empty strings, not separators to collapse.
	b := chunk.NewStringBlock(tagMWMO)
	b.Read(chunkio.NewBuffer([]byte("\x00\x00a\x00")), 4)

	require.Equal(t, []string{"", "", "a"}, b.Elements())
	require.Equal(t, 4, b.ByteSize())
}

func TestStringBlockMutation(t *testing.T) {
	b := chunk.NewStringBlock(tagMWMO)
	b.Initialize()
	b.Add("one")
	b.Add("two")
	b.Add("three")

	b.Remove(1)
	require.Equal(t, []string{"one", "three"}, b.Elements())

	*b.At(0) = "uno"
	require.Equal(t, "uno", *b.At(0))

	b.Clear()
	require.Equal(t, 0, b.Size())
	require.Equal(t, 0, b.ByteSize())
}

func TestBoundedStringBlock(t *testing.T) {
	b := chunk.NewBoundedStringBlock(tagMWMO, 1, 2)
	b.InitializeWith([]string{"a", "b"})

	requireViolation(t, func() { b.Add("c") })
	b.Remove(0)
	requireViolation(t, func() { b.Remove(0) })

	requireViolation(t, func() {
		c := chunk.NewBoundedStringBlock(tagMWMO, 1, 2)
		c.Read(chunkio.NewBuffer([]byte("a\x00b\x00c\x00")), 6)
	})
}

func TestStringOffsetAdd(t *testing.T) {
	b := chunk.NewStringOffsetBlock(tagMWMO)
	b.Initialize()

	require.Equal(t, uint32(0), b.Add("foo"))
	require.Equal(t, uint32(4), b.Add("bar"))

	// Re-adding an equal string reuses the existing entry.
	require.Equal(t, uint32(0), b.Add("foo"))
	require.Equal(t, 2, b.Size())

	require.Equal(t, uint32(8), b.Add("baz"))
	require.Equal(t, chunk.StringEntry{Offset: 4, Value: "bar"}, b.At(1))
}

func TestStringOffsetRead(t *testing.T) {
	// Equal strings already distinct in the payload stay distinct entries.
	payload := []byte("foo\x00bar\x00foo\x00")

	b := chunk.NewStringOffsetBlock(tagMWMO)
	b.Read(chunkio.NewBuffer(payload), len(payload))

	require.Equal(t, []chunk.StringEntry{
		{Offset: 0, Value: "foo"},
		{Offset: 4, Value: "bar"},
		{Offset: 8, Value: "foo"},
	}, b.Elements())
	require.Equal(t, len(payload), b.ByteSize())

	buf := new(chunkio.Buffer)
	b.Write(buf)
	require.Equal(t, payload, buf.Bytes())
}

func TestStringOffsetRemove(t *testing.T) {
	b := chunk.NewStringOffsetBlock(tagMWMO)
	b.InitializeWith([]string{"one", "two", "three"})

	b.Remove(1)

	// Offsets of later entries are recomputed against the new layout.
	require.Equal(t, []chunk.StringEntry{
		{Offset: 0, Value: "one"},
		{Offset: 4, Value: "three"},
	}, b.Elements())

	b.Remove(0)
	require.Equal(t, []chunk.StringEntry{
		{Offset: 0, Value: "three"},
	}, b.Elements())
}

func TestStringOffsetByOffset(t *testing.T) {
	b := chunk.NewStringOffsetBlock(tagMWMO)
	b.InitializeWith([]string{"one", "two"})

	s, ok := b.ByOffset(4)
	require.True(t, ok)
	require.Equal(t, "two", s)

	_, ok = b.ByOffset(2)
	require.False(t, ok)
}

func TestStringOffsetInitializeWithDedup(t *testing.T) {
	b := chunk.NewStringOffsetBlock(tagMWMO)
	b.InitializeWith([]string{"foo", "bar", "foo"})

	require.Equal(t, 2, b.Size())
	require.True(t, b.IsInitialized())
}

func TestStringBlockVariantsShareLayout(t *testing.T) {
	ss := []string{"a", "bc", "def"}

	normal := chunk.NewStringBlock(tagMWMO)
	normal.InitializeWith(ss)

	offset := chunk.NewStringOffsetBlock(tagMWMO)
	offset.InitializeWith(ss)

	require.Equal(t, normal.ByteSize(), offset.ByteSize())

	nbuf := new(chunkio.Buffer)
	obuf := new(chunkio.Buffer)
	normal.Write(nbuf)
	offset.Write(obuf)
	require.Equal(t, nbuf.Bytes(), obuf.Bytes())
}
