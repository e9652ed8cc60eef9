package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freadblangks/wowchunk/chunk"
	"github.com/freadblangks/wowchunk/chunkio"
)

func TestDataRoundTrip(t *testing.T) {
	in := chunk.NewData[placement](tagMDDF)
	require.False(t, in.IsInitialized())

	in.InitializeWith(placement{
		NameID:   7,
		UniqueID: 4242,
		Position: [3]float32{1.5, -2.25, 300},
		Rotation: [3]float32{0, 90, 180},
		Scale:    1024,
		Flags:    3,
	})
	require.True(t, in.IsInitialized())
	require.Equal(t, chunk.Sizeof[placement](), in.ByteSize())

	buf := new(chunkio.Buffer)
	in.Write(buf)
	require.Equal(t, in.ByteSize(), buf.Len())

	out := chunk.NewData[placement](tagMDDF)
	out.Read(buf, in.ByteSize())

	require.True(t, out.IsInitialized())
	require.Equal(t, in.Value, out.Value)
	require.Equal(t, 0, buf.Len())
}

func TestDataReadBytes(t *testing.T) {
	ver := chunk.NewData[versionData](tagMVER)
	ver.Read(chunkio.NewBuffer([]byte{18, 0, 0, 0}), 4)

	require.True(t, ver.IsInitialized())
	require.Equal(t, uint32(18), ver.Value.Version)
}

func TestDataWriteUninitialized(t *testing.T) {
	// Write never requires initialization; the zero payload is serialized as is.
	var ver chunk.Data[versionData]

	buf := new(chunkio.Buffer)
	ver.Write(buf)

	require.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())
	require.False(t, ver.IsInitialized())
}

func TestDataInitialize(t *testing.T) {
	ver := chunk.NewData[versionData](tagMVER)
	ver.InitializeWith(versionData{Version: 9})
	ver.Initialize()

	require.True(t, ver.IsInitialized())
	require.Equal(t, uint32(0), ver.Value.Version)
}

func TestDataSizeMismatch(t *testing.T) {
	ver := chunk.NewData[versionData](tagMVER)
	buf := chunkio.NewBuffer(make([]byte, 8))

	requireViolation(t, func() {
		ver.Read(buf, 8)
	})
}

func TestDataShortBuffer(t *testing.T) {
	ver := chunk.NewData[versionData](tagMVER)
	buf := chunkio.NewBuffer([]byte{1, 2})

	requireViolation(t, func() {
		ver.Read(buf, 4)
	})
}

func TestDataBadLayout(t *testing.T) {
	// Strings carry indirection and cannot be copied byte-for-byte.
	var c chunk.Data[struct{ Name string }]
	buf := chunkio.NewBuffer(make([]byte, chunk.Sizeof[struct{ Name string }]()))

	requireViolation(t, func() {
		c.Read(buf, buf.Len())
	})
}
