package chunk

import (
	"reflect"
	"unsafe"

	"github.com/freadblangks/wowchunk/chunkio"
)

// Sizeof returns the in-memory byte size of T, which for a fixed-layout type
// equals its serialized size.
func Sizeof[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// bytesOf views the memory of *v as a byte slice.
func bytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// sliceBytes views the backing memory of s as a byte slice.
func sliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), uintptr(len(s))*unsafe.Sizeof(s[0]))
}

// verifyLayout contract-checks that T is safe to copy byte-for-byte.
// Debug builds only; release builds assume the caller picked a sane type.
func verifyLayout[T any]() {
	if !chunkio.Debug {
		return
	}
	var v T
	t := reflect.TypeOf(v)
	chunkio.Ensure(fixedLayout(t), "%v is not a fixed-layout type", t)
}

func fixedLayout(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return fixedLayout(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !fixedLayout(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// int, uint and uintptr are platform-sized; everything else is indirect.
		return false
	}
}
