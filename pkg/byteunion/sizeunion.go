package byteunion

import (
	"encoding/binary"
	"math/bits"
)

// sizeUnionBytes is 8 on 64-bit GOARCH, 4 on 32-bit GOARCH — the
// Go-level reading of "uint/uintptr width", detected via
// math/bits.UintSize rather than a GOARCH build tag.
const sizeUnionBytes = bits.UintSize / 8

// SizeUnion backs a uint with its GOARCH-width constituent bytes.
type SizeUnion struct {
	b [sizeUnionBytes]byte
}

// NewSizeUnion builds a SizeUnion from a uint.
func NewSizeUnion(v uint) SizeUnion {
	var u SizeUnion
	putUint(u.b[:], v)
	return u
}

// Get returns the whole value.
func (u SizeUnion) Get() uint { return getUint(u.b[:]) }

// GetU8At returns byte i.
func (u SizeUnion) GetU8At(i int) uint8 {
	checkIndex(i, sizeUnionBytes)
	return u.b[i]
}

// GetU16At returns 16-bit word i.
func (u SizeUnion) GetU16At(i int) uint16 {
	checkIndex(i, sizeUnionBytes/2)
	return binary.LittleEndian.Uint16(u.b[i*2:])
}

// GetU32At returns 32-bit word i. On 32-bit GOARCH only index 0 is valid.
func (u SizeUnion) GetU32At(i int) uint32 {
	checkIndex(i, sizeUnionBytes/4)
	return binary.LittleEndian.Uint32(u.b[i*4:])
}

func putUint(b []byte, v uint) {
	if sizeUnionBytes == 8 {
		binary.LittleEndian.PutUint64(b, uint64(v))
		return
	}
	binary.LittleEndian.PutUint32(b, uint32(v))
}

func getUint(b []byte) uint {
	if sizeUnionBytes == 8 {
		return uint(binary.LittleEndian.Uint64(b))
	}
	return uint(binary.LittleEndian.Uint32(b))
}
