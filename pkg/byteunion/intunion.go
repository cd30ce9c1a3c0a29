package byteunion

import "encoding/binary"

// IntUnion backs a uint32 with its 4 constituent bytes.
type IntUnion struct {
	b [4]byte
}

// NewIntUnion builds an IntUnion from a uint32.
func NewIntUnion(v uint32) IntUnion {
	var u IntUnion
	binary.LittleEndian.PutUint32(u.b[:], v)
	return u
}

// Get returns the whole value.
func (u IntUnion) Get() uint32 { return binary.LittleEndian.Uint32(u.b[:]) }

// GetU8At returns byte i (0-3).
func (u IntUnion) GetU8At(i int) uint8 {
	checkIndex(i, 4)
	return u.b[i]
}

// GetU16At returns 16-bit word i (0 or 1).
func (u IntUnion) GetU16At(i int) uint16 {
	checkIndex(i, 2)
	return binary.LittleEndian.Uint16(u.b[i*2:])
}
