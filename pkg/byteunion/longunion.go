package byteunion

import "encoding/binary"

// LongUnion backs a uint64 with its 8 constituent bytes.
type LongUnion struct {
	b [8]byte
}

// NewLongUnion builds a LongUnion from a uint64.
func NewLongUnion(v uint64) LongUnion {
	var u LongUnion
	binary.LittleEndian.PutUint64(u.b[:], v)
	return u
}

// Get returns the whole value.
func (u LongUnion) Get() uint64 { return binary.LittleEndian.Uint64(u.b[:]) }

// GetU8At returns byte i (0-7).
func (u LongUnion) GetU8At(i int) uint8 {
	checkIndex(i, 8)
	return u.b[i]
}

// GetU16At returns 16-bit word i (0-3).
func (u LongUnion) GetU16At(i int) uint16 {
	checkIndex(i, 4)
	return binary.LittleEndian.Uint16(u.b[i*2:])
}

// GetU32At returns 32-bit word i (0 or 1).
func (u LongUnion) GetU32At(i int) uint32 {
	checkIndex(i, 2)
	return binary.LittleEndian.Uint32(u.b[i*4:])
}
