package byteunion

import "encoding/binary"

// ShortUnion backs a uint16 with its 2 constituent bytes.
type ShortUnion struct {
	b [2]byte
}

// NewShortUnion builds a ShortUnion from a uint16.
func NewShortUnion(v uint16) ShortUnion {
	var u ShortUnion
	binary.LittleEndian.PutUint16(u.b[:], v)
	return u
}

// Get returns the whole value.
func (u ShortUnion) Get() uint16 { return binary.LittleEndian.Uint16(u.b[:]) }

// GetU8At returns byte i (0 or 1).
func (u ShortUnion) GetU8At(i int) uint8 {
	checkIndex(i, 2)
	return u.b[i]
}
