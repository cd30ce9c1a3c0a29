package byteunion

import (
	"encoding/binary"

	"github.com/oisee/cryptocol/pkg/biguint"
)

// LongerUnion backs the 128-bit tier with its 16 constituent bytes.
// The 128-bit value itself is a 2-limb biguint.BigUInt[uint64], not a
// dedicated fixed-size integer type — Go has neither a native 128-bit
// integer nor const generics to special-case one.
type LongerUnion struct {
	b [16]byte
}

// NewLongerUnion builds a LongerUnion from a 2-limb BigUInt[uint64].
// It panics if big does not have exactly 2 limbs.
func NewLongerUnion(big biguint.BigUInt[uint64]) LongerUnion {
	if big.Len() != 2 {
		panic("byteunion: LongerUnion requires a 2-limb BigUInt")
	}
	var u LongerUnion
	binary.LittleEndian.PutUint64(u.b[0:8], big.Limb(0))
	binary.LittleEndian.PutUint64(u.b[8:16], big.Limb(1))
	return u
}

// Get returns the whole value as a 2-limb BigUInt[uint64].
func (u LongerUnion) Get() biguint.BigUInt[uint64] {
	low := binary.LittleEndian.Uint64(u.b[0:8])
	high := binary.LittleEndian.Uint64(u.b[8:16])
	return biguint.FromArray[uint64]([]uint64{low, high})
}

// GetU8At returns byte i (0-15).
func (u LongerUnion) GetU8At(i int) uint8 {
	checkIndex(i, 16)
	return u.b[i]
}

// GetU16At returns 16-bit word i (0-7).
func (u LongerUnion) GetU16At(i int) uint16 {
	checkIndex(i, 8)
	return binary.LittleEndian.Uint16(u.b[i*2:])
}

// GetU32At returns 32-bit word i (0-3).
func (u LongerUnion) GetU32At(i int) uint32 {
	checkIndex(i, 4)
	return binary.LittleEndian.Uint32(u.b[i*4:])
}

// GetU64At returns 64-bit word i (0 or 1).
func (u LongerUnion) GetU64At(i int) uint64 {
	checkIndex(i, 2)
	return binary.LittleEndian.Uint64(u.b[i*8:])
}
