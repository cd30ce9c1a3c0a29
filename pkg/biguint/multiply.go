package biguint

import "github.com/oisee/cryptocol/pkg/smalluint"

// Mul returns b * rhs, leaving b untouched.
func (b BigUInt[T]) Mul(rhs BigUInt[T]) BigUInt[T] {
	result := b.Clone()
	result.MulAssign(rhs)
	return result
}

// MulAssign implements the schoolbook one-bit-at-a-time shift-add
// algorithm:
//
//	result = 0
//	for each limb L of rhs from most-significant to least-significant:
//	    for each bit of L from MSB to LSB:
//	        result <<= 1
//	        if bit == 1: result += self
//
// Both the shift and the add happen on the raw limb slice (not through
// ShlAssign/AddAssign) so a partial product's overflow doesn't get
// lost to an intermediate flag reset; MulAssign itself only ever sets
// OverflowFlag, accumulating it across every internal step, and never
// clears flags already set on b.
func (b *BigUInt[T]) MulAssign(rhs BigUInt[T]) {
	sameLength[T](*b, rhs)

	if rawIsZero(b.number) || rawIsZero(rhs.number) {
		for i := range b.number {
			b.number[i] = 0
		}
		return
	}

	self := make([]T, len(b.number))
	copy(self, b.number)

	acc := make([]T, len(b.number))
	overflowed := false
	bitsPerLimb := smalluint.SizeInBits[T]()

	for i := len(rhs.number) - 1; i >= 0; i-- {
		limb := rhs.number[i]
		for bit := bitsPerLimb - 1; bit >= 0; bit-- {
			if rawShiftLeftOne(acc) {
				overflowed = true
			}
			if (limb>>uint(bit))&1 == 1 {
				if rawAdd(acc, self) {
					overflowed = true
				}
			}
		}
	}

	copy(b.number, acc)
	if overflowed {
		b.SetFlag(OverflowFlag)
	}
}
