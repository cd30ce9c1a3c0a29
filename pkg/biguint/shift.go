package biguint

import "github.com/oisee/cryptocol/pkg/smalluint"

// Shl returns b << count, leaving b untouched. See ShlAssign.
func (b BigUInt[T]) Shl(count int) BigUInt[T] {
	result := b.Clone()
	result.ShlAssign(count)
	return result
}

// Shr returns b >> count, leaving b untouched. See ShrAssign.
func (b BigUInt[T]) Shr(count int) BigUInt[T] {
	result := b.Clone()
	result.ShrAssign(count)
	return result
}

// ShlAssign shifts b left by count bits in place. A negative count
// shifts right by -count instead. Flags are reset at entry, then
// OverflowFlag is set if any bit shifted off the top was nonzero.
func (b *BigUInt[T]) ShlAssign(count int) {
	b.ResetAllFlags()
	if count < 0 {
		b.shrMagnitude(-count)
		return
	}
	b.shlMagnitude(count)
}

// ShrAssign shifts b right by count bits in place. A negative count
// shifts left by -count instead. Flags are reset at entry, then
// UnderflowFlag is set if any bit shifted off the bottom was nonzero.
func (b *BigUInt[T]) ShrAssign(count int) {
	b.ResetAllFlags()
	if count < 0 {
		b.shlMagnitude(-count)
		return
	}
	b.shrMagnitude(count)
}

func (b *BigUInt[T]) shlMagnitude(count int) {
	n := b.Len()
	bitsPerLimb := smalluint.SizeInBits[T]()
	totalBits := n * bitsPerLimb
	if count == 0 {
		return
	}
	if count >= totalBits {
		overflowed := !rawIsZero(b.number)
		for i := range b.number {
			b.number[i] = 0
		}
		if overflowed {
			b.SetFlag(OverflowFlag)
		}
		return
	}
	overflowed := topBitsNonZero(b.number, count, bitsPerLimb)
	for i := 0; i < count; i++ {
		rawShiftLeftOne(b.number)
	}
	if overflowed {
		b.SetFlag(OverflowFlag)
	}
}

func (b *BigUInt[T]) shrMagnitude(count int) {
	n := b.Len()
	bitsPerLimb := smalluint.SizeInBits[T]()
	totalBits := n * bitsPerLimb
	if count == 0 {
		return
	}
	if count >= totalBits {
		underflowed := !rawIsZero(b.number)
		for i := range b.number {
			b.number[i] = 0
		}
		if underflowed {
			b.SetFlag(UnderflowFlag)
		}
		return
	}
	underflowed := bottomBitsNonZero(b.number, count, bitsPerLimb)
	for i := 0; i < count; i++ {
		rawShiftRightOne(b.number)
	}
	if underflowed {
		b.SetFlag(UnderflowFlag)
	}
}

// topBitsNonZero reports whether any of the top `count` bits of limbs
// (the bits a left shift by count would push out) is set.
func topBitsNonZero[T smalluint.Unsigned](limbs []T, count, bitsPerLimb int) bool {
	totalBits := len(limbs) * bitsPerLimb
	for i := totalBits - count; i < totalBits; i++ {
		limbIdx := i / bitsPerLimb
		bitIdx := i % bitsPerLimb
		if (limbs[limbIdx]>>uint(bitIdx))&1 == 1 {
			return true
		}
	}
	return false
}

// bottomBitsNonZero reports whether any of the low `count` bits of
// limbs (the bits a right shift by count would push out) is set.
func bottomBitsNonZero[T smalluint.Unsigned](limbs []T, count, bitsPerLimb int) bool {
	for i := 0; i < count; i++ {
		limbIdx := i / bitsPerLimb
		bitIdx := i % bitsPerLimb
		if (limbs[limbIdx]>>uint(bitIdx))&1 == 1 {
			return true
		}
	}
	return false
}
