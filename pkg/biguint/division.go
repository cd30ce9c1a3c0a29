package biguint

import "github.com/oisee/cryptocol/pkg/smalluint"

// DivideFully is the single division/remainder primitive: every other
// division surface is a projection of it. A zero divisor sets
// DividedByZeroFlag on both results and returns a zero quotient and
// the dividend itself as remainder, rather than panicking.
func (b BigUInt[T]) DivideFully(rhs BigUInt[T]) (quotient, remainder BigUInt[T]) {
	sameLength[T](b, rhs)
	n := b.Len()
	quotient = New[T](n)
	remainder = New[T](n)

	if rawIsZero(rhs.number) {
		quotient.SetFlag(DividedByZeroFlag)
		remainder = b.Clone()
		remainder.SetFlag(DividedByZeroFlag)
		return
	}

	bitsPerLimb := smalluint.SizeInBits[T]()
	totalBits := n * bitsPerLimb

	for i := totalBits - 1; i >= 0; i-- {
		rawShiftLeftOne(remainder.number)
		limbIdx := i / bitsPerLimb
		bitIdx := i % bitsPerLimb
		if (b.number[limbIdx]>>uint(bitIdx))&1 == 1 {
			remainder.number[0] |= 1
		}
		if rawCompare(remainder.number, rhs.number) >= 0 {
			rawSub(remainder.number, rhs.number)
			quotient.number[limbIdx] |= T(1) << uint(bitIdx)
		}
	}
	return
}

// Div returns b / rhs. Division by zero returns zero, with
// DividedByZeroFlag set on the result — see DivideFully.
func (b BigUInt[T]) Div(rhs BigUInt[T]) BigUInt[T] {
	q, _ := b.DivideFully(rhs)
	return q
}

// Mod returns b % rhs. Division by zero returns b itself, with
// DividedByZeroFlag set on the result — see DivideFully.
func (b BigUInt[T]) Mod(rhs BigUInt[T]) BigUInt[T] {
	_, r := b.DivideFully(rhs)
	return r
}

// CheckedDiv returns (b/rhs, true), or (zero, false) if rhs is zero —
// the ok-bool alternative to reading DividedByZeroFlag.
func (b BigUInt[T]) CheckedDiv(rhs BigUInt[T]) (BigUInt[T], bool) {
	if rhs.IsZero() {
		return New[T](b.Len()), false
	}
	return b.Div(rhs), true
}

// CheckedMod returns (b%rhs, true), or (zero, false) if rhs is zero.
func (b BigUInt[T]) CheckedMod(rhs BigUInt[T]) (BigUInt[T], bool) {
	if rhs.IsZero() {
		return New[T](b.Len()), false
	}
	return b.Mod(rhs), true
}
