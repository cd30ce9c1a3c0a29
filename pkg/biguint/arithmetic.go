package biguint

// Add returns b + rhs, leaving b untouched. See AddAssign for the
// overflow contract.
func (b BigUInt[T]) Add(rhs BigUInt[T]) BigUInt[T] {
	result := b.Clone()
	result.AddAssign(rhs)
	return result
}

// AddAssign adds rhs into b limb by limb, threading a carry via
// smalluint.CarryingAdd. A carry out of the top limb sets OverflowFlag
// without disturbing any flag already set.
func (b *BigUInt[T]) AddAssign(rhs BigUInt[T]) {
	sameLength[T](*b, rhs)
	if rawAdd(b.number, rhs.number) {
		b.SetFlag(OverflowFlag)
	}
}

// Sub returns b - rhs, leaving b untouched. See SubAssign for the
// underflow contract.
func (b BigUInt[T]) Sub(rhs BigUInt[T]) BigUInt[T] {
	result := b.Clone()
	result.SubAssign(rhs)
	return result
}

// SubAssign subtracts rhs from b limb by limb via smalluint.BorrowingSub.
// A borrow past the top limb sets UnderflowFlag (the result wraps)
// without disturbing other flags.
func (b *BigUInt[T]) SubAssign(rhs BigUInt[T]) {
	sameLength[T](*b, rhs)
	if rawSub(b.number, rhs.number) {
		b.SetFlag(UnderflowFlag)
	}
}

// UncheckedAdd returns b + rhs and panics if this addition overflows,
// the one arithmetic entry point that panics instead of flagging.
// Sticky flags already set on b do not trigger a false panic: only the
// overflow produced by this specific addition is checked.
func (b BigUInt[T]) UncheckedAdd(rhs BigUInt[T]) BigUInt[T] {
	result := b.Clone()
	result.ResetAllFlags()
	result.AddAssign(rhs)
	if result.HasFlag(OverflowFlag) {
		panic("biguint: UncheckedAdd overflowed")
	}
	return result
}

// UncheckedSub returns b - rhs and panics if this subtraction underflows.
func (b BigUInt[T]) UncheckedSub(rhs BigUInt[T]) BigUInt[T] {
	result := b.Clone()
	result.ResetAllFlags()
	result.SubAssign(rhs)
	if result.HasFlag(UnderflowFlag) {
		panic("biguint: UncheckedSub underflowed")
	}
	return result
}
