package biguint

import "testing"

func u64(limbs ...uint64) BigUInt[uint64] { return FromArray[uint64](limbs) }

func TestAddCarry(t *testing.T) {
	a := u64(^uint64(0), 0)
	b := u64(1, 0)
	sum := a.Add(b)
	if sum.Limb(0) != 0 || sum.Limb(1) != 1 {
		t.Errorf("Add carry into limb 1 failed: got (%d,%d)", sum.Limb(0), sum.Limb(1))
	}
	if sum.HasFlag(OverflowFlag) {
		t.Errorf("Add should not overflow when the carry fits in N limbs")
	}

	top := u64(^uint64(0), ^uint64(0))
	one := u64(1, 0)
	wrapped := top.Add(one)
	if !wrapped.IsZero() {
		t.Errorf("Add at max should wrap to zero, got %v", wrapped)
	}
	if !wrapped.HasFlag(OverflowFlag) {
		t.Errorf("Add past max should set OverflowFlag")
	}
}

func TestSubBorrow(t *testing.T) {
	a := u64(0, 1)
	b := u64(1, 0)
	diff := a.Sub(b)
	if diff.Limb(0) != ^uint64(0) || diff.Limb(1) != 0 {
		t.Errorf("Sub borrow from limb 1 failed: got (%d,%d)", diff.Limb(0), diff.Limb(1))
	}

	zero := u64(0, 0)
	one := u64(1, 0)
	wrapped := zero.Sub(one)
	if !wrapped.HasFlag(UnderflowFlag) {
		t.Errorf("Sub below zero should set UnderflowFlag")
	}
}

func TestMul(t *testing.T) {
	a := u64(3, 0)
	b := u64(4, 0)
	product := a.Mul(b)
	if product.Limb(0) != 12 || product.Limb(1) != 0 {
		t.Errorf("Mul(3,4) = %v, want 12", product)
	}

	hi := u64(0, 1) // 2^64
	two := u64(2, 0)
	doubled := hi.Mul(two)
	if doubled.Limb(0) != 0 || doubled.Limb(1) != 2 {
		t.Errorf("Mul(2^64,2) = %v, want 2^65", doubled)
	}
}

func TestDivideFully(t *testing.T) {
	a := u64(100, 0)
	b := u64(7, 0)
	q, r := a.DivideFully(b)
	if q.Limb(0) != 14 || r.Limb(0) != 2 {
		t.Errorf("100/7 = (%d rem %d), want (14 rem 2)", q.Limb(0), r.Limb(0))
	}

	zero := u64(0, 0)
	_, r2 := a.DivideFully(zero)
	if !r2.HasFlag(DividedByZeroFlag) || r2.Limb(0) != 100 {
		t.Errorf("division by zero should flag and return the dividend as remainder")
	}

	if _, ok := a.CheckedDiv(zero); ok {
		t.Errorf("CheckedDiv by zero should return ok=false")
	}
}

func TestShifts(t *testing.T) {
	a := u64(1, 0)
	shifted := a.Shl(64)
	if shifted.Limb(0) != 0 || shifted.Limb(1) != 1 {
		t.Errorf("1<<64 = %v, want limb1=1", shifted)
	}

	back := shifted.Shr(64)
	if back.Limb(0) != 1 || back.Limb(1) != 0 {
		t.Errorf("(1<<64)>>64 = %v, want 1", back)
	}

	top := u64(0, 1 << 63)
	overflowed := top.Shl(1)
	if !overflowed.HasFlag(OverflowFlag) {
		t.Errorf("shifting the top bit off the end should set OverflowFlag")
	}

	negShift := a.Shl(-1)
	if !negShift.Equal(a.Shr(1)) {
		t.Errorf("a negative shift count should invert direction")
	}
}

func TestBitwiseAndCompare(t *testing.T) {
	a := u64(0xFF, 0)
	b := u64(0x0F, 0)
	if got := a.And(b); got.Limb(0) != 0x0F {
		t.Errorf("And mismatch: %v", got)
	}
	if got := a.Xor(b); got.Limb(0) != 0xF0 {
		t.Errorf("Xor mismatch: %v", got)
	}
	if !a.Less(u64(0x100, 0)) {
		t.Errorf("Less mismatch")
	}
	if a.Cmp(a.Clone()) != 0 {
		t.Errorf("Cmp of equal values should be 0")
	}
}

func TestStringRadix(t *testing.T) {
	v, err := FromStringRadix[uint64](2, "FF", 16)
	if err != nil {
		t.Fatalf("FromStringRadix error: %v", err)
	}
	if v.Limb(0) != 255 {
		t.Errorf("parsed 0xFF = %d, want 255", v.Limb(0))
	}
	if got := v.ToStringWithRadix(16); got != "FF" {
		t.Errorf("ToStringWithRadix(16) = %q, want FF", got)
	}

	dec := u64(12345, 0)
	if got := dec.String(); got != "12345" {
		t.Errorf("String() = %q, want 12345", got)
	}

	if _, err := FromStringRadix[uint64](2, "12z", 10); err == nil {
		t.Errorf("expected ErrInvalidDigit for digit z in radix 10")
	}
	if _, err := FromStringRadix[uint64](2, "1", 99); err != ErrInvalidRadix {
		t.Errorf("expected ErrInvalidRadix for radix 99")
	}
}

func TestKnownPrimesAndComposites(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 97, 541}
	for _, p := range primes {
		n := u64(p, 0)
		if !n.IsPrimeUsingMillerRabin(20) {
			t.Errorf("%d should be prime", p)
		}
	}

	composites := []uint64{4, 6, 8, 9, 15, 21, 25, 49, 100, 561}
	for _, c := range composites {
		n := u64(c, 0)
		if n.IsPrimeUsingMillerRabin(20) {
			t.Errorf("%d should be composite", c)
		}
	}
}

func TestPredicates(t *testing.T) {
	a := SetSubmax[uint64](2, 70)
	if a.Limb(0) != ^uint64(0) || a.Limb(1) != (uint64(1)<<6)-1 {
		t.Errorf("SetSubmax(2,70) = %v, want low 70 bits set", a)
	}

	check := GenerateCheckBits[uint64](2, 64)
	if check.Limb(0) != 0 || check.Limb(1) != 1 {
		t.Errorf("GenerateCheckBits(2,64) = %v, want bit 64 set", check)
	}

	msb := u64(0, 0).SetMSB()
	if msb.Limb(1) != 1<<63 {
		t.Errorf("SetMSB should set the top bit of the top limb")
	}
}
