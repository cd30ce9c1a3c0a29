package smalluint

import "testing"

func TestCheckedAdd(t *testing.T) {
	if sum, ok := CheckedAdd(uint8(200), uint8(50)); !ok || sum != 250 {
		t.Errorf("CheckedAdd(200,50) = (%d,%v), want (250,true)", sum, ok)
	}
	if _, ok := CheckedAdd(uint8(200), uint8(100)); ok {
		t.Errorf("CheckedAdd(200,100) should overflow")
	}
}

func TestCarryingAdd(t *testing.T) {
	sum, carry := CarryingAdd(Max[uint8](), uint8(0), true)
	if sum != 0 || !carry {
		t.Errorf("CarryingAdd(max,0,true) = (%d,%v), want (0,true)", sum, carry)
	}
	sum, carry = CarryingAdd(uint8(1), uint8(1), false)
	if sum != 2 || carry {
		t.Errorf("CarryingAdd(1,1,false) = (%d,%v), want (2,false)", sum, carry)
	}
}

func TestBorrowingSub(t *testing.T) {
	diff, borrow := BorrowingSub(uint8(0), uint8(1), false)
	if diff != Max[uint8]() || !borrow {
		t.Errorf("BorrowingSub(0,1,false) = (%d,%v), want (%d,true)", diff, borrow, Max[uint8]())
	}
}

func TestWideningMul(t *testing.T) {
	lo, hi := WideningMul(uint64(1)<<63, uint64(2))
	if lo != 0 || hi != 1 {
		t.Errorf("WideningMul(2^63,2) = (%d,%d), want (0,1)", lo, hi)
	}
	lo8, hi8 := WideningMul(uint8(200), uint8(200))
	want := uint16(200) * uint16(200)
	if uint16(hi8)<<8|uint16(lo8) != want {
		t.Errorf("WideningMul(200,200) = (%d,%d), want product %d", lo8, hi8, want)
	}
}

func TestModularArithmetic(t *testing.T) {
	if got := ModularAdd(uint8(250), uint8(10), uint8(7)); got != (250+10)%7 {
		t.Errorf("ModularAdd(250,10,7) = %d, want %d", got, (250+10)%7)
	}
	if got := ModularMul(uint64(123456789), uint64(987654321), uint64(1000000007)); got != (123456789*987654321)%1000000007 {
		t.Errorf("ModularMul mismatch: got %d", got)
	}
	if got := ModularPow(uint64(2), uint64(10), uint64(1000)); got != 24 {
		t.Errorf("ModularPow(2,10,1000) = %d, want 24", got)
	}
}

func TestBitHelpers(t *testing.T) {
	if !IsOdd(uint8(3)) || IsOdd(uint8(4)) {
		t.Errorf("IsOdd mismatch")
	}
	if !IsMSBSet(uint8(0x80)) || IsMSBSet(uint8(0x7F)) {
		t.Errorf("IsMSBSet mismatch")
	}
	if RotateLeft(uint8(0b10000001), 1) != 0b00000011 {
		t.Errorf("RotateLeft mismatch: got %08b", RotateLeft(uint8(0b10000001), 1))
	}
	if RotateRight(uint8(0b00000011), 1) != 0b10000001 {
		t.Errorf("RotateRight mismatch: got %08b", RotateRight(uint8(0b00000011), 1))
	}
	if ReverseBits(uint8(0b10000000)) != 0b00000001 {
		t.Errorf("ReverseBits mismatch")
	}
	if SwapBytes(uint16(0x1234)) != 0x3412 {
		t.Errorf("SwapBytes mismatch: got %x", SwapBytes(uint16(0x1234)))
	}
}

func TestSetSubmax(t *testing.T) {
	if SetSubmax[uint8](4) != 0b00001111 {
		t.Errorf("SetSubmax(4) mismatch: got %08b", SetSubmax[uint8](4))
	}
	if SetHalfmax[uint8]() != 0x0F {
		t.Errorf("SetHalfmax mismatch: got %x", SetHalfmax[uint8]())
	}
}

func TestKnownPrimesAndComposites(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}
	for _, p := range primes {
		if !IsPrimeUsingMillerRabin(p, 5) {
			t.Errorf("IsPrimeUsingMillerRabin(%d) = false, want true", p)
		}
	}
	composites := []uint64{4, 9, 15, 21, 25}
	for _, c := range composites {
		if IsPrimeUsingMillerRabin(c, 5) {
			t.Errorf("IsPrimeUsingMillerRabin(%d) = true, want false", c)
		}
	}
}
