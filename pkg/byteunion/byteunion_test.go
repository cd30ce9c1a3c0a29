package byteunion

import (
	"testing"

	"github.com/oisee/cryptocol/pkg/biguint"
)

func TestShortUnion(t *testing.T) {
	u := NewShortUnion(0x1234)
	if u.GetU8At(0) != 0x34 || u.GetU8At(1) != 0x12 {
		t.Errorf("ShortUnion little-endian bytes wrong: %x %x", u.GetU8At(0), u.GetU8At(1))
	}
	if u.Get() != 0x1234 {
		t.Errorf("ShortUnion.Get() = %x, want 1234", u.Get())
	}
}

func TestIntUnion(t *testing.T) {
	u := NewIntUnion(0x11223344)
	if u.GetU16At(0) != 0x3344 || u.GetU16At(1) != 0x1122 {
		t.Errorf("IntUnion.GetU16At wrong: %x %x", u.GetU16At(0), u.GetU16At(1))
	}
}

func TestLongUnion(t *testing.T) {
	u := NewLongUnion(0x0102030405060708)
	if u.GetU32At(0) != 0x05060708 || u.GetU32At(1) != 0x01020304 {
		t.Errorf("LongUnion.GetU32At wrong: %x %x", u.GetU32At(0), u.GetU32At(1))
	}
}

func TestLongerUnion(t *testing.T) {
	big := biguint.FromArray[uint64]([]uint64{0x1111111111111111, 0x2222222222222222})
	u := NewLongerUnion(big)
	if u.GetU64At(0) != 0x1111111111111111 || u.GetU64At(1) != 0x2222222222222222 {
		t.Errorf("LongerUnion.GetU64At wrong")
	}
	roundTrip := u.Get()
	if !roundTrip.Equal(big) {
		t.Errorf("LongerUnion round trip mismatch")
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on out-of-range index")
		}
	}()
	u := NewShortUnion(1)
	u.GetU8At(2)
}
