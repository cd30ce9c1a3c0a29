package prng

import (
	"testing"

	"github.com/oisee/cryptocol/pkg/biguint"
)

type nullEngine struct{}

func (nullEngine) SowArray(material []uint64)      {}
func (nullEngine) Harvest(sugar uint64) [8]uint64 { return [8]uint64{} }

func zeroLimit() biguint.BigUInt[uint64] {
	return biguint.New[uint64](2)
}

func TestRandomUnderStaysInBounds(t *testing.T) {
	r := NewAnyNum()
	seen := make(map[uint32]bool)
	for i := 0; i < 10000; i++ {
		v, ok := RandomUnder[uint32](r, 1000)
		if !ok {
			t.Fatalf("RandomUnder should not fail for a nonzero ceiling")
		}
		if v >= 1000 {
			t.Fatalf("RandomUnder(1000) produced %d, want < 1000", v)
		}
		seen[v] = true
	}
	if len(seen) < 500 {
		t.Errorf("RandomUnder(1000) over 10000 draws produced only %d distinct values, want >= 500", len(seen))
	}
}

func TestRandomUnderZeroCeiling(t *testing.T) {
	r := NewAnyNum()
	if _, ok := RandomUnder[uint32](r, 0); ok {
		t.Errorf("RandomUnder(0) should return ok=false")
	}
}

func TestRandomOddBigUintWithMSBSet(t *testing.T) {
	r := NewAnyNum()
	for i := 0; i < 1000; i++ {
		v := RandomOddBigUintWithMSBSet[uint64](r, 8)
		if !v.IsOdd() {
			t.Fatalf("draw %d is not odd", i)
		}
		if bit, _ := v.IsBitSet(8*64 - 1); !bit {
			t.Fatalf("draw %d does not have its MSB set", i)
		}
	}
}

func TestRandomPrimeUsingMillerRabin(t *testing.T) {
	r := NewAnyNum()
	p := RandomPrimeUsingMillerRabin[uint64](r, 2, 20)
	if !p.IsPrimeUsingMillerRabin(20) {
		t.Errorf("RandomPrimeUsingMillerRabin returned a value that fails its own primality check")
	}
	if !p.IsOdd() {
		t.Errorf("RandomPrimeUsingMillerRabin should return an odd candidate")
	}
}

func TestZeroCountLimitRejected(t *testing.T) {
	if _, err := New(nullEngine{}, nullEngine{}, zeroLimit()); err == nil {
		t.Errorf("New with a zero countLimit should return an error")
	}
}
