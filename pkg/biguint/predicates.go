package biguint

import "github.com/oisee/cryptocol/pkg/smalluint"

// SetMSB returns b with its overall most significant bit (the top bit
// of the top limb) set.
func (b BigUInt[T]) SetMSB() BigUInt[T] {
	result := b.Clone()
	n := result.Len()
	result.number[n-1] = smalluint.SetMSB(result.number[n-1])
	return result
}

// SetLSB returns b with its least significant bit set.
func (b BigUInt[T]) SetLSB() BigUInt[T] {
	result := b.Clone()
	result.number[0] = smalluint.SetLSB(result.number[0])
	return result
}

// IsOdd reports whether b's least significant bit is set.
func (b BigUInt[T]) IsOdd() bool { return smalluint.IsOdd(b.number[0]) }

// IsEven reports whether b's least significant bit is clear.
func (b BigUInt[T]) IsEven() bool { return !b.IsOdd() }

// IsZero reports whether every limb of b is zero. Flags are not
// considered; a zero value with a sticky flag set is still zero.
func (b BigUInt[T]) IsZero() bool { return rawIsZero(b.number) }

// IsBitSet reports whether bit pos (0 = least significant overall) is
// set. ok is false if pos is out of range for b's width.
func (b BigUInt[T]) IsBitSet(pos int) (bit bool, ok bool) {
	bitsPerLimb := smalluint.SizeInBits[T]()
	if pos < 0 || pos >= b.Len()*bitsPerLimb {
		return false, false
	}
	return smalluint.IsBitSet(b.number[pos/bitsPerLimb], pos%bitsPerLimb)
}

// IsMax reports whether every limb of b is all-ones.
func (b BigUInt[T]) IsMax() bool {
	for _, limb := range b.number {
		if !smalluint.IsMax(limb) {
			return false
		}
	}
	return true
}

// GenerateCheckBits returns an n-limb BigUInt with only bit pos set,
// or the zero value if pos is out of range.
func GenerateCheckBits[T smalluint.Unsigned](n, pos int) BigUInt[T] {
	result := New[T](n)
	bitsPerLimb := smalluint.SizeInBits[T]()
	if pos < 0 || pos >= n*bitsPerLimb {
		return result
	}
	result.number[pos/bitsPerLimb] = smalluint.GenerateCheckBits[T](pos % bitsPerLimb)
	return result
}

// SetSubmax returns an n-limb BigUInt with its low `bits` bits set to
// one and every higher bit clear. bits >= n*SizeInBits[T]() returns
// the all-ones value (the BigUInt analogue of smalluint.SetSubmax).
func SetSubmax[T smalluint.Unsigned](n, bits int) BigUInt[T] {
	result := New[T](n)
	bitsPerLimb := smalluint.SizeInBits[T]()
	if bits <= 0 {
		return result
	}
	for i := 0; i < n; i++ {
		remaining := bits - i*bitsPerLimb
		switch {
		case remaining <= 0:
			result.number[i] = 0
		case remaining >= bitsPerLimb:
			result.number[i] = smalluint.Max[T]()
		default:
			result.number[i] = smalluint.SetSubmax[T](remaining)
		}
	}
	return result
}

// SetHalfmax returns an n-limb BigUInt with its low half of bits set.
func SetHalfmax[T smalluint.Unsigned](n int) BigUInt[T] {
	bitsPerLimb := smalluint.SizeInBits[T]()
	return SetSubmax[T](n, n*bitsPerLimb/2)
}
