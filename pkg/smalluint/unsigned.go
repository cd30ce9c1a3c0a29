// Package smalluint implements the SmallUInt capability: a uniform
// arithmetic, overflow, and bit surface over the native unsigned
// integer widths. pkg/biguint, pkg/byteunion, and pkg/prng all build
// on this package instead of duplicating wrapping/overflow logic per
// width.
package smalluint

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Unsigned is the set of native widths the engine limbs over. 128-bit
// values are not a case of this constraint: they are represented as a
// 2-limb biguint.BigUInt[uint64] instead, since Go has no native
// 128-bit integer and no const generics to special-case it.
type Unsigned interface {
	constraints.Unsigned
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SizeInBytes returns size_of::<T>() in bytes.
func SizeInBytes[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInBits returns size_of::<T>() * 8.
func SizeInBits[T Unsigned]() int {
	return SizeInBytes[T]() * 8
}

// Zero returns the additive identity.
func Zero[T Unsigned]() T { return T(0) }

// One returns the multiplicative identity.
func One[T Unsigned]() T { return T(1) }

// Max returns the all-ones value for T.
func Max[T Unsigned]() T {
	var zero T
	return ^zero
}

// Min returns the zero value for T (unsigned types have no lower bound below zero).
func Min[T Unsigned]() T { return T(0) }

// IsZero reports whether n == 0.
func IsZero[T Unsigned](n T) bool { return n == 0 }

// IsOne reports whether n == 1.
func IsOne[T Unsigned](n T) bool { return n == 1 }

// IsOdd reports whether the least significant bit of n is set.
func IsOdd[T Unsigned](n T) bool { return n&1 == 1 }

// IsEven reports whether the least significant bit of n is clear.
func IsEven[T Unsigned](n T) bool { return n&1 == 0 }

// IsMSBSet reports whether the most significant bit of n is set.
func IsMSBSet[T Unsigned](n T) bool {
	return n&msbMask[T]() != 0
}

func msbMask[T Unsigned]() T {
	return T(1) << (SizeInBits[T]() - 1)
}

// IsBitSet reports whether bit pos is set. ok is false if pos is out
// of range for T.
func IsBitSet[T Unsigned](n T, pos int) (bit bool, ok bool) {
	if pos < 0 || pos >= SizeInBits[T]() {
		return false, false
	}
	return n&(T(1)<<uint(pos)) != 0, true
}

// SetMSB returns n with its most significant bit set.
func SetMSB[T Unsigned](n T) T { return n | msbMask[T]() }

// SetLSB returns n with its least significant bit set.
func SetLSB[T Unsigned](n T) T { return n | T(1) }

// GenerateCheckBits returns a value with only bit pos set, or zero if
// pos is out of range.
func GenerateCheckBits[T Unsigned](pos int) T {
	if pos < 0 || pos >= SizeInBits[T]() {
		return 0
	}
	return T(1) << uint(pos)
}

// SetSubmax returns a value with the low `bits` bits all set to one.
// bits >= SizeInBits[T]() returns Max[T]().
func SetSubmax[T Unsigned](bits int) T {
	if bits <= 0 {
		return 0
	}
	if bits >= SizeInBits[T]() {
		return Max[T]()
	}
	return (T(1) << uint(bits)) - 1
}

// SetHalfmax returns a value with the low half of the bits all set to one.
func SetHalfmax[T Unsigned]() T {
	return SetSubmax[T](SizeInBits[T]() / 2)
}

// IsMax reports whether n is the all-ones value for T.
func IsMax[T Unsigned](n T) bool { return n == Max[T]() }
