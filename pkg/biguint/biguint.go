// Package biguint implements BigUInt[T], a fixed-width multi-limb
// unsigned integer generic over the limb type T: addition, subtraction,
// multiplication, division, shifts, bitwise operators, string I/O,
// overflow/underflow flags, and Miller-Rabin primality.
//
// Go has no const generics, so the limb count N is a runtime-fixed
// slice length, set once at construction and never resized afterward,
// rather than a compile-time type parameter.
package biguint

import "github.com/oisee/cryptocol/pkg/smalluint"

// BigUInt is a fixed-width unsigned integer of Len() limbs of type T.
// Limb 0 is the least significant limb (little-endian limb order only;
// big-endian limb order is not supported).
//
// The zero value is not usable directly (it has zero limbs); always
// construct through New, FromArray, FromSmallUint, or one of the
// New128/New256/New512/New1024 convenience constructors.
type BigUInt[T smalluint.Unsigned] struct {
	number []T
	flag   Flags
}

// New returns a zero-valued BigUInt with exactly n limbs. It panics if
// n <= 0 — an obviously invalid width, not a recoverable input.
func New[T smalluint.Unsigned](n int) BigUInt[T] {
	if n <= 0 {
		panic("biguint: limb count must be positive")
	}
	return BigUInt[T]{number: make([]T, n)}
}

// New128 returns a zero-valued BigUInt sized to exactly 128 bits of
// limb type T — the stand-in for a native 128-bit width, which Go
// doesn't have.
func New128[T smalluint.Unsigned]() BigUInt[T] { return New[T](limbsForBits[T](128)) }

// New256 returns a zero-valued 256-bit BigUInt.
func New256[T smalluint.Unsigned]() BigUInt[T] { return New[T](limbsForBits[T](256)) }

// New512 returns a zero-valued 512-bit BigUInt.
func New512[T smalluint.Unsigned]() BigUInt[T] { return New[T](limbsForBits[T](512)) }

// New1024 returns a zero-valued 1024-bit BigUInt.
func New1024[T smalluint.Unsigned]() BigUInt[T] { return New[T](limbsForBits[T](1024)) }

func limbsForBits[T smalluint.Unsigned](totalBits int) int {
	bitsPerLimb := smalluint.SizeInBits[T]()
	n := totalBits / bitsPerLimb
	if n == 0 {
		n = 1
	}
	return n
}

// FromArray copies limbs verbatim (limb 0 least significant) into a
// new BigUInt. It panics on an empty slice.
func FromArray[T smalluint.Unsigned](limbs []T) BigUInt[T] {
	if len(limbs) == 0 {
		panic("biguint: limb count must be positive")
	}
	cp := make([]T, len(limbs))
	copy(cp, limbs)
	return BigUInt[T]{number: cp}
}

// FromSmallUint zero-extends s into a new n-limb BigUInt. If T is at
// least as wide as S, s is written into limb 0; otherwise s is sliced
// across size_of(S)/size_of(T) limbs starting at limb 0.
func FromSmallUint[T smalluint.Unsigned, S smalluint.Unsigned](n int, s S) BigUInt[T] {
	b := New[T](n)
	tBits := smalluint.SizeInBits[T]()
	sBits := smalluint.SizeInBits[S]()

	if tBits >= sBits {
		b.number[0] = T(s)
		return b
	}

	limbsNeeded := sBits / tBits
	val := uint64(s)
	for i := 0; i < limbsNeeded && i < n; i++ {
		b.number[i] = T(val)
		val >>= uint(tBits)
	}
	return b
}

// fromUint builds an n-limb constant from a native uint64, used
// internally for small literals (0, 1, 2, 3, the modulus subtrahends
// Miller-Rabin needs) without forcing callers through FromSmallUint.
func fromUint[T smalluint.Unsigned](n int, v uint64) BigUInt[T] {
	b := New[T](n)
	bitsPerLimb := uint(smalluint.SizeInBits[T]())
	for i := 0; i < n && v != 0; i++ {
		b.number[i] = T(v)
		if bitsPerLimb >= 64 {
			v = 0
		} else {
			v >>= bitsPerLimb
		}
	}
	return b
}

// Len returns N, the number of limbs.
func (b BigUInt[T]) Len() int { return len(b.number) }

// Clone returns an independent copy of b, flags included.
func (b BigUInt[T]) Clone() BigUInt[T] {
	cp := make([]T, len(b.number))
	copy(cp, b.number)
	return BigUInt[T]{number: cp, flag: b.flag}
}

// Limb returns the i-th limb (0 = least significant).
func (b BigUInt[T]) Limb(i int) T { return b.number[i] }

// SetLimb sets the i-th limb in place.
func (b *BigUInt[T]) SetLimb(i int, v T) { b.number[i] = v }

// sameLength panics if a and b don't share a limb count; every binary
// operator requires this, mirroring the compile-time guarantee the
// source language's N type parameter gave for free.
func sameLength[T smalluint.Unsigned](a, b BigUInt[T]) {
	if len(a.number) != len(b.number) {
		panic("biguint: operands have different limb counts")
	}
}
