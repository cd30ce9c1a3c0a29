package biguint

import "github.com/oisee/cryptocol/pkg/smalluint"

// The raw* helpers operate directly on limb slices, with no flag
// bookkeeping of their own. They exist so multiply (which must shift
// and add internally without resetting flags set by earlier partial
// products) and division (which shifts and subtracts while building
// the quotient) can reuse the same carry/borrow propagation as the
// public Add/Sub/Shl/Shr without those operations' flag-reset
// semantics getting in the way.

func rawAdd[T smalluint.Unsigned](dst, rhs []T) (overflowed bool) {
	var carry bool
	for i := range dst {
		var r T
		if i < len(rhs) {
			r = rhs[i]
		}
		sum, c := smalluint.CarryingAdd(dst[i], r, carry)
		dst[i] = sum
		carry = c
	}
	return carry
}

func rawSub[T smalluint.Unsigned](dst, rhs []T) (underflowed bool) {
	var borrow bool
	for i := range dst {
		var r T
		if i < len(rhs) {
			r = rhs[i]
		}
		diff, bOut := smalluint.BorrowingSub(dst[i], r, borrow)
		dst[i] = diff
		borrow = bOut
	}
	return borrow
}

func rawShiftLeftOne[T smalluint.Unsigned](dst []T) (overflowed bool) {
	bitsPerLimb := uint(smalluint.SizeInBits[T]())
	msbMask := T(1) << (bitsPerLimb - 1)
	carryOut := dst[len(dst)-1]&msbMask != 0
	var carryIn T
	for i := 0; i < len(dst); i++ {
		newCarry := dst[i] & msbMask
		dst[i] = (dst[i] << 1) | carryIn
		if newCarry != 0 {
			carryIn = 1
		} else {
			carryIn = 0
		}
	}
	return carryOut
}

func rawShiftRightOne[T smalluint.Unsigned](dst []T) (underflowed bool) {
	bitsPerLimb := uint(smalluint.SizeInBits[T]())
	msbMask := T(1) << (bitsPerLimb - 1)
	carryOut := dst[0]&1 != 0
	var carryIn T
	for i := len(dst) - 1; i >= 0; i-- {
		newCarry := dst[i] & 1
		dst[i] = dst[i] >> 1
		if carryIn != 0 {
			dst[i] |= msbMask
		}
		carryIn = newCarry
	}
	return carryOut
}

func rawCompare[T smalluint.Unsigned](a, b []T) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func rawIsZero[T smalluint.Unsigned](a []T) bool {
	for _, limb := range a {
		if limb != 0 {
			return false
		}
	}
	return true
}
