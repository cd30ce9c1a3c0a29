package biguint

import (
	"errors"
	"strings"

	"github.com/oisee/cryptocol/pkg/smalluint"
)

// ErrInvalidRadix is returned by FromStringRadix when radix is outside
// [2, 62].
var ErrInvalidRadix = errors.New("biguint: radix must be between 2 and 62")

// ErrInvalidDigit is returned by FromStringRadix when the input is
// empty or contains a character that is not a valid digit for radix.
var ErrInvalidDigit = errors.New("biguint: invalid digit for radix")

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// FromStringRadix parses s as an n-limb BigUInt in the given radix
// (2-62). Leading/trailing whitespace and embedded underscores
// (digit-group separators) are tolerated.
func FromStringRadix[T smalluint.Unsigned](n int, s string, radix int) (BigUInt[T], error) {
	if radix < 2 || radix > 62 {
		return BigUInt[T]{}, ErrInvalidRadix
	}
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return BigUInt[T]{}, ErrInvalidDigit
	}

	result := New[T](n)
	for _, ch := range s {
		d, ok := digitValue(ch)
		if !ok || d >= radix {
			return BigUInt[T]{}, ErrInvalidDigit
		}
		mulSmallAssign(result.number, T(radix))
		addSmallAssign(result.number, T(d))
	}
	return result, nil
}

func digitValue(ch rune) (int, bool) {
	idx := strings.IndexRune(digitAlphabet, ch)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// String renders b in decimal.
func (b BigUInt[T]) String() string {
	return b.ToStringWithRadix(10)
}

// ToStringWithRadix renders b in the given radix (2-62). Out-of-range
// radix values fall back to decimal.
func (b BigUInt[T]) ToStringWithRadix(radix int) string {
	if radix < 2 || radix > 62 {
		radix = 10
	}
	if b.IsZero() {
		return "0"
	}

	work := b.Clone()
	work.ResetAllFlags()
	divisor := fromUint[T](b.Len(), uint64(radix))

	var digits []byte
	for !work.IsZero() {
		q, r := work.DivideFully(divisor)
		digits = append(digits, digitAlphabet[r.number[0]])
		work = q
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// mulSmallAssign multiplies limbs in place by a single-limb value m,
// reporting whether the top limb's carry-out was nonzero.
func mulSmallAssign[T smalluint.Unsigned](limbs []T, m T) (overflow bool) {
	var carry T
	for i := range limbs {
		low, high := smalluint.WideningMul(limbs[i], m)
		sum, c := smalluint.CarryingAdd(low, carry, false)
		limbs[i] = sum
		carry = high
		if c {
			carry++
		}
	}
	return carry != 0
}

// addSmallAssign adds a single-limb value v into limbs in place,
// reporting whether the addition carried out of the top limb.
func addSmallAssign[T smalluint.Unsigned](limbs []T, v T) (overflow bool) {
	sum0, carry := smalluint.CarryingAdd(limbs[0], v, false)
	limbs[0] = sum0
	for i := 1; i < len(limbs) && carry; i++ {
		s, c := smalluint.CarryingAdd(limbs[i], 0, carry)
		limbs[i] = s
		carry = c
	}
	return carry
}
