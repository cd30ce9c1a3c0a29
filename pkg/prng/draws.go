package prng

import (
	"github.com/oisee/cryptocol/pkg/biguint"
	"github.com/oisee/cryptocol/pkg/randengine"
	"github.com/oisee/cryptocol/pkg/smalluint"
)

// RandomUint dispatches on size_of::<T>() into the width-indexed
// harvesting table. It is a package-level function rather than a
// method because Go methods cannot themselves introduce a new type
// parameter beyond the receiver's.
func RandomUint[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E]) T {
	switch smalluint.SizeInBytes[T]() {
	case 1:
		return T(r.randomU8())
	case 2:
		return T(r.randomU16())
	case 4:
		return T(r.randomU32())
	default:
		return T(r.randomU64())
	}
}

// RandomBigUint128 returns the native 128-bit draw directly as a
// 2-limb BigUInt[uint64].
func RandomBigUint128[E randengine.Engine](r *RandomGeneric[E]) biguint.BigUInt[uint64] {
	return r.randomU128()
}

// RandomUnder returns a value in [0, ceiling), or (0, false) if
// ceiling is zero. Modulo bias from the reduction is documented and
// accepted — this package does not perform rejection sampling.
func RandomUnder[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], ceiling T) (T, bool) {
	if ceiling == 0 {
		return 0, false
	}
	return RandomUint[T](r) % ceiling, true
}

// RandomMinMax returns a value in [lo, hi), or (0, false) if hi <= lo.
func RandomMinMax[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], lo, hi T) (T, bool) {
	if hi <= lo {
		return 0, false
	}
	under, ok := RandomUnder[T](r, hi-lo)
	if !ok {
		return 0, false
	}
	return lo + under, true
}

// RandomOdd draws a value and sets its LSB.
func RandomOdd[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E]) T {
	return smalluint.SetLSB(RandomUint[T](r))
}

// RandomOddUnder draws an odd value in [0, ceiling), or (0, false) if
// ceiling <= 1: draw under, set LSB, and reject (redraw) if the
// LSB-set value equals ceiling.
func RandomOddUnder[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], ceiling T) (T, bool) {
	if ceiling <= 1 {
		return 0, false
	}
	for {
		v, ok := RandomUnder[T](r, ceiling)
		if !ok {
			return 0, false
		}
		v = smalluint.SetLSB(v)
		if v != ceiling {
			return v, true
		}
	}
}

// RandomWithMSBSet draws a value and sets its MSB.
func RandomWithMSBSet[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E]) T {
	return smalluint.SetMSB(RandomUint[T](r))
}

// RandomOddWithMSBSet draws a value with both its LSB and MSB set.
func RandomOddWithMSBSet[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E]) T {
	return smalluint.SetLSB(smalluint.SetMSB(RandomUint[T](r)))
}

// RandomBigUint draws n limbs of type T and assembles them into a
// BigUInt.
func RandomBigUint[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], n int) biguint.BigUInt[T] {
	limbs := make([]T, n)
	for i := range limbs {
		limbs[i] = RandomUint[T](r)
	}
	return biguint.FromArray[T](limbs)
}

// RandomBigUintUnder draws a value in [0, ceiling), or (zero, false)
// if ceiling is zero. Like RandomUnder, this accepts the modulo bias
// from reducing a uniform draw by ceiling.
func RandomBigUintUnder[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], ceiling biguint.BigUInt[T]) (biguint.BigUInt[T], bool) {
	if ceiling.IsZero() {
		return biguint.New[T](ceiling.Len()), false
	}
	draw := RandomBigUint[T](r, ceiling.Len())
	return draw.Mod(ceiling), true
}

// RandomOddBigUint draws n limbs and sets the LSB.
func RandomOddBigUint[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], n int) biguint.BigUInt[T] {
	return RandomBigUint[T](r, n).SetLSB()
}

// RandomBigUintWithMSBSet draws n limbs and sets the MSB.
func RandomBigUintWithMSBSet[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], n int) biguint.BigUInt[T] {
	return RandomBigUint[T](r, n).SetMSB()
}

// RandomOddBigUintWithMSBSet draws n limbs with both the LSB and MSB set.
func RandomOddBigUintWithMSBSet[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], n int) biguint.BigUInt[T] {
	return RandomBigUint[T](r, n).SetLSB().SetMSB()
}

// witnessSource adapts RandomBigUintUnder into the
// biguint.WitnessSource closure Miller-Rabin needs.
func witnessSource[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E]) biguint.WitnessSource[T] {
	return func(ceiling biguint.BigUInt[T]) biguint.BigUInt[T] {
		v, ok := RandomBigUintUnder[T](r, ceiling)
		if !ok {
			return biguint.New[T](ceiling.Len())
		}
		return v
	}
}

// RandomPrimeUsingMillerRabin draws odd n-limb candidates until one
// passes rounds independent Miller-Rabin witnesses.
func RandomPrimeUsingMillerRabin[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], n, rounds int) biguint.BigUInt[T] {
	source := witnessSource[T](r)
	for {
		candidate := RandomOddBigUint[T](r, n)
		if candidate.IsPrimeUsingMillerRabinWithSource(rounds, source) {
			return candidate
		}
	}
}

// RandomPrimeWithMSBSetUsingMillerRabin is RandomPrimeUsingMillerRabin
// with the MSB forced set, guaranteeing a full n-limb-width prime.
func RandomPrimeWithMSBSetUsingMillerRabin[T smalluint.Unsigned, E randengine.Engine](r *RandomGeneric[E], n, rounds int) biguint.BigUInt[T] {
	source := witnessSource[T](r)
	for {
		candidate := RandomOddBigUintWithMSBSet[T](r, n)
		if candidate.IsPrimeUsingMillerRabinWithSource(rounds, source) {
			return candidate
		}
	}
}
