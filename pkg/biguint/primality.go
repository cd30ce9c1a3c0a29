package biguint

import (
	"crypto/rand"

	"github.com/oisee/cryptocol/pkg/smalluint"
)

// WitnessSource draws a value in [0, ceiling) to use as a Miller-Rabin
// witness. *prng.RandomGeneric satisfies this shape by wrapping its
// own RandomBigUintUnder; this is a closure rather than an interface
// because a Go method cannot itself introduce a new generic type
// parameter, so RandomGeneric[E] (generic only over E) cannot
// implement a per-T interface method directly.
type WitnessSource[T smalluint.Unsigned] func(ceiling BigUInt[T]) BigUInt[T]

// defaultWitnessSource draws witnesses from crypto/rand for callers
// that don't have a prng.RandomGeneric handy.
func defaultWitnessSource[T smalluint.Unsigned](ceiling BigUInt[T]) BigUInt[T] {
	n := ceiling.Len()
	bytesPerLimb := smalluint.SizeInBytes[T]()
	buf := make([]byte, n*bytesPerLimb)
	_, _ = rand.Read(buf)

	limbs := make([]T, n)
	for i := 0; i < n; i++ {
		var v uint64
		for j := 0; j < bytesPerLimb; j++ {
			v |= uint64(buf[i*bytesPerLimb+j]) << uint(8*j)
		}
		limbs[i] = T(v)
	}

	candidate := FromArray[T](limbs)
	if ceiling.IsZero() {
		return candidate
	}
	return candidate.Mod(ceiling)
}

// IsPrimeUsingMillerRabin runs rounds of Miller-Rabin using witnesses
// drawn from crypto/rand. See IsPrimeUsingMillerRabinWithSource to
// supply witnesses from a prng.RandomGeneric instead.
func (b BigUInt[T]) IsPrimeUsingMillerRabin(rounds int) bool {
	return b.IsPrimeUsingMillerRabinWithSource(rounds, defaultWitnessSource[T])
}

// IsPrimeUsingMillerRabinWithSource writes self-1 = d*2^s, then for
// each round square-and-multiplies a witness drawn from source against
// d and checks the standard Miller-Rabin residue conditions.
func (b BigUInt[T]) IsPrimeUsingMillerRabinWithSource(rounds int, source WitnessSource[T]) bool {
	n := b.Len()
	one := fromUint[T](n, 1)
	two := fromUint[T](n, 2)
	three := fromUint[T](n, 3)

	if b.Cmp(two) < 0 {
		return false
	}
	if b.Equal(two) || b.Equal(three) {
		return true
	}
	if b.IsEven() {
		return false
	}

	nMinusOne := b.Sub(one)
	d := nMinusOne.Clone()
	s := 0
	for d.IsEven() {
		d = d.Shr(1)
		s++
	}

	for i := 0; i < rounds; i++ {
		a := source(nMinusOne)
		if a.Cmp(two) < 0 {
			a = two.Clone()
		}
		if !testMillerRabinBig(b, nMinusOne, a, d, s) {
			return false
		}
	}
	return true
}

// TestMillerRabin runs a single Miller-Rabin round against witness a,
// exposed directly for callers (and tests) that want to check one
// specific witness rather than a full randomized round count.
func (b BigUInt[T]) TestMillerRabin(a BigUInt[T]) bool {
	one := fromUint[T](b.Len(), 1)
	nMinusOne := b.Sub(one)
	d := nMinusOne.Clone()
	s := 0
	for d.IsEven() {
		d = d.Shr(1)
		s++
	}
	return testMillerRabinBig(b, nMinusOne, a, d, s)
}

func testMillerRabinBig[T smalluint.Unsigned](n, nMinusOne, a, d BigUInt[T], s int) bool {
	one := fromUint[T](n.Len(), 1)
	x := modPowBig(a, d, n)
	if x.Equal(one) || x.Equal(nMinusOne) {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = modMulBig(x, x, n)
		if x.Equal(nMinusOne) {
			return true
		}
	}
	return false
}

// modAddBig returns (a+b) mod m without needing a wider-than-T limb
// type: a wrapping add plus a compensating subtract, mirroring
// smalluint.ModularAdd one limb-width up.
func modAddBig[T smalluint.Unsigned](a, b, m BigUInt[T]) BigUInt[T] {
	a = a.Mod(m)
	b = b.Mod(m)
	sum := a.Add(b)
	if sum.HasFlag(OverflowFlag) || sum.Cmp(m) >= 0 {
		sum = sum.Sub(m)
		sum.ResetFlag(OverflowFlag)
	}
	return sum
}

// modMulBig returns (a*b) mod m via the double-and-add schedule over
// modAddBig, mirroring smalluint.ModularMul.
func modMulBig[T smalluint.Unsigned](a, b, m BigUInt[T]) BigUInt[T] {
	a = a.Mod(m)
	b = b.Clone()
	result := New[T](a.Len())
	for !b.IsZero() {
		if b.IsOdd() {
			result = modAddBig(result, a, m)
		}
		a = modAddBig(a, a, m)
		b = b.Shr(1)
	}
	return result
}

// modPowBig returns (base^exp) mod m via square-and-multiply over
// modMulBig, mirroring smalluint.ModularPow.
func modPowBig[T smalluint.Unsigned](base, exp, m BigUInt[T]) BigUInt[T] {
	one := fromUint[T](m.Len(), 1)
	if m.Equal(one) {
		return New[T](m.Len())
	}

	base = base.Mod(m)
	result := one.Clone()
	exp = exp.Clone()
	for !exp.IsZero() {
		if exp.IsOdd() {
			result = modMulBig(result, base, m)
		}
		base = modMulBig(base, base, m)
		exp = exp.Shr(1)
	}
	return result
}
