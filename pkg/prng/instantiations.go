package prng

import (
	"github.com/oisee/cryptocol/pkg/biguint"
	"github.com/oisee/cryptocol/pkg/hashengine"
	"github.com/oisee/cryptocol/pkg/randengine"
)

// pow2Limit returns a 2-limb countLimit of exactly 2^exp.
func pow2Limit(exp int) biguint.BigUInt[uint64] {
	if exp < 64 {
		return biguint.FromArray[uint64]([]uint64{uint64(1) << uint(exp), 0})
	}
	return biguint.FromArray[uint64]([]uint64{0, uint64(1) << uint(exp-64)})
}

func uintLimit(v uint64) biguint.BigUInt[uint64] {
	return biguint.FromArray[uint64]([]uint64{v, 0})
}

func maxLimit() biguint.BigUInt[uint64] {
	return biguint.FromArray[uint64]([]uint64{^uint64(0), ^uint64(0)})
}

// newHashInstance builds a RandomGeneric[randengine.Engine] driven by
// two independent instances of the same hash algorithm. The
// countLimit values passed in by every caller below never pass zero,
// so the constructor error is unreachable here and is discarded for
// ergonomics.
func newHashInstance(newHasher func() hashengine.Hasher, countLimit biguint.BigUInt[uint64]) *RandomGeneric[randengine.Engine] {
	seed := randengine.Engine(randengine.NewHashEngine(newHasher()))
	aux := randengine.Engine(randengine.NewHashEngine(newHasher()))
	r, _ := New(seed, aux, countLimit)
	return r
}

// NewAnyMD4 is the "AnyMD4" alias: MD4-driven, countLimit = 2^18/4.
func NewAnyMD4() *RandomGeneric[randengine.Engine] {
	return newHashInstance(func() hashengine.Hasher { return hashengine.NewMD4() }, pow2Limit(16))
}

// NewAnyMD5 is the "AnyMD5" alias: MD5-driven, countLimit = 2^18/4.
func NewAnyMD5() *RandomGeneric[randengine.Engine] {
	return newHashInstance(func() hashengine.Hasher { return hashengine.NewMD5() }, pow2Limit(16))
}

// NewAnySHA0 is the "AnySHA0" alias: SHA-0-driven, countLimit = 2^33/4.
func NewAnySHA0() *RandomGeneric[randengine.Engine] {
	return newHashInstance(func() hashengine.Hasher { return hashengine.NewSHA0() }, pow2Limit(31))
}

// NewAnySHA1 is the "AnySHA1" alias: SHA-1-driven, countLimit = 2^63/4.
func NewAnySHA1() *RandomGeneric[randengine.Engine] {
	return newHashInstance(func() hashengine.Hasher { return hashengine.NewSHA1() }, pow2Limit(61))
}

// NewAnySHA256 is the "AnySHA256" alias: SHA-2-256-driven,
// countLimit = 2^128/2 = 2^127.
func NewAnySHA256() *RandomGeneric[randengine.Engine] {
	return newHashInstance(func() hashengine.Hasher { return hashengine.NewSHA256() }, pow2Limit(127))
}

// NewAnySHA512 is the "AnySHA512" alias: SHA-2-512-driven,
// countLimit = u128::MAX.
func NewAnySHA512() *RandomGeneric[randengine.Engine] {
	return newHashInstance(func() hashengine.Hasher { return hashengine.NewSHA512() }, maxLimit())
}

// NewRandomSHA512 is the "RandomSHA512" alias: SHA-2-512-driven with a
// tighter re-seed cadence (countLimit = 100).
func NewRandomSHA512() *RandomGeneric[randengine.Engine] {
	return newHashInstance(func() hashengine.Hasher { return hashengine.NewSHA512() }, uintLimit(100))
}

// NewAnyNum is the "AnyNum" alias: the fast, weak 8-lane LCG engine,
// countLimit = 2^31 - 1.
func NewAnyNum() *RandomGeneric[randengine.Engine] {
	seed := randengine.Engine(randengine.NewLCGEngine())
	aux := randengine.Engine(randengine.NewLCGEngine())
	r, _ := New(seed, aux, uintLimit((uint64(1)<<31)-1))
	return r
}

// NewAny is the "Any" alias, the default non-crypto instantiation: = AnySHA256.
func NewAny() *RandomGeneric[randengine.Engine] { return NewAnySHA256() }

// NewRandom is the "Random" alias, the default crypto-leaning
// instantiation: = RandomSHA512.
func NewRandom() *RandomGeneric[randengine.Engine] { return NewRandomSHA512() }
