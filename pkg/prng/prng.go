// Package prng implements RandomGeneric, a draw schedule built on top
// of two independent randengine.Engine instances, generic over which
// Engine backs it.
package prng

import (
	"errors"

	"github.com/oisee/cryptocol/internal/entropy"
	"github.com/oisee/cryptocol/pkg/biguint"
	"github.com/oisee/cryptocol/pkg/randengine"
)

// ErrZeroCountLimit is returned by New when countLimit is zero,
// matching how the rest of this package corrects or rejects bad
// constructor arguments by returning an error rather than panicking.
var ErrZeroCountLimit = errors.New("prng: countLimit must be nonzero")

// RandomGeneric draws pseudo-random values by harvesting two
// independent Engine instances and mixing their outputs. It is built
// to be driven from one goroutine at a time; it has no internal
// mutex, so callers running it from multiple goroutines must
// synchronize externally.
type RandomGeneric[E randengine.Engine] struct {
	seedGenerator E
	auxGenerator  E
	count         biguint.BigUInt[uint64]
	sugar         uint64
	countLimit    biguint.BigUInt[uint64]
}

// New builds a RandomGeneric from two already-constructed engines and
// a draw-count ceiling. It errors if countLimit is zero.
func New[E randengine.Engine](seedEngine, auxEngine E, countLimit biguint.BigUInt[uint64]) (*RandomGeneric[E], error) {
	if countLimit.IsZero() {
		return nil, ErrZeroCountLimit
	}
	return &RandomGeneric[E]{
		seedGenerator: seedEngine,
		auxGenerator:  auxEngine,
		count:         countLimit.Clone(),
		countLimit:    countLimit,
	}, nil
}

func one128() biguint.BigUInt[uint64] {
	return biguint.FromArray[uint64]([]uint64{1, 0})
}

// changeCountAndSugar advances the draw schedule: sugar==0 re-sows
// both engines from fresh entropy, count==0 increments sugar
// (wrapping) and resets count, otherwise count is decremented.
func (r *RandomGeneric[E]) changeCountAndSugar() {
	if r.sugar == 0 {
		seed1 := entropy.CollectSeed()
		seed2 := entropy.CollectSeed()
		r.seedGenerator.SowArray(seed1[:])
		r.auxGenerator.SowArray(seed2[:])
	}
	if r.count.IsZero() {
		r.sugar++
		r.count = r.countLimit.Clone()
	} else {
		r.count = r.count.Sub(one128())
	}
}

func (r *RandomGeneric[E]) harvestPair() (seed, aux [8]uint64) {
	return r.seedGenerator.Harvest(r.sugar), r.auxGenerator.Harvest(r.sugar)
}

// randomU8 implements the u8 row of the width-indexed harvesting table.
func (r *RandomGeneric[E]) randomU8() uint8 {
	r.changeCountAndSugar()
	seed, aux := r.harvestPair()
	i := seed[0] & 7
	j := seed[1] & 7
	lane := aux[i] & 7
	byteIdx := aux[j] & 7
	return uint8(seed[lane] >> (8 * byteIdx))
}

// randomU16 implements the u16 row.
func (r *RandomGeneric[E]) randomU16() uint16 {
	r.changeCountAndSugar()
	seed, aux := r.harvestPair()
	i := seed[2] & 7
	j := seed[3] & 7
	lane := aux[i] & 7
	shortIdx := aux[j] & 3
	return uint16(seed[lane] >> (16 * shortIdx))
}

// randomU32 implements the u32 row.
func (r *RandomGeneric[E]) randomU32() uint32 {
	r.changeCountAndSugar()
	seed, aux := r.harvestPair()
	i := seed[4] & 7
	j := seed[5] & 7
	lane := aux[i] & 7
	halfIdx := aux[j] & 1
	return uint32(seed[lane] >> (32 * halfIdx))
}

// randomU64 implements the u64 row.
func (r *RandomGeneric[E]) randomU64() uint64 {
	r.changeCountAndSugar()
	seed, aux := r.harvestPair()
	i := seed[0] & 7
	lane := aux[i] & 7
	return seed[lane]
}

// randomU128 implements the u128 row, returning the Go-port's 2-limb
// BigUInt[uint64] stand-in for a native 128-bit value.
func (r *RandomGeneric[E]) randomU128() biguint.BigUInt[uint64] {
	r.changeCountAndSugar()
	seed, aux := r.harvestPair()
	i := seed[6] & 7
	j := seed[7] & 7
	lane1 := aux[i] & 7
	lane2 := aux[j] & 7
	return biguint.FromArray[uint64]([]uint64{seed[lane1], seed[lane2]})
}
