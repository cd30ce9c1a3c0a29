// Package randengine implements the RandomEngine capability: the raw
// seed-and-harvest primitive pkg/prng builds its draw schedule on top
// of.
package randengine

import "github.com/oisee/cryptocol/pkg/hashengine"

// Engine is the capability every concrete engine below implements.
// SowArray absorbs seed material; Harvest mixes in a sugar value and
// returns 8 lanes of 64-bit output. An Engine makes no security claim
// on its own — "secure" is a property of which Engine gets wired into
// prng.RandomGeneric.
type Engine interface {
	SowArray(material []uint64)
	Harvest(sugar uint64) [8]uint64
}

// HashEngine drives a hashengine.Hasher: SowArray digests the seed
// material, Harvest tangles the sugar in and reads the digest enough
// times (re-tangling between reads so consecutive reads diverge) to
// fill all 8 output lanes.
type HashEngine struct {
	hasher hashengine.Hasher
}

// NewHashEngine wraps h. The caller picks which algorithm backs the
// engine via which hashengine constructor it passes.
func NewHashEngine(h hashengine.Hasher) *HashEngine {
	return &HashEngine{hasher: h}
}

func (e *HashEngine) SowArray(material []uint64) {
	buf := make([]byte, len(material)*8)
	for i, v := range material {
		putUint64LE(buf[i*8:], v)
	}
	e.hasher.DigestArray(buf)
}

func (e *HashEngine) Harvest(sugar uint64) [8]uint64 {
	var out [8]uint64
	filled := 0
	for filled < 8 {
		e.hasher.Tangle(sugar)
		digest := e.hasher.HashValue()
		for off := 0; off+8 <= len(digest) && filled < 8; off += 8 {
			out[filled] = getUint64LE(digest[off:])
			filled++
		}
	}
	return out
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func getUint64LE(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}
