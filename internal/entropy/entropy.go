// Package entropy collects OS-derived seed material for the hash and
// PRNG engines in pkg/randengine and pkg/prng.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"hash/maphash"
	"time"
)

// CollectSeed returns 8 lanes of seed material, trying progressively
// weaker sources: crypto/rand.Reader first, then the wall clock, then
// a process-seeded maphash, filling only the lanes the previous tier
// left at zero.
func CollectSeed() [8]uint64 {
	var seed [8]uint64

	fillFromOS(&seed)
	fillFromClock(&seed)
	fillFromMapHash(&seed)

	return seed
}

// fillFromOS reads up to 64 bytes from crypto/rand.Reader, the
// standard library's OS-CSPRNG abstraction (/dev/urandom-equivalent
// on Unix, BCryptGenRandom on Windows). crypto/rand.Reader is a
// package-level io.Reader with no handle to open or close, so there is
// no resource to scope or release here.
func fillFromOS(seed *[8]uint64) {
	var buf [64]byte
	n, err := rand.Read(buf[:])
	if err != nil {
		return
	}
	for i := 0; i < n/8; i++ {
		seed[i] = binary.LittleEndian.Uint64(buf[i*8 : i*8+8])
	}
}

// fillFromClock fills any still-zero lane from the current wall-clock
// reading: even lanes get it as read, odd lanes get it with its two
// 32-bit halves swapped.
func fillFromClock(seed *[8]uint64) {
	now := uint64(time.Now().UnixNano())
	for i := range seed {
		if seed[i] != 0 {
			continue
		}
		if i%2 == 0 {
			seed[i] = now
		} else {
			seed[i] = now>>32 | now<<32
		}
	}
}

// fillFromMapHash fills any still-zero lane by hashing a counter
// through hash/maphash, seeded from the OS by maphash.MakeSeed() — the
// standard library's analogue of a process-random hasher.
func fillFromMapHash(seed *[8]uint64) {
	var h maphash.Hash
	h.SetSeed(maphash.MakeSeed())
	for i := range seed {
		if seed[i] != 0 {
			continue
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		h.Write(buf[:])
		seed[i] = h.Sum64()
	}
}

// Read64 draws a single fresh 64-bit value straight from crypto/rand,
// used by randengine.OSEngine which ignores seed material entirely.
func Read64() uint64 {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}
