// Package hashengine exposes the hash algorithms pkg/randengine's
// HashEngine drives through one small capability interface.
package hashengine

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/md4"
)

// Hasher is the capability randengine.HashEngine drives: mix sugar
// into the running state, absorb a block of seed material, and read
// the current digest without disturbing that state so it can keep
// absorbing further tangle rounds.
type Hasher interface {
	Tangle(sugar uint64)
	DigestArray(block []byte)
	HashValue() []byte
}

// stdHasher adapts any standard hash.Hash to Hasher. Tangle and
// DigestArray are both just Write: mixing sugar into a running hash
// through its own io.Writer side is the idiomatic way to perturb it
// without reaching into algorithm internals. HashValue is Sum(nil),
// which by hash.Hash's documented contract does not mutate state.
type stdHasher struct {
	h hash.Hash
}

func (s *stdHasher) Tangle(sugar uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], sugar)
	s.h.Write(buf[:])
}

func (s *stdHasher) DigestArray(block []byte) {
	s.h.Write(block)
}

func (s *stdHasher) HashValue() []byte {
	return s.h.Sum(nil)
}

// NewMD4 wraps golang.org/x/crypto/md4, the extended-standard-library
// implementation of this legacy algorithm.
func NewMD4() Hasher { return &stdHasher{h: md4.New()} }

// NewMD5 wraps crypto/md5.
func NewMD5() Hasher { return &stdHasher{h: md5.New()} }

// NewSHA1 wraps crypto/sha1.
func NewSHA1() Hasher { return &stdHasher{h: sha1.New()} }

// NewSHA256 wraps crypto/sha256.
func NewSHA256() Hasher { return &stdHasher{h: sha256.New()} }

// NewSHA512 wraps crypto/sha512.
func NewSHA512() Hasher { return &stdHasher{h: sha512.New()} }
