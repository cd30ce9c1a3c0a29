package hashengine

import "math/bits"

// SHA-0 was withdrawn by NIST within a year of publication; no
// maintained Go implementation exists in the standard library or
// golang.org/x/crypto. This is the one hand-written block-compression
// function in this package, structured exactly like crypto/sha1's
// compression loop with one deliberate difference: the message
// schedule extension skips the left-rotate-by-1 that SHA-1 added to
// fix SHA-0's weakness.
type sha0Digest struct {
	h   [5]uint32
	x   [64]byte
	nx  int
	len uint64
}

func newSHA0() *sha0Digest {
	d := &sha0Digest{}
	d.reset()
	return d
}

func (d *sha0Digest) reset() {
	d.h[0] = 0x67452301
	d.h[1] = 0xEFCDAB89
	d.h[2] = 0x98BADCFE
	d.h[3] = 0x10325476
	d.h[4] = 0xC3D2E1F0
	d.nx = 0
	d.len = 0
}

func (d *sha0Digest) Write(p []byte) {
	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		p = p[n:]
		if d.nx == 64 {
			sha0Block(d, d.x[:])
			d.nx = 0
		}
	}
	for len(p) >= 64 {
		sha0Block(d, p[:64])
		p = p[64:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

func (d *sha0Digest) Sum() []byte {
	cp := *d
	lenBits := cp.len * 8

	var tmp [64]byte
	tmp[0] = 0x80
	if cp.len%64 < 56 {
		cp.Write(tmp[0 : 56-cp.len%64])
	} else {
		cp.Write(tmp[0 : 64+56-cp.len%64])
	}

	var lenBuf [8]byte
	for i := 0; i < 8; i++ {
		lenBuf[7-i] = byte(lenBits >> (8 * i))
	}
	cp.Write(lenBuf[:])

	var out [20]byte
	for i, s := range cp.h {
		out[i*4] = byte(s >> 24)
		out[i*4+1] = byte(s >> 16)
		out[i*4+2] = byte(s >> 8)
		out[i*4+3] = byte(s)
	}
	return out[:]
}

func sha0Block(d *sha0Digest, p []byte) {
	var w [80]uint32
	h0, h1, h2, h3, h4 := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]

	for len(p) >= 64 {
		for i := 0; i < 16; i++ {
			j := i * 4
			w[i] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
		}
		for i := 16; i < 80; i++ {
			w[i] = w[i-3] ^ w[i-8] ^ w[i-14] ^ w[i-16]
		}

		a, b, c, dd, e := h0, h1, h2, h3, h4

		for i := 0; i < 80; i++ {
			var f, k uint32
			switch {
			case i < 20:
				f = (b & c) | ((^b) & dd)
				k = 0x5A827999
			case i < 40:
				f = b ^ c ^ dd
				k = 0x6ED9EBA1
			case i < 60:
				f = (b & c) | (b & dd) | (c & dd)
				k = 0x8F1BBCDC
			default:
				f = b ^ c ^ dd
				k = 0xCA62C1D6
			}
			temp := bits.RotateLeft32(a, 5) + f + e + k + w[i]
			e = dd
			dd = c
			c = bits.RotateLeft32(b, 30)
			b = a
			a = temp
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += dd
		h4 += e
		p = p[64:]
	}

	d.h[0], d.h[1], d.h[2], d.h[3], d.h[4] = h0, h1, h2, h3, h4
}

type sha0Hasher struct {
	d *sha0Digest
}

// NewSHA0 returns the hand-written SHA-0 engine. It exposes the
// identical Hasher surface as the wrapped stdlib algorithms so callers
// cannot tell them apart.
func NewSHA0() Hasher { return &sha0Hasher{d: newSHA0()} }

func (s *sha0Hasher) Tangle(sugar uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(sugar >> (8 * i))
	}
	s.d.Write(buf[:])
}

func (s *sha0Hasher) DigestArray(block []byte) {
	s.d.Write(block)
}

func (s *sha0Hasher) HashValue() []byte {
	return s.d.Sum()
}
