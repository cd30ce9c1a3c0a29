package smalluint

import "math/bits"

// CountOnes returns the number of one bits ("population count").
func CountOnes[T Unsigned](n T) int {
	return bits.OnesCount64(uint64(n))
}

// CountZeros returns the number of zero bits within T's width.
func CountZeros[T Unsigned](n T) int {
	return SizeInBits[T]() - CountOnes(n)
}

// LeadingZeros returns the number of leading zero bits within T's width.
func LeadingZeros[T Unsigned](n T) int {
	return bits.LeadingZeros64(uint64(n)) - (64 - SizeInBits[T]())
}

// LeadingOnes returns the number of leading one bits within T's width.
func LeadingOnes[T Unsigned](n T) int {
	return LeadingZeros(^n)
}

// TrailingZeros returns the number of trailing zero bits within T's width.
func TrailingZeros[T Unsigned](n T) int {
	if n == 0 {
		return SizeInBits[T]()
	}
	return bits.TrailingZeros64(uint64(n))
}

// TrailingOnes returns the number of trailing one bits within T's width.
func TrailingOnes[T Unsigned](n T) int {
	return TrailingZeros(^n)
}

// RotateLeft rotates n left by k bits within T's width.
func RotateLeft[T Unsigned](n T, k int) T {
	width := SizeInBits[T]()
	k = ((k % width) + width) % width
	if k == 0 {
		return n
	}
	return (n << uint(k)) | (n >> uint(width-k))
}

// RotateRight rotates n right by k bits within T's width.
func RotateRight[T Unsigned](n T, k int) T {
	return RotateLeft(n, -k)
}

// ReverseBits reverses the bit order of n within T's width.
func ReverseBits[T Unsigned](n T) T {
	width := SizeInBits[T]()
	var out T
	for i := 0; i < width; i++ {
		out <<= 1
		out |= (n >> uint(i)) & 1
	}
	return out
}

// SwapBytes reverses the byte order of n within T's width.
func SwapBytes[T Unsigned](n T) T {
	width := SizeInBytes[T]()
	var out T
	for i := 0; i < width; i++ {
		out <<= 8
		out |= (n >> uint(8*i)) & 0xFF
	}
	return out
}

// ToBigEndian returns n with byte order converted for a big-endian
// target (swaps the native little-endian in-memory order).
func ToBigEndian[T Unsigned](n T) T { return SwapBytes(n) }

// ToLittleEndian returns n unchanged: every target this module runs on
// is assumed little-endian.
func ToLittleEndian[T Unsigned](n T) T { return n }

// FromBigEndian is the inverse of ToBigEndian.
func FromBigEndian[T Unsigned](n T) T { return SwapBytes(n) }

// FromLittleEndian is the inverse of ToLittleEndian.
func FromLittleEndian[T Unsigned](n T) T { return n }
