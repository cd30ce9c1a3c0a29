package smalluint

// IntoU8 truncates n to uint8 (lossy for widths above 8 bits).
func IntoU8[T Unsigned](n T) uint8 { return uint8(n) }

// IntoU16 converts n to uint16, lossless for T narrower than 16 bits.
func IntoU16[T Unsigned](n T) uint16 { return uint16(n) }

// IntoU32 converts n to uint32, lossless for T narrower than 32 bits.
func IntoU32[T Unsigned](n T) uint32 { return uint32(n) }

// IntoU64 converts n to uint64, always lossless (T is at most 64 bits).
func IntoU64[T Unsigned](n T) uint64 { return uint64(n) }

// IntoUsize converts n to int. A value that does not fit in int (a
// uint64 at or above 2^63, or wider values on 32-bit GOARCH) wraps.
func IntoUsize[T Unsigned](n T) int { return int(n) }

// IntoBool reports whether n is nonzero.
func IntoBool[T Unsigned](n T) bool { return n != 0 }
