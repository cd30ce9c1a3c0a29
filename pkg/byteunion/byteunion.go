// Package byteunion implements fixed-layout indexed-accessor types as
// newtype wrappers around a byte array rather than overlapping union
// storage — Go has no union types, and reading an array through a
// narrower stride is both safe and exactly as cheap. All accessors
// read little-endian; big-endian layout is not supported.
package byteunion

// widest_bytes / narrow_bytes bounds check, shared by every wrapper's
// accessors. An out-of-range index panics, the same way indexing past
// the end of a real array would.
func checkIndex(i, count int) {
	if i < 0 || i >= count {
		panic("byteunion: index out of range")
	}
}
