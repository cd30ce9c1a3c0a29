package smalluint

import "math/rand/v2"

// IsPrimeUsingMillerRabin runs the Miller-Rabin compositeness test for
// rounds independent witnesses, drawn from the package-default
// math/rand/v2 source. Native widths fit comfortably in a uint64
// accumulator, so unlike pkg/biguint this never needs an injected
// witness source.
func IsPrimeUsingMillerRabin[T Unsigned](n T, rounds int) bool {
	v := uint64(n)
	switch {
	case v < 2:
		return false
	case v == 2 || v == 3:
		return true
	case v%2 == 0:
		return false
	}

	d := v - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}

	for i := 0; i < rounds; i++ {
		a := 2 + rand.Uint64N(v-3) // a in [2, v-2]
		if !testMillerRabin(v, a, d, s) {
			return false
		}
	}
	return true
}

// TestMillerRabin runs a single witness step for witness a against n,
// exposed directly as its own operation rather than folded into the
// rounds loop.
func TestMillerRabin[T Unsigned](n, a T) bool {
	v := uint64(n)
	d := v - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}
	return testMillerRabin(v, uint64(a), d, s)
}

func testMillerRabin(n, a, d uint64, s int) bool {
	x := ModularPow(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = ModularMul(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}
