// Package sampling implements the deterministic sampling of floating point values
// used to generate polynomial coefficients and evaluation points.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// RandFloat64 returns a random float in [min, max) drawn from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	// 53 random bits mapped to [0, 1)
	f := float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min)
}

// RandFloat64Slice returns n random floats in [min, max) drawn from prng.
func RandFloat64Slice(prng PRNG, n int, min, max float64) (s []float64) {
	if n < 0 {
		panic(fmt.Sprintf("cannot RandFloat64Slice: n=%d < 0", n))
	}
	s = make([]float64, n)
	for i := range s {
		s[i] = RandFloat64(prng, min, max)
	}
	return
}

// RandInt returns a random int in [min, max].
func RandInt(prng PRNG, min, max int) int {
	if max < min {
		panic(fmt.Sprintf("cannot RandInt: max=%d < min=%d", max, min))
	}
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return min + int(binary.LittleEndian.Uint64(b)%uint64(max-min+1))
}
