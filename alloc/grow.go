package alloc

import (
	"math/bits"
)

// NextCap returns the capacity after one growth step: max(1, c*2).
// This is the single growth policy shared by both container types.
func NextCap(c int) int {
	if c <= 0 {
		return 1
	}
	return c * 2
}

// GrowTo doubles c until it reaches at least need.
func GrowTo(c, need int) int {
	for c < need {
		c = NextCap(c)
	}
	return c
}

// CeilPow2 returns minimal y >= x such that y is a power of two.
func CeilPow2(x uint64) uint64 {
	if x <= 1 {
		return x
	}
	return 1 << bits.Len64(x-1)
}
