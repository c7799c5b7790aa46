package solver

import "math/bits"

// DigitSet is a set of candidate digits 1-9 packed into a bitmask.
// The zero value is the empty set.
type DigitSet uint16

// FullSet contains all nine digits.
const FullSet DigitSet = 0x3FE

// Has reports whether the set contains digit d.
func (s DigitSet) Has(d int) bool {
	return s&(1<<uint(d)) != 0
}

// Add inserts digit d.
func (s *DigitSet) Add(d int) {
	*s |= 1 << uint(d)
}

// Remove deletes digit d.
func (s *DigitSet) Remove(d int) {
	*s &^= 1 << uint(d)
}

// Len returns the number of digits in the set.
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Single returns the sole remaining digit if the set has exactly one member.
func (s DigitSet) Single() (int, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(s)), true
}

// Digits returns the members in ascending order. Candidate digits are always
// tried in this order during search.
func (s DigitSet) Digits() []int {
	out := make([]int, 0, s.Len())
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
