package opcodes

import "math/bits"

// CodeSet is a compact set of opcode codes backed by a 256-bit bitmap.
// The zero value is an empty set. Query methods never mutate, so a frozen
// CodeSet is safe for concurrent readers.
type CodeSet struct {
	words [4]uint64
}

// add inserts a code. Build-time only; published sets are never mutated.
func (s *CodeSet) add(code int) {
	s.words[code>>6] |= 1 << (code & 63)
}

// Has reports whether code is in the set. Codes outside [0, MaxCode]
// are never members.
func (s *CodeSet) Has(code int) bool {
	if code < 0 || code > MaxCode {
		return false
	}
	return s.words[code>>6]&(1<<(code&63)) != 0
}

// Codes returns the members in ascending order.
func (s *CodeSet) Codes() []int {
	out := make([]int, 0, s.Len())
	for i, word := range s.words {
		if word == 0 {
			continue
		}
		base := i << 6
		for word != 0 {
			out = append(out, base+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
	return out
}

// Len returns the number of members.
func (s *CodeSet) Len() int {
	n := 0
	for _, word := range s.words {
		n += bits.OnesCount64(word)
	}
	return n
}
