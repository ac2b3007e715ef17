package magics

import (
	"encoding/binary"
	"fmt"
)

// Size is the size (in bytes) of the magic identifier at the start of a
// compiled Python file.
const Size = 4

// Magic is the four byte identifier embedded in a compiled file header.
// The first two bytes are a little-endian word naming the bytecode format
// revision; the last two are a terminator that detects text-mode damage.
type Magic [Size]byte

// Legacy magic words that predate the "\r\n" terminator scheme.
// Python 1.0 and 1.1/1.2 used a "\x99\x00" trailer instead.
const (
	legacyMagic10 = 39170
	legacyMagic11 = 39171
)

// FromInt converts a magic word like 62211 to its identifier form
// b"\x03\xf3\r\n". The two historical words 39170 and 39171 get the legacy
// "\x99\x00" trailer all other revisions replaced with "\r\n".
func FromInt(word int) Magic {
	var m Magic
	binary.LittleEndian.PutUint16(m[:2], uint16(word))
	if word == legacyMagic10 || word == legacyMagic11 {
		m[2], m[3] = 0x99, 0x00
	} else {
		m[2], m[3] = '\r', '\n'
	}
	return m
}

// FromBytes copies a raw header blob into a Magic.
// Returns false if the blob is shorter than Size.
func FromBytes(head []byte) (Magic, bool) {
	var m Magic
	if len(head) < Size {
		return m, false
	}
	copy(m[:], head[:Size])
	return m, true
}

// Int returns the magic word, e.g. 62211 for b"\x03\xf3\r\n".
// FromInt and Int are lossless inverses for every registered word.
func (m Magic) Int() int {
	return int(binary.LittleEndian.Uint16(m[:2]))
}

// String renders the identifier for logs and error messages.
func (m Magic) String() string {
	return fmt.Sprintf("%d (%02x %02x %02x %02x)", m.Int(), m[0], m[1], m[2], m[3])
}
