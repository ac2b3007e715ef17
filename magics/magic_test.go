package magics

import "testing"

func TestMagicRoundTrip(t *testing.T) {
	// Every registered word must survive word -> identifier -> word.
	for _, e := range knownMagics {
		m := FromInt(e.word)
		if got := m.Int(); got != e.word {
			t.Errorf("FromInt(%d).Int() = %d, want %d", e.word, got, e.word)
		}
	}
}

func TestFromInt_Terminator(t *testing.T) {
	tests := []struct {
		name string
		word int
		tail [2]byte
	}{
		{"modern word", 62211, [2]byte{'\r', '\n'}},
		{"python 1.0 legacy trailer", 39170, [2]byte{0x99, 0x00}},
		{"python 1.1 legacy trailer", 39171, [2]byte{0x99, 0x00}},
		{"neighbor of legacy word", 39172, [2]byte{'\r', '\n'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromInt(tt.word)
			if m[2] != tt.tail[0] || m[3] != tt.tail[1] {
				t.Errorf("FromInt(%d) trailer = %02x %02x, want %02x %02x",
					tt.word, m[2], m[3], tt.tail[0], tt.tail[1])
			}
		})
	}
}

func TestFromInt_Layout(t *testing.T) {
	// 62211 is 0xf303, stored little-endian: b"\x03\xf3\r\n".
	m := FromInt(62211)
	want := Magic{0x03, 0xf3, '\r', '\n'}
	if m != want {
		t.Errorf("FromInt(62211) = %v, want %v", m, want)
	}
}

func TestFromBytes(t *testing.T) {
	blob := []byte{0x03, 0xf3, '\r', '\n', 0xde, 0xad}
	m, ok := FromBytes(blob)
	if !ok {
		t.Fatal("FromBytes rejected a 6-byte header")
	}
	if m.Int() != 62211 {
		t.Errorf("Int() = %d, want 62211", m.Int())
	}

	if _, ok := FromBytes([]byte{0x03, 0xf3}); ok {
		t.Error("FromBytes accepted a short blob")
	}
}
