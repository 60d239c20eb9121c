package runeutil

import "testing"

func TestDecodeUTF16RuneSurrogatePair(t *testing.T) {
	// U+1F600 encodes as the surrogate pair D83D DE00.
	units := []uint16{0xD83D, 0xDE00}
	r, w := DecodeUTF16Rune(units, 0)
	if r != 0x1F600 || w != 2 {
		t.Errorf("DecodeUTF16Rune = (%x, %d), want (1F600, 2)", r, w)
	}
}

func TestDecodeUTF16RuneBMP(t *testing.T) {
	units := []uint16{'h', 'i'}
	r, w := DecodeUTF16Rune(units, 0)
	if r != 'h' || w != 1 {
		t.Errorf("DecodeUTF16Rune = (%c, %d), want (h, 1)", r, w)
	}
}

func TestDecodeUTF16RuneUnpairedSurrogate(t *testing.T) {
	units := []uint16{0xD83D, 'x'} // high surrogate not followed by a low surrogate
	r, w := DecodeUTF16Rune(units, 0)
	if w != 1 || r != rune(0xD83D) {
		t.Errorf("DecodeUTF16Rune = (%x, %d), want (D83D, 1)", r, w)
	}
}
