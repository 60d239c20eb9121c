// Package encoding adapts the code-point-oriented matcher to the three
// surface encodings the library exposes: UTF-8, UTF-16, and UTF-32. Each
// adapter converts code-point spans to and from native offsets; the
// search logic in xlit never sees anything but runes.
package encoding

import (
	"unicode/utf8"

	"github.com/ibmatcher/ibmatcher/internal/runeutil"
)

// RunesFromUTF8 is unicode/utf8's own decoding (via the []rune(s)
// conversion) made explicit so the three encodings read symmetrically at
// call sites.
func RunesFromUTF8(s string) []rune {
	return []rune(s)
}

// ByteOffsetsOf converts a code-point span over s into a UTF-8 byte span.
// NextNonASCII locates s's leading ASCII run first, over which byte and
// code-point offsets coincide 1:1; a span that falls entirely inside that
// run (the common case for filenames and other mostly-Latin haystacks) is
// returned without walking the rest of s.
func ByteOffsetsOf(s string, startCP, endCP int) (startByte, endByte int) {
	asciiPrefix := runeutil.NextNonASCII([]byte(s))
	if startCP <= asciiPrefix && endCP <= asciiPrefix {
		return startCP, endCP
	}

	if startCP < asciiPrefix {
		startByte = startCP
	}
	runeIdx := asciiPrefix
	for byteIdx := asciiPrefix; byteIdx < len(s); {
		if runeIdx == startCP {
			startByte = byteIdx
		}
		if runeIdx == endCP {
			endByte = byteIdx
			return startByte, endByte
		}
		_, width := utf8.DecodeRuneInString(s[byteIdx:])
		byteIdx += width
		runeIdx++
	}
	if startCP == runeIdx {
		startByte = len(s)
	}
	if endCP == runeIdx {
		endByte = len(s)
	}
	return startByte, endByte
}

// RunesFromUTF16 decodes a UTF-16 buffer (e.g. as received across a host
// binding boundary) into code points, one DecodeUTF16Rune call per code
// point rather than unicode/utf16's whole-buffer Decode.
func RunesFromUTF16(buf []uint16) []rune {
	out := make([]rune, 0, len(buf))
	for i := 0; i < len(buf); {
		r, width := runeutil.DecodeUTF16Rune(buf, i)
		out = append(out, r)
		i += width
	}
	return out
}

// Utf16OffsetsOf converts a code-point span into a span of UTF-16 code
// units, accounting for surrogate pairs produced by supplementary-plane
// runes.
func Utf16OffsetsOf(runes []rune, startCP, endCP int) (startUnit, endUnit int) {
	units := 0
	for i, r := range runes {
		if i == startCP {
			startUnit = units
		}
		if i == endCP {
			endUnit = units
			return startUnit, endUnit
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	if startCP == len(runes) {
		startUnit = units
	}
	if endCP == len(runes) {
		endUnit = units
	}
	return startUnit, endUnit
}

// RunesFromUTF32 is the identity adapter: UTF-32 code units already are
// code points.
func RunesFromUTF32(buf []rune) []rune {
	return buf
}
