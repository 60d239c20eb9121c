package romaji

import "golang.org/x/text/width"

// NormalizeHalfwidth widens half-width katakana (U+FF61-U+FF9F, as typed
// on JIS keyboards or pasted from legacy Shift-JIS text) to their
// fullwidth equivalents, composing a half-width kana followed by a
// combining voiced (ﾞ, U+FF9E) or semi-voiced (ﾟ, U+FF9F) mark into the
// single precomposed fullwidth kana a real IME or Shift-JIS decoder would
// show (e.g. ｷﾞ -> ギ). It leaves every other rune, including ASCII,
// untouched.
func NormalizeHalfwidth(s string) string {
	out, _ := NormalizeHalfwidthRunes([]rune(s))
	return string(out)
}

// NormalizeHalfwidthRunes is the rune-level form of NormalizeHalfwidth.
// Because composing a kana with its voicing mark collapses two input
// runes into one output rune, it also returns origIndex: for each rune
// of out, the index into in where that rune's span begins. Callers that
// need to report a match in in's coordinates translate through
// MapNormalizedOffset rather than assuming a 1:1 rune correspondence
// between in and out.
func NormalizeHalfwidthRunes(in []rune) (out []rune, origIndex []int) {
	out = make([]rune, 0, len(in))
	origIndex = make([]int, 0, len(in))
	for i := 0; i < len(in); i++ {
		r := in[i]
		if i+1 < len(in) {
			switch in[i+1] {
			case 0xFF9E:
				if d, ok := composeDakuten(r); ok {
					out = append(out, d)
					origIndex = append(origIndex, i)
					i++
					continue
				}
			case 0xFF9F:
				if d, ok := composeHandakuten(r); ok {
					out = append(out, d)
					origIndex = append(origIndex, i)
					i++
					continue
				}
			}
		}
		out = append(out, widenRune(r))
		origIndex = append(origIndex, i)
	}
	return out, origIndex
}

// MapNormalizedOffset translates a code-point offset given in
// NormalizeHalfwidthRunes' output coordinates back into the coordinates
// of the slice origIndex was built from. pos == normalizedLen (a match
// ending exactly at haystack end) maps to originalLen, since origIndex
// has no entry one past the last rune.
func MapNormalizedOffset(origIndex []int, normalizedLen, originalLen, pos int) int {
	if pos >= normalizedLen {
		return originalLen
	}
	return origIndex[pos]
}

func widenRune(r rune) rune {
	widened := []rune(width.Widen.String(string(r)))
	if len(widened) == 0 {
		return r
	}
	return widened[0]
}

// composeDakuten and composeHandakuten turn a half-width base kana plus
// its voicing mark into the single precomposed fullwidth kana, relying
// on one Unicode layout fact rather than a lookup table: within the
// fullwidth Katakana block, the voiced form of a k/s/t/h-row kana sits
// one code point after its plain form, and the h-row's semi-voiced form
// sits two code points after.
func composeDakuten(base rune) (rune, bool) {
	if !dakutenEligible(base) {
		return 0, false
	}
	return widenRune(base) + 1, true
}

func composeHandakuten(base rune) (rune, bool) {
	if !handakutenEligible(base) {
		return 0, false
	}
	return widenRune(base) + 2, true
}

// dakutenEligible reports whether r is a half-width katakana code point
// whose row takes a voiced (dakuten) form: ｶ-ｺ, ｻ-ｿ, ﾀ-ﾄ, ﾊ-ﾎ.
func dakutenEligible(r rune) bool {
	switch {
	case r >= 0xFF76 && r <= 0xFF7A: // ｶｷｸｹｺ
		return true
	case r >= 0xFF7B && r <= 0xFF7F: // ｻｼｽｾｿ
		return true
	case r >= 0xFF80 && r <= 0xFF84: // ﾀﾁﾂﾃﾄ
		return true
	case r >= 0xFF8A && r <= 0xFF8E: // ﾊﾋﾌﾍﾎ
		return true
	}
	return false
}

// handakutenEligible reports whether r is a half-width ﾊ-ﾎ code point,
// the only row with a semi-voiced (handakuten) form.
func handakutenEligible(r rune) bool {
	return r >= 0xFF8A && r <= 0xFF8E
}
