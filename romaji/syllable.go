// Package romaji provides the kana/kanji -> Hepburn romanization dictionary
// and the special-case handling (sokuon gemination, the moraic nasal,
// the iteration mark, and long vowels) that the transliteration-aware
// matcher needs to search a pattern against Japanese text.
package romaji

import "strings"

// Syllable is one mora's worth of Hepburn romanization. Variants lists
// every ASCII spelling the matcher accepts for it, most preferred first:
// the canonical Hepburn form, then IME-style alternatives (si for shi, tu
// for tsu, hu for fu, ...), then any long-vowel forms layered on by a
// preceding/following long-vowel mark.
type Syllable struct {
	Variants    []string
	MoraicNasal bool // true only for ん/ン
}

// NewSyllable builds a syllable from its canonical Hepburn spelling and any
// IME-style alternative spellings.
func NewSyllable(hepburn string, alternatives ...string) Syllable {
	return Syllable{Variants: append([]string{hepburn}, alternatives...)}
}

// Hepburn returns the canonical (first) spelling.
func (s Syllable) Hepburn() string {
	if len(s.Variants) == 0 {
		return ""
	}
	return s.Variants[0]
}

var vowelMacron = map[byte]rune{
	'a': 'ā', 'i': 'ī', 'u': 'ū', 'e': 'ē', 'o': 'ō',
}

// isVowel reports whether b is one of a/i/u/e/o.
func isVowel(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

// Geminate doubles a syllable's leading consonant to express sokuon (っ/ッ)
// gemination, following Hepburn's irregular case (chi -> tchi) plus the
// general "double the first letter" rule (also accepted for chi, as cchi,
// since both spellings circulate) and shi -> sshi.
func Geminate(s Syllable) Syllable {
	out := make([]string, 0, len(s.Variants))
	for _, v := range s.Variants {
		switch {
		case strings.HasPrefix(v, "ch"):
			out = append(out, "t"+v, string(v[0])+v)
		case strings.HasPrefix(v, "sh"):
			out = append(out, "s"+v)
		case strings.HasPrefix(v, "ty"):
			out = append(out, "t"+v) // tya-style IME variant of cha
		case strings.HasPrefix(v, "sy"):
			out = append(out, "s"+v) // sya-style IME variant of sha
		case len(v) > 0:
			out = append(out, string(v[0])+v)
		}
	}
	return Syllable{Variants: out}
}

// ExtendLongVowel lengthens a syllable whose last letter is a vowel,
// producing both the doubled-vowel Hepburn form (e.g. "ko" -> "koo") and
// the macron form ("kō") that the long-vowel mark ー accepts.
func ExtendLongVowel(s Syllable) Syllable {
	out := make([]string, 0, len(s.Variants))
	for _, v := range s.Variants {
		if v == "" {
			continue
		}
		last := v[len(v)-1]
		if !isVowel(last) {
			continue
		}
		out = append(out, v+string(last))
		if m, ok := vowelMacron[last]; ok {
			out = append(out, v[:len(v)-1]+string(m))
		}
	}
	if len(out) == 0 {
		return s
	}
	return Syllable{Variants: out}
}
