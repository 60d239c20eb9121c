package pinyin

import "strings"

// Syllable is a single pinyin reading: a canonical base spelling (lowercase
// ASCII, no tone), a tone in 1..5 (5 = neutral), and the parts shuangpin
// encoders need to split the spelling into initial/final.
//
// Invariant: Initial is always a non-empty-or-empty prefix of Base such
// that Initial+Final == Base (Initial may be "" for zero-consonant
// syllables like "a" or "ang").
type Syllable struct {
	Base    string
	Tone    int
	Initial string
	Final   string
}

// digraphInitials are the multi-letter initials pinyin distinguishes from
// their first-letter-only sound (zh vs z, ch vs c, sh vs s).
var digraphInitials = []string{"zh", "ch", "sh"}

// singleConsonants are every other consonant pinyin uses as an initial.
const singleConsonants = "bpmfdtnlgkhjqxrzcsyw"

// splitInitialFinal derives Initial/Final from a toneless ASCII base
// spelling, following the same structural rules as a Hanyu Pinyin HMM
// initial/final split: digraphs first, then single consonants, then the
// zero-consonant case.
func splitInitialFinal(base string) (initial, final string) {
	for _, d := range digraphInitials {
		if strings.HasPrefix(base, d) {
			return d, strings.TrimPrefix(base, d)
		}
	}
	if len(base) > 0 && strings.ContainsRune(singleConsonants, rune(base[0])) {
		return base[:1], base[1:]
	}
	return "", base
}

// NewSyllable builds a Syllable from a toneless ASCII base spelling and a
// tone number, deriving Initial/Final automatically.
func NewSyllable(base string, tone int) Syllable {
	initial, final := splitInitialFinal(base)
	return Syllable{Base: base, Tone: tone, Initial: initial, Final: final}
}

// toneVowelPriority is the conventional Hanyu Pinyin rule for where the
// tone mark lands when a syllable's final has more than one vowel: an "a"
// or "e" always takes it; otherwise an "o" does (as in "ou"); in "iu" and
// "ui" the second vowel takes it.
var toneVowelPriority = []byte{'a', 'e', 'o'}

func toneMarkIndex(base string) int {
	for _, v := range toneVowelPriority {
		if idx := strings.IndexByte(base, v); idx >= 0 {
			return idx
		}
	}
	// "iu" and "ui": the tone goes on the second vowel.
	if idx := strings.Index(base, "iu"); idx >= 0 {
		return idx + 1
	}
	if idx := strings.Index(base, "ui"); idx >= 0 {
		return idx + 1
	}
	// Single-vowel finals (i, u, u:).
	for i, r := range base {
		switch r {
		case 'i', 'u', 'ü', 'v':
			return i
		}
	}
	return -1
}

var toneMarks = map[byte][5]rune{
	'a': {'a', 'ā', 'á', 'ǎ', 'à'},
	'e': {'e', 'ē', 'é', 'ě', 'è'},
	'i': {'i', 'ī', 'í', 'ǐ', 'ì'},
	'o': {'o', 'ō', 'ó', 'ǒ', 'ò'},
	'u': {'u', 'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ü', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	'v': {'v', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

// UnicodeForm renders the syllable's tone-bearing Unicode spelling, e.g.
// base "pin" tone 1 -> "pīn". Tone 5 (neutral) renders with no mark.
func (s Syllable) UnicodeForm() string {
	if s.Tone <= 0 || s.Tone > 5 {
		return s.Base
	}
	idx := toneMarkIndex(s.Base)
	if idx < 0 || s.Tone == 5 {
		return s.Base
	}
	// idx is a byte offset into an ASCII-only base string, so it is also
	// the rune offset.
	r := rune(s.Base[idx])
	marks, ok := toneMarks[byte(r)]
	if !ok {
		return s.Base
	}
	var sb strings.Builder
	sb.WriteString(s.Base[:idx])
	sb.WriteRune(marks[s.Tone])
	sb.WriteString(s.Base[idx+1:])
	return sb.String()
}

// ToneASCII renders the canonical spelling with a trailing tone digit,
// e.g. "pin1". Unknown tones are treated as neutral ("5").
func (s Syllable) ToneASCII() string {
	t := s.Tone
	if t <= 0 || t > 5 {
		t = 5
	}
	return s.Base + string(rune('0'+t))
}

// FirstLetter returns the first ASCII letter of the spelling, collapsing
// digraph initials (zh/ch/sh) to their first letter.
func (s Syllable) FirstLetter() string {
	if s.Base == "" {
		return ""
	}
	return s.Base[:1]
}
