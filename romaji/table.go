package romaji

import (
	"sync"
)

// Dictionary is a longest-match kana/kanji -> Syllable table. It is safe
// for concurrent use: the underlying table is built once and never
// mutated afterwards, so Lookup needs no locking of its own.
type Dictionary struct {
	entries map[string][]Syllable
	maxKey  int
}

var (
	defaultTable     *Dictionary
	defaultTableOnce sync.Once
)

// Default returns the process-wide shared kana/kanji dictionary, built on
// first use and shared by every subsequent caller.
func Default() *Dictionary {
	defaultTableOnce.Do(func() {
		defaultTable = buildDictionary()
	})
	return defaultTable
}

func buildDictionary() *Dictionary {
	d := &Dictionary{entries: make(map[string][]Syllable, 1024)}

	for _, row := range baseRows {
		for col, hira := range row.kana {
			if hira == 0 {
				continue
			}
			kata := hira + 0x60
			alts := make([]string, 0, 2)
			if row.ascii[col] != "" {
				alts = append(alts, row.ascii[col])
			}
			syl := NewSyllable(row.hepburn[col], alts...)
			d.put(string(hira), syl)
			d.put(string(kata), syl)
		}
	}

	for _, row := range yoonRows {
		for col, small := range smallYoon {
			hira := string([]rune{row.base, small})
			kata := string([]rune{row.base + 0x60, small + 0x60})
			alts := make([]string, 0, 1)
			if row.ime[col] != "" {
				alts = append(alts, row.ime[col])
			}
			syl := NewSyllable(row.hepburn[col], alts...)
			d.put(hira, syl)
			d.put(kata, syl)
		}
	}

	for _, e := range extendedKatakana {
		d.put(e.kana, NewSyllable(e.hepburn))
	}

	for key, readings := range kanjiReadings {
		syls := make([]Syllable, 0, len(readings))
		for _, r := range readings {
			syls = append(syls, NewSyllable(r))
		}
		d.entries[key] = append(d.entries[key], syls...)
	}

	for key, readings := range particleReadings {
		syls := make([]Syllable, 0, len(readings))
		for _, r := range readings {
			syls = append(syls, NewSyllable(r))
		}
		d.entries[key] = append(d.entries[key], syls...)
	}

	// ん/ン: the moraic nasal. Disambiguation between "n'"/"nn" (required
	// before a vowel or y) and bare "n" (required everywhere else) is a
	// pattern-side decision made by the matcher, not here; this entry just
	// carries the base spelling and the MoraicNasal flag.
	nasal := Syllable{Variants: []string{"n"}, MoraicNasal: true}
	d.put("ん", nasal)
	d.put("ン", nasal)

	for key := range d.entries {
		if n := len([]rune(key)); n > d.maxKey {
			d.maxKey = n
		}
	}
	return d
}

func (d *Dictionary) put(key string, syl Syllable) {
	d.entries[key] = append(d.entries[key], syl)
}

// Lookup finds the longest kana/kanji key starting at h[i] and returns how
// many runes it consumed together with every reading registered for it.
// It resolves the three special marks (sokuon, iteration mark, long vowel)
// in terms of the haystack alone, since all three refer back to a fixed
// neighboring character rather than to any path-dependent matcher state:
//
//   - っ/ッ (sokuon) geminates the syllable that starts at h[i+1].
//   - 々 (iteration mark) repeats the single-character reading of h[i-1].
//   - ー (long vowel mark) lengthens the syllable ending at h[i-1].
func (d *Dictionary) Lookup(h []rune, i int) (consumed int, readings []Syllable, ok bool) {
	if i < 0 || i >= len(h) {
		return 0, nil, false
	}

	switch h[i] {
	case 'っ', 'ッ':
		nConsumed, next, ok := d.Lookup(h, i+1)
		if !ok || nConsumed == 0 {
			return 0, nil, false
		}
		geminated := make([]Syllable, 0, len(next))
		for _, s := range next {
			geminated = append(geminated, Geminate(s))
		}
		return 1 + nConsumed, geminated, true // っ plus the syllable it geminates, consumed together
	case '々':
		if i == 0 {
			return 0, nil, false
		}
		_, prev, ok := d.Lookup(h, i-1)
		if !ok {
			return 0, nil, false
		}
		return 1, prev, true
	case 'ー':
		if i == 0 {
			return 0, nil, false
		}
		_, prev, ok := d.Lookup(h, i-1)
		if !ok {
			return 0, nil, false
		}
		extended := make([]Syllable, 0, len(prev))
		for _, s := range prev {
			extended = append(extended, ExtendLongVowel(s))
		}
		return 1, extended, true
	}

	maxLen := d.maxKey
	if rem := len(h) - i; rem < maxLen {
		maxLen = rem
	}
	for n := maxLen; n >= 1; n-- {
		key := string(h[i : i+n])
		if syl, found := d.entries[key]; found {
			return n, syl, true
		}
	}
	return 0, nil, false
}

// HasReading reports whether the rune at h[i] begins a known kana/kanji
// entry of any length.
func (d *Dictionary) HasReading(h []rune, i int) bool {
	_, _, ok := d.Lookup(h, i)
	return ok
}
