package pinyin

import (
	"strings"
	"sync"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// reverseToneMarks maps a toned vowel rune back to (ascii base rune, tone).
// Built once from the forward toneMarks table in syllable.go so the two
// never drift apart.
var reverseToneMarks = buildReverseToneMarks()

func buildReverseToneMarks() map[rune]struct {
	base rune
	tone int
} {
	rev := make(map[rune]struct {
		base rune
		tone int
	})
	for base, marks := range toneMarks {
		for tone, marked := range marks {
			if tone == 0 {
				continue // index 0 is the unmarked form itself
			}
			rev[marked] = struct {
				base rune
				tone int
			}{rune(base), tone}
		}
	}
	return rev
}

// extractTone strips tone marks from a tone-bearing pinyin spelling (as
// produced by go-pinyin's Tone style), returning the toneless ASCII base
// and the tone number (5 when no mark was present, i.e. neutral tone).
func extractTone(toned string) (base string, tone int) {
	tone = 5
	var sb strings.Builder
	for _, r := range toned {
		if m, ok := reverseToneMarks[r]; ok {
			if m.base == 'ü' {
				sb.WriteByte('v')
			} else {
				sb.WriteRune(m.base)
			}
			tone = m.tone
			continue
		}
		if r == 'ü' || r == 'v' {
			sb.WriteByte('v')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), tone
}

// Dictionary is a mapping from Han code point to its ordered, non-empty
// list of pinyin readings (heteronyms), with the preferred reading first.
// It is safe for concurrent use; entries are computed lazily and cached,
// since the full Unicode Han block is far larger than any process will
// query in one run.
type Dictionary struct {
	mu    sync.RWMutex
	cache map[rune][]Syllable
	args  gopinyin.Args
}

// NewDictionary creates an empty, lazily-populated pinyin dictionary backed
// by go-pinyin's heteronym-aware tone-marked readings.
func NewDictionary() *Dictionary {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	args.Heteronym = true
	return &Dictionary{
		cache: make(map[rune][]Syllable, 4096),
		args:  args,
	}
}

var (
	defaultDict     *Dictionary
	defaultDictOnce sync.Once
)

// Default returns the process-wide shared dictionary. Initialization is a
// one-shot (sync.Once) so concurrent first callers all observe the same
// published, immutable *Dictionary handle; no lock is held during lookup
// beyond the dictionary's own per-entry cache mutex.
func Default() *Dictionary {
	defaultDictOnce.Do(func() {
		defaultDict = NewDictionary()
	})
	return defaultDict
}

// Readings returns the ordered list of pinyin readings for r, or nil if r
// has no Chinese reading (including all non-Han code points).
func (d *Dictionary) Readings(r rune) []Syllable {
	d.mu.RLock()
	if syl, ok := d.cache[r]; ok {
		d.mu.RUnlock()
		return syl
	}
	d.mu.RUnlock()

	syl := d.lookup(r)

	d.mu.Lock()
	d.cache[r] = syl
	d.mu.Unlock()
	return syl
}

func (d *Dictionary) lookup(r rune) []Syllable {
	results := gopinyin.Pinyin(string(r), d.args)
	if len(results) == 0 || len(results[0]) == 0 {
		return nil
	}
	readings := results[0]
	out := make([]Syllable, 0, len(readings))
	seen := make(map[string]bool, len(readings))
	for _, reading := range readings {
		if reading == "" {
			continue
		}
		base, tone := extractTone(reading)
		key := base + string(rune('0'+tone))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, NewSyllable(base, tone))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// HasReading reports whether r has at least one pinyin reading.
func (d *Dictionary) HasReading(r rune) bool {
	return len(d.Readings(r)) > 0
}
