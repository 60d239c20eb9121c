package xlit

import (
	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/internal/runeutil"
	"github.com/ibmatcher/ibmatcher/pinyin"
	"github.com/ibmatcher/ibmatcher/romaji"
)

// Match is a code-point span [Start, End) into the haystack.
type Match struct {
	Start int
	End   int
}

// visited memoizes the (haystackPos, patternPos, lastLang) triples already
// explored and failed for the current starting position, preventing the
// exponential blow-up that naive recursion would suffer from heteronym
// branching. It is reset for every new starting position.
type visited struct {
	seen   []bool
	stride int // (len(pattern)+1) * 3
}

func newVisited(haystackLen, patternLen int) *visited {
	stride := (patternLen + 1) * 3
	return &visited{seen: make([]bool, (haystackLen+1)*stride), stride: stride}
}

func (v *visited) key(i, j int, l lang) int {
	return i*v.stride + j*3 + int(l)
}

func (v *visited) markIfNew(i, j int, l lang) bool {
	k := v.key(i, j, l)
	if v.seen[k] {
		return false
	}
	v.seen[k] = true
	return true
}

// Find runs the transliteration-aware substring search described by the
// matcher's algorithm: literal, then pinyin, then romaji transitions, in
// that order, with memoization pruning repeated (position, lang) states.
// It returns the leftmost match whose exploration finishes first.
//
// When romaji is enabled, the haystack is first widened from half-width
// to full-width katakana (romaji.NormalizeHalfwidthRunes), since the
// romaji dictionary only ever registers full-width keys; the resulting
// Match is translated back into the caller's original coordinates via
// romaji.MapNormalizedOffset before it is returned.
func Find(pattern, haystack []rune, cfg config.Config) (Match, bool) {
	if !cfg.Romaji {
		return find(pattern, haystack, cfg)
	}
	normalized, origIndex := romaji.NormalizeHalfwidthRunes(haystack)
	m, ok := find(pattern, normalized, cfg)
	if !ok {
		return Match{}, false
	}
	return Match{
		Start: romaji.MapNormalizedOffset(origIndex, len(normalized), len(haystack), m.Start),
		End:   romaji.MapNormalizedOffset(origIndex, len(normalized), len(haystack), m.End),
	}, true
}

func find(pattern, haystack []rune, cfg config.Config) (Match, bool) {
	policy := toCasePolicy(cfg.CasePolicy)

	if len(pattern) == 0 {
		if cfg.AnchoredEnd && len(haystack) != 0 {
			return Match{}, false
		}
		return Match{Start: 0, End: 0}, true
	}

	lastStart := 0
	if !cfg.AnchoredStart {
		lastStart = len(haystack)
	}

	for s := 0; s <= lastStart; s++ {
		if i := s; i < len(haystack) && !candidateStart(haystack, i, pattern, cfg, policy) {
			continue
		}
		mv := newVisited(len(haystack), len(pattern))
		end, ok := explore(pattern, 0, haystack, s, cfg, policy, mv, langNone)
		if !ok {
			continue
		}
		if cfg.AnchoredEnd && end != len(haystack) {
			continue
		}
		return Match{Start: s, End: end}, true
	}
	return Match{}, false
}

// candidateStart is the fast per-position pre-filter: a one-rune literal
// comparison, then (for non-ASCII code points only) a pinyin/romaji
// dictionary check. A haystack position only deserves the full recursive
// exploration if some enabled transition could possibly begin there.
func candidateStart(haystack []rune, i int, pattern []rune, cfg config.Config, policy runeutil.CasePolicy) bool {
	h := haystack[i]
	if runeutil.Matches(policy, pattern[0], h) {
		return true
	}
	if h < 0x80 {
		// Pure ASCII haystack code points only ever start a literal
		// transition; the dictionaries have nothing to say about them.
		return false
	}
	if cfg.Pinyin && pinyin.Default().HasReading(h) {
		return true
	}
	if cfg.Romaji && romaji.Default().HasReading(haystack, i) {
		return true
	}
	return false
}

func explore(pattern []rune, j int, haystack []rune, i int, cfg config.Config, policy runeutil.CasePolicy, mv *visited, last lang) (int, bool) {
	if j == len(pattern) {
		return i, true
	}
	if i > len(haystack) {
		return 0, false
	}
	if !mv.markIfNew(i, j, last) {
		return 0, false
	}

	if t, ok := literalStep(policy, pattern, j, haystack, i); ok {
		if end, ok2 := advance(t, pattern, j, haystack, i, cfg, policy, mv, last); ok2 {
			return end, true
		}
	}

	if cfg.Pinyin && (cfg.MixLang || last != langRomaji) {
		for _, t := range pinyinSteps(policy, pattern, j, haystack, i, cfg.PinyinNotations, cfg.IsPatternPartial) {
			if end, ok2 := advance(t, pattern, j, haystack, i, cfg, policy, mv, langPinyin); ok2 {
				return end, true
			}
		}
	}

	if cfg.Romaji && (cfg.MixLang || last != langPinyin) {
		for _, t := range romajiSteps(policy, pattern, j, haystack, i, cfg.IsPatternPartial) {
			if end, ok2 := advance(t, pattern, j, haystack, i, cfg, policy, mv, langRomaji); ok2 {
				return end, true
			}
		}
	}

	return 0, false
}

func advance(t transition, pattern []rune, j int, haystack []rune, i int, cfg config.Config, policy runeutil.CasePolicy, mv *visited, l lang) (int, bool) {
	ni := i + t.haystackLen
	nj := j + t.patternLen
	if nj == len(pattern) {
		return ni, true
	}
	return explore(pattern, nj, haystack, ni, cfg, policy, mv, l)
}
