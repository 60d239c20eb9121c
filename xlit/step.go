// Package xlit implements the transliteration-aware exploration shared by
// the substring matcher and the regex/glob meta-atoms: at a haystack
// position it tries a literal code point match, then every active pinyin
// notation's encoding of the haystack character's readings, then every
// romaji reading sequence, and reports how far each successful branch
// advanced both the haystack and the pattern.
package xlit

import (
	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/internal/runeutil"
	"github.com/ibmatcher/ibmatcher/pinyin"
	"github.com/ibmatcher/ibmatcher/romaji"
)

// lang tags which transliteration system produced a transition, used by
// the mix-lang policy to forbid alternating systems within one match.
type lang int

const (
	langNone lang = iota
	langPinyin
	langRomaji
)

// transition is one candidate step: consume haystackLen haystack code
// points and patternLen pattern code points. full reports that the
// transition terminated the pattern early against a longer reading,
// which is only a legal success under partial-pattern mode.
type transition struct {
	haystackLen int
	patternLen  int
	full        bool
	lang        lang
}

func toCasePolicy(p config.CasePolicy) runeutil.CasePolicy {
	switch p {
	case config.FoldLowerOnly:
		return runeutil.FoldLowerOnly
	case config.NoFold:
		return runeutil.NoFold
	default:
		return runeutil.FoldAll
	}
}

// matchASCIIPrefix compares pattern against the ASCII spelling s rune by
// rune under policy. It reports how many pattern runes were consumed.
// full is false when s was fully consumed (exact or pattern-longer) and
// true when the pattern was fully consumed first (meaning s is longer
// than the remaining pattern: only a legal transition under partial
// mode).
func matchASCIIPrefix(policy runeutil.CasePolicy, pattern []rune, s string) (patternConsumed int, full bool, ok bool) {
	sr := []rune(s)
	n := len(sr)
	if n > len(pattern) {
		n = len(pattern)
	}
	for k := 0; k < n; k++ {
		if !runeutil.Matches(policy, pattern[k], sr[k]) {
			return 0, false, false
		}
	}
	if len(sr) <= len(pattern) {
		return len(sr), false, true
	}
	// s is longer than the remaining pattern: pattern fully consumed as a
	// strict prefix of s.
	return n, true, true
}

// literalStep tries to consume one haystack code point as a direct
// literal match (case-folded per policy) against one pattern code point.
func literalStep(policy runeutil.CasePolicy, pattern []rune, j int, haystack []rune, i int) (transition, bool) {
	if j >= len(pattern) || i >= len(haystack) {
		return transition{}, false
	}
	if !runeutil.Matches(policy, pattern[j], haystack[i]) {
		return transition{}, false
	}
	return transition{haystackLen: 1, patternLen: 1}, true
}

// pinyinSteps enumerates every candidate transition consuming the Han
// character at haystack[i] via one reading x one active notation.
func pinyinSteps(policy runeutil.CasePolicy, pattern []rune, j int, haystack []rune, i int, notations pinyin.Notation, allowPartial bool) []transition {
	if i >= len(haystack) {
		return nil
	}
	readings := pinyin.Default().Readings(haystack[i])
	if len(readings) == 0 {
		return nil
	}
	var out []transition
	for _, reading := range readings {
		for _, spelling := range pinyin.EncodeAll(reading, notations) {
			consumed, full, ok := matchASCIIPrefix(policy, pattern[j:], spelling)
			if !ok || consumed == 0 {
				continue
			}
			if full && !allowPartial {
				continue
			}
			out = append(out, transition{haystackLen: 1, patternLen: consumed, full: full, lang: langPinyin})
		}
	}
	return out
}

var vowelOrY = map[rune]bool{'a': true, 'i': true, 'u': true, 'e': true, 'o': true, 'y': true}

// matchMoraicNasal resolves the ん/ン n'/nn/bare-n disambiguation against
// the pattern at position j. It returns, in order of preference, every
// pattern-rune length worth trying for the nasal itself. A bare "n"
// reading always consumes at least 1, but when pattern[j+1] is itself
// 'n' the nasal is genuinely ambiguous: it could be the first half of a
// doubled "nn" (consume 2, as in "konnichiwa"'s ん before に), or a bare
// "n" immediately followed by a na-row syllable whose own romaji happens
// to start with "n" (consume 1, as in "onna" -- ん then な both spelled
// with a leading n). Both candidates are offered so the caller's
// backtracking search can pick whichever lets the rest of the pattern
// match, instead of committing to one and never trying the other.
func matchMoraicNasal(pattern []rune, j int) []int {
	if j >= len(pattern) || pattern[j] != 'n' {
		return nil
	}
	if j+1 < len(pattern) && pattern[j+1] == '\'' {
		return []int{2}
	}
	if j+1 < len(pattern) && pattern[j+1] == 'n' {
		return []int{2, 1}
	}
	if j+1 >= len(pattern) || !vowelOrY[pattern[j+1]] {
		return []int{1}
	}
	return nil
}

// romajiSteps enumerates every candidate transition consuming the
// longest romaji key starting at haystack[i].
func romajiSteps(policy runeutil.CasePolicy, pattern []rune, j int, haystack []rune, i int, allowPartial bool) []transition {
	consumed, syllables, ok := romaji.Default().Lookup(haystack, i)
	if !ok || consumed == 0 {
		return nil
	}
	var out []transition
	for _, syl := range syllables {
		if syl.MoraicNasal {
			for _, n := range matchMoraicNasal(pattern, j) {
				out = append(out, transition{haystackLen: consumed, patternLen: n, lang: langRomaji})
			}
			continue
		}
		for _, v := range syl.Variants {
			pc, full, ok := matchASCIIPrefix(policy, pattern[j:], v)
			if !ok || pc == 0 {
				continue
			}
			if full && !allowPartial {
				continue
			}
			out = append(out, transition{haystackLen: consumed, patternLen: pc, full: full, lang: langRomaji})
		}
	}
	return out
}
