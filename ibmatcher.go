// Package ibmatcher is a multilingual substring/regex matcher: it matches
// a Latin-letter pattern against a haystack that may contain Chinese Han
// characters (via pinyin transliteration) and Japanese kana/kanji (via
// romaji transliteration), in addition to plain literal text.
//
//	ibmatcher.IsMatch("pysousuoeve", "拼音搜索Everything", config.Default())
package ibmatcher

import (
	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/encoding"
	"github.com/ibmatcher/ibmatcher/internal/runeutil"
	"github.com/ibmatcher/ibmatcher/pinyin"
	"github.com/ibmatcher/ibmatcher/xlit"
)

// IsMatch reports whether pattern matches somewhere in haystack under cfg.
func IsMatch(pattern, haystack string, cfg config.Config) bool {
	_, ok := Find(pattern, haystack, cfg)
	return ok
}

// Find searches haystack for pattern under cfg and returns the UTF-8 byte
// span of the match, if any.
func Find(pattern, haystack string, cfg config.Config) (start, end int, ok bool) {
	p := encoding.RunesFromUTF8(pattern)
	h := encoding.RunesFromUTF8(haystack)
	m, found := xlit.Find(p, h, cfg)
	if !found {
		return 0, 0, false
	}
	if runeutil.IsASCII([]byte(haystack)) {
		return m.Start, m.End, true
	}
	sb, eb := encoding.ByteOffsetsOf(haystack, m.Start, m.End)
	return sb, eb, true
}

// FindUTF16 is Find for a caller that already holds the haystack as UTF-16
// code units (e.g. a Windows host binding).
func FindUTF16(pattern string, haystack []uint16, cfg config.Config) (startUnit, endUnit int, ok bool) {
	p := encoding.RunesFromUTF8(pattern)
	h := encoding.RunesFromUTF16(haystack)
	m, found := xlit.Find(p, h, cfg)
	if !found {
		return 0, 0, false
	}
	su, eu := encoding.Utf16OffsetsOf(h, m.Start, m.End)
	return su, eu, true
}

// FindUTF32 is Find for a haystack already decoded to code points
// (runes): a UTF-32 buffer is the identity encoding.
func FindUTF32(pattern string, haystack []rune, cfg config.Config) (start, end int, ok bool) {
	p := encoding.RunesFromUTF8(pattern)
	m, found := xlit.Find(p, haystack, cfg)
	if !found {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// Program is the compiled, immutable artifact of a pattern under a
// MatchConfig, reusable across many haystacks without recompiling.
type Program struct {
	pattern []rune
	cfg     config.Config
}

// Build compiles pattern once so Program.Find can be called repeatedly
// against many haystacks under the same configuration.
func Build(pattern string, cfg config.Config) Program {
	return Program{pattern: encoding.RunesFromUTF8(pattern), cfg: cfg}
}

// Find searches haystack for the compiled pattern, returning a UTF-8 byte
// span.
func (pr Program) Find(haystack string) (start, end int, ok bool) {
	h := encoding.RunesFromUTF8(haystack)
	m, found := xlit.Find(pr.pattern, h, pr.cfg)
	if !found {
		return 0, 0, false
	}
	if runeutil.IsASCII([]byte(haystack)) {
		return m.Start, m.End, true
	}
	sb, eb := encoding.ByteOffsetsOf(haystack, m.Start, m.End)
	return sb, eb, true
}

// IsMatch reports whether the compiled pattern matches haystack.
func (pr Program) IsMatch(haystack string) bool {
	_, _, ok := pr.Find(haystack)
	return ok
}

// FindCompact is the simplified host-binding API: it returns a notation
// bitmask driven, pinyin-oriented search packed into a single 64-bit
// value per encoding.NoMatch / encoding.PackMatch.
func FindCompact(pattern, haystack string, notations pinyin.Notation) uint64 {
	cfg := config.New().WithPinyinNotations(notations).Build()
	start, end, ok := Find(pattern, haystack, cfg)
	if !ok {
		return encoding.NoMatch
	}
	return encoding.PackMatch(start, end)
}
