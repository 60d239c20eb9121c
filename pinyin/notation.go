// Package pinyin provides the compressed Han code point -> pinyin reading
// dictionary and the notation encoders (full pinyin, tone-marked, initials,
// Unicode diacritic form, and the shuangpin keyboard layouts) that the
// transliteration-aware matcher searches disjunctively.
package pinyin

// Notation is a bitmask selecting which pinyin spellings a matcher accepts
// for a syllable. Multiple bits combine disjunctively. The numeric values
// are part of the library's stable wire format (they are exposed through
// the simplified notation-bitmask API) and must never be renumbered.
type Notation uint32

const (
	// ASCII is the canonical spelling without a tone marker, e.g. "pin".
	ASCII Notation = 1 << iota
	// ASCIITone is the canonical spelling with a trailing tone digit
	// (1-5, 5 = neutral), e.g. "pin1".
	ASCIITone
	// Unicode places the tone mark on the conventional vowel, e.g. "pīn".
	Unicode
	// ASCIIFirstLetter keeps only the first ASCII letter of the spelling
	// (for digraph initials zh/ch/sh, only the first letter), e.g. "p".
	ASCIIFirstLetter
	// ShuangpinABC is the "Smart ABC" two-key layout.
	ShuangpinABC
	// ShuangpinJiajia is the "Jiajia" two-key layout.
	ShuangpinJiajia
	// ShuangpinMicrosoft is the Microsoft Pinyin IME two-key layout.
	ShuangpinMicrosoft
	// ShuangpinThunisoft is the Ziguang/Thunisoft two-key layout.
	ShuangpinThunisoft
	// ShuangpinXiaohe is the "Xiaohe" (小鹤) two-key layout.
	ShuangpinXiaohe
	// ShuangpinZRM is the ZRM (自然码) two-key layout.
	ShuangpinZRM
)

// AllShuangpin is the set of every shuangpin variant bit.
const AllShuangpin = ShuangpinABC | ShuangpinJiajia | ShuangpinMicrosoft |
	ShuangpinThunisoft | ShuangpinXiaohe | ShuangpinZRM

// DefaultNotations is the notation set used when a MatchConfig enables
// pinyin without specifying a bitmask: full pinyin plus initials-only,
// which covers the common "type the first letters" search habit without
// paying for every shuangpin layout's table lookups.
const DefaultNotations = ASCII | ASCIIFirstLetter

// Has reports whether every bit in sub is set in n.
func (n Notation) Has(sub Notation) bool {
	return n&sub == sub
}

// shuangpinVariants lists every shuangpin bit alongside its table, used by
// Encode to avoid repeating the switch in two places.
var shuangpinVariants = [...]struct {
	bit   Notation
	table *shuangpinTable
}{
	{ShuangpinABC, &shuangpinABC},
	{ShuangpinJiajia, &shuangpinJiajia},
	{ShuangpinMicrosoft, &shuangpinMicrosoft},
	{ShuangpinThunisoft, &shuangpinThunisoft},
	{ShuangpinXiaohe, &shuangpinXiaohe},
	{ShuangpinZRM, &shuangpinZRM},
}
