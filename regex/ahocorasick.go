package regex

import (
	"github.com/coregx/ahocorasick"

	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/regexir"
)

// asciiAlternationThreshold mirrors the teacher's literal-alternation
// strategy selection: once an alternation grows past a handful of
// branches, trying each one independently at every haystack position
// stops paying off and a multi-pattern automaton scanning the whole
// haystack in one pass wins instead.
const asciiAlternationThreshold = 8

// buildLiteralPrefilter inspects root for a top-level alternation of
// pure-ASCII literals and, when the match config forbids case folding and
// disables both pinyin and romaji, builds an Aho-Corasick automaton over
// the branch bytes. The automaton is used only as a fast reject: with no
// folding and no transliteration, each MetaLiteral branch can only match
// its own exact ASCII bytes, so a haystack containing none of the branch
// byte sequences cannot match, and the stepped walk that actually proves
// a match only runs once the automaton confirms a candidate occurrence
// exists. (With pinyin or romaji on, a branch such as "golf" also matches
// Han/kana text whose readings spell it, which the automaton cannot see.)
func buildLiteralPrefilter(root regexir.Node, cfg config.Config) *ahocorasick.Automaton {
	if cfg.CasePolicy != config.NoFold || cfg.Pinyin || cfg.Romaji {
		return nil
	}
	lits, ok := asciiAlternationLiterals(root)
	if !ok || len(lits) < asciiAlternationThreshold {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// asciiAlternationLiterals reports the branch bytes of root when root is
// an Alt whose every child is a pure-ASCII MetaLiteral, and false
// otherwise (mixed alternations, nested groups, or any branch touching
// non-ASCII code points fall back to the ordinary stepped walk, since
// those can legitimately match via transliteration).
func asciiAlternationLiterals(root regexir.Node) ([][]byte, bool) {
	alt, ok := root.(regexir.Alt)
	if !ok {
		return nil, false
	}
	lits := make([][]byte, 0, len(alt.Children))
	for _, c := range alt.Children {
		ml, ok := c.(regexir.MetaLiteral)
		if !ok {
			return nil, false
		}
		b := make([]byte, 0, len(ml.Runes))
		for _, r := range ml.Runes {
			if r >= 0x80 {
				return nil, false
			}
			b = append(b, byte(r))
		}
		lits = append(lits, b)
	}
	return lits, true
}

// haystackBytes renders haystack as UTF-8 for the automaton. Every
// registered pattern is pure ASCII, so a byte-level hit can only
// originate from an actual ASCII run in the haystack, never from the
// trailing or leading byte of an unrelated multi-byte rune's encoding.
func haystackBytes(haystack []rune) []byte {
	return []byte(string(haystack))
}
