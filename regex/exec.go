// Package regex implements the Thompson-style execution of a lowered
// regexir.Node tree. Both the glob frontend and this package's own regex
// parser produce the same tree shape; the backtracking walk defined here
// is what actually gives MetaLiteral atoms their transliteration
// awareness, by delegating each one to the xlit package's shared
// exploration instead of a plain byte/rune comparison.
package regex

import (
	"github.com/coregx/ahocorasick"

	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/internal/runeutil"
	"github.com/ibmatcher/ibmatcher/regexir"
	"github.com/ibmatcher/ibmatcher/romaji"
	"github.com/ibmatcher/ibmatcher/xlit"
)

// Callback is a build-time-registered custom matcher: given the haystack
// and a position, it returns every accepted match length at that
// position (possibly none). Callbacks are pure; they must not mutate the
// haystack or rely on captured state from elsewhere in the pattern.
type Callback func(haystack []rune, pos int) []int

// Program is a compiled pattern: a regexir tree plus the MatchConfig it
// was built under and any registered callbacks.
type Program struct {
	root      regexir.Node
	cfg       config.Config
	callbacks map[string]Callback
	prefilter *ahocorasick.Automaton
}

// Compile pairs a lowered node tree with the configuration that will
// drive its transliteration-aware literal atoms. When root is a large
// alternation of plain-ASCII literals under a NoFold config with pinyin
// and romaji both disabled, Compile also builds an Aho-Corasick prefilter (see buildLiteralPrefilter) so
// Match can reject non-matching haystacks without walking the tree.
func Compile(root regexir.Node, cfg config.Config, callbacks map[string]Callback) Program {
	return Program{root: root, cfg: cfg, callbacks: callbacks, prefilter: buildLiteralPrefilter(root, cfg)}
}

// Match reports whether the program matches somewhere in haystack, and
// if so the leftmost span, ending where the first successful path through
// the tree ends (greedy repeats try more repetitions first, lazy ones
// fewer, alternatives left to right).
//
// When the program's config enables romaji, haystack is first widened
// from half-width to full-width katakana (the dictionary the MetaLiteral
// walk consults only ever registers full-width keys), and the resulting
// span is translated back into the caller's original coordinates before
// it is returned.
func (p Program) Match(haystack []rune) (start, end int, ok bool) {
	search, origIndex := haystack, []int(nil)
	if p.cfg.Romaji {
		search, origIndex = romaji.NormalizeHalfwidthRunes(haystack)
	}
	if p.prefilter != nil && !p.prefilter.IsMatch(haystackBytes(search)) {
		return 0, 0, false
	}
	lastStart := len(search)
	for s := 0; s <= lastStart; s++ {
		if e, ok := p.matchAt(search, s); ok {
			if origIndex == nil {
				return s, e, true
			}
			return romaji.MapNormalizedOffset(origIndex, len(search), len(haystack), s),
				romaji.MapNormalizedOffset(origIndex, len(search), len(haystack), e), true
		}
	}
	return 0, 0, false
}

func (p Program) matchAt(haystack []rune, pos int) (int, bool) {
	return p.step(p.root, haystack, pos, func(end int) (int, bool) { return end, true })
}

// cont is the success continuation: "given that this node finished at
// end, does the rest of the pattern succeed?" This threads Concat/Alt/
// Repeat through the recursive walk without building an explicit state
// machine, mirroring a bounded backtracking regex executor.
type cont func(end int) (int, bool)

func (p Program) step(n regexir.Node, haystack []rune, pos int, k cont) (int, bool) {
	switch v := n.(type) {
	case regexir.MetaLiteral:
		return p.stepMetaLiteral(v, haystack, pos, k)
	case regexir.AnyChar:
		if pos >= len(haystack) {
			return 0, false
		}
		if v.ExcludeNewline && haystack[pos] == '\n' {
			return 0, false
		}
		return k(pos + 1)
	case regexir.CharClass:
		if pos >= len(haystack) {
			return 0, false
		}
		if classContains(v, haystack[pos], p.casePolicy()) {
			return k(pos + 1)
		}
		return 0, false
	case regexir.AnySeparatorExcluded:
		return p.stepGreedyRun(haystack, pos, func(r rune) bool { return r != v.Separator }, k)
	case regexir.AnyAny:
		return p.stepGreedyRun(haystack, pos, func(rune) bool { return true }, k)
	case regexir.Concat:
		return p.stepConcat(v.Children, haystack, pos, k)
	case regexir.Alt:
		for _, c := range v.Children {
			if end, ok := p.step(c, haystack, pos, k); ok {
				return end, true
			}
		}
		return 0, false
	case regexir.Repeat:
		return p.stepRepeat(v, haystack, pos, k)
	case regexir.StartAnchor:
		if pos != 0 {
			return 0, false
		}
		return k(pos)
	case regexir.EndAnchor:
		if pos != len(haystack) {
			return 0, false
		}
		return k(pos)
	case regexir.WordBoundary:
		if isWordBoundary(haystack, pos) != v.Negate {
			return k(pos)
		}
		return 0, false
	case regexir.Callback:
		cb, found := p.callbacks[v.Name]
		if !found {
			return 0, false
		}
		for _, l := range cb(haystack, pos) {
			if end, ok := k(pos + l); ok {
				return end, true
			}
		}
		return 0, false
	}
	return 0, false
}

// stepMetaLiteral walks v.Runes against the haystack starting at pos,
// trying literal/pinyin/romaji transitions at each rune position of the
// literal run (mirroring xlit's substring exploration, scoped to this
// one atom) until the whole run is consumed, then hands off to k.
func (p Program) stepMetaLiteral(v regexir.MetaLiteral, haystack []rune, pos int, k cont) (int, bool) {
	return p.walkLiteral(v.Runes, 0, haystack, pos, k)
}

func (p Program) walkLiteral(runes []rune, j int, haystack []rune, i int, k cont) (int, bool) {
	if j == len(runes) {
		return k(i)
	}
	for _, s := range xlit.StepsAt(runes, j, haystack, i, p.cfg) {
		nj, ni := j+s.PatternLen, i+s.HaystackLen
		if nj > len(runes) {
			continue
		}
		if end, ok := p.walkLiteral(runes, nj, haystack, ni, k); ok {
			return end, true
		}
	}
	return 0, false
}

func (p Program) stepConcat(children []regexir.Node, haystack []rune, pos int, k cont) (int, bool) {
	if len(children) == 0 {
		return k(pos)
	}
	head, rest := children[0], children[1:]
	return p.step(head, haystack, pos, func(end int) (int, bool) {
		return p.stepConcat(rest, haystack, end, k)
	})
}

// stepRepeat is a simple greedy-then-backtrack repetition: for non-lazy
// repeats it tries the most repetitions first; for lazy repeats it tries
// the fewest first. Min/Max bound the search so a pathological pattern
// cannot loop unboundedly.
func (p Program) stepRepeat(r regexir.Repeat, haystack []rune, pos int, k cont) (int, bool) {
	max := r.Max
	if max < 0 {
		max = len(haystack) - pos + r.Min + 1
	}
	if r.Lazy {
		return p.repeatLazy(r.Child, haystack, pos, 0, r.Min, max, k)
	}
	return p.repeatGreedy(r.Child, haystack, pos, 0, r.Min, max, k)
}

func (p Program) repeatGreedy(child regexir.Node, haystack []rune, pos, count, min, max int, k cont) (int, bool) {
	if count < max {
		if end, ok := p.step(child, haystack, pos, func(e int) (int, bool) {
			if e == pos && count >= min {
				return 0, false // guard against infinite loop on empty-width repeats
			}
			return p.repeatGreedy(child, haystack, e, count+1, min, max, k)
		}); ok {
			return end, true
		}
	}
	if count >= min {
		return k(pos)
	}
	return 0, false
}

func (p Program) repeatLazy(child regexir.Node, haystack []rune, pos, count, min, max int, k cont) (int, bool) {
	if count >= min {
		if end, ok := k(pos); ok {
			return end, true
		}
	}
	if count < max {
		return p.step(child, haystack, pos, func(e int) (int, bool) {
			if e == pos {
				return 0, false
			}
			return p.repeatLazy(child, haystack, e, count+1, min, max, k)
		})
	}
	return 0, false
}

// stepGreedyRun matches the longest run of code points satisfying accept
// starting at pos, then backtracks to shorter runs if the continuation
// fails — the usual greedy-star backtracking shape.
func (p Program) stepGreedyRun(haystack []rune, pos int, accept func(rune) bool, k cont) (int, bool) {
	end := pos
	for end < len(haystack) && accept(haystack[end]) {
		end++
	}
	for e := end; e >= pos; e-- {
		if ok, done := k(e); done {
			return ok, done
		}
	}
	return 0, false
}

func isWordChar(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWordBoundary(haystack []rune, pos int) bool {
	before := pos > 0 && isWordChar(haystack[pos-1])
	after := pos < len(haystack) && isWordChar(haystack[pos])
	return before != after
}

// classContains reports whether r falls in one of c's ranges, lowering r
// and every range's bounds unless policy is NoFold, so
// a class like [a-z] also accepts the haystack's uppercase folds under
// the default FoldAll policy.
func classContains(c regexir.CharClass, r rune, policy runeutil.CasePolicy) bool {
	in := false
	for _, rg := range c.Ranges {
		if rangeContainsFolded(rg, r, policy) {
			in = true
			break
		}
	}
	if c.Negate {
		return !in
	}
	return in
}

func rangeContainsFolded(rg [2]rune, r rune, policy runeutil.CasePolicy) bool {
	if r >= rg[0] && r <= rg[1] {
		return true
	}
	if policy == runeutil.NoFold {
		return false
	}
	return runeutil.FastLower(r) >= runeutil.FastLower(rg[0]) && runeutil.FastLower(r) <= runeutil.FastLower(rg[1])
}

func (p Program) casePolicy() runeutil.CasePolicy {
	switch p.cfg.CasePolicy {
	case config.FoldLowerOnly:
		return runeutil.FoldLowerOnly
	case config.NoFold:
		return runeutil.NoFold
	default:
		return runeutil.FoldAll
	}
}
