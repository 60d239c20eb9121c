package xlit

import (
	"github.com/ibmatcher/ibmatcher/config"
)

// Step is one candidate transliteration-aware transition exposed to
// callers outside this package (the regex meta-atom executor): consume
// HaystackLen haystack code points against PatternLen pattern code
// points.
type Step struct {
	HaystackLen int
	PatternLen  int
}

// StepsAt enumerates every literal/pinyin/romaji transition available at
// (haystack[i:], pattern[j:]) under cfg, without recursing further. This
// is the primitive the regex frontend's meta-atoms use to give a literal
// run of runes the same transliteration awareness the substring matcher
// has, one rune-run at a time.
func StepsAt(pattern []rune, j int, haystack []rune, i int, cfg config.Config) []Step {
	policy := toCasePolicy(cfg.CasePolicy)
	var out []Step
	if t, ok := literalStep(policy, pattern, j, haystack, i); ok {
		out = append(out, Step{HaystackLen: t.haystackLen, PatternLen: t.patternLen})
	}
	if cfg.Pinyin {
		for _, t := range pinyinSteps(policy, pattern, j, haystack, i, cfg.PinyinNotations, cfg.IsPatternPartial) {
			out = append(out, Step{HaystackLen: t.haystackLen, PatternLen: t.patternLen})
		}
	}
	if cfg.Romaji {
		for _, t := range romajiSteps(policy, pattern, j, haystack, i, cfg.IsPatternPartial) {
			out = append(out, Step{HaystackLen: t.haystackLen, PatternLen: t.patternLen})
		}
	}
	return out
}
