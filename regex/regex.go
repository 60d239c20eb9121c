package regex

import "github.com/ibmatcher/ibmatcher/config"

// Build parses pattern and compiles it into a reusable Program under cfg.
// callbacks may be nil; each entry registers a named zero-or-more-
// consuming transition usable from the pattern via (?P<name>) is not
// supported — callbacks are referenced through regexir.Callback nodes
// built by callers that construct a tree directly rather than through
// Parse, since conventional regex syntax has no surface form for them.
func Build(pattern string, cfg config.Config, callbacks map[string]Callback) (Program, error) {
	root, err := Parse(pattern)
	if err != nil {
		return Program{}, err
	}
	return Compile(root, cfg, callbacks), nil
}

// IsMatch reports whether the program matches anywhere in haystack.
func (p Program) IsMatch(haystack []rune) bool {
	_, _, ok := p.Match(haystack)
	return ok
}
