// Package glob lowers shell-glob syntax into the shared regexir tree so
// the regex package's transliteration-aware executor can run it: `?`
// becomes a single-code-point wildcard, `*`/`**` become separator-aware
// runs, `[...]`/`[^...]`/`[a-z]` become character classes, and literal
// runs become MetaLiterals just as the regex frontend produces.
package glob

import (
	"fmt"
	"strings"

	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/regex"
	"github.com/ibmatcher/ibmatcher/regexir"
)

// AnchorMode selects how a glob's anchoring to the start/end of the
// haystack is decided.
type AnchorMode int

const (
	// Strict always anchors both ends: the match must start and end
	// exactly at the haystack's start and end. A leading/trailing `*`
	// still matches only what it matches elsewhere (no separator).
	Strict AnchorMode = iota
	// WildcardAnchors treats a leading/trailing `*` or `**` as making
	// that end unanchored, and otherwise anchors it (the common glob
	// convention: "*.go" anchors the end but not the start).
	WildcardAnchors
	// PathAnchors never anchors either end; the pattern is free to match
	// anywhere, as for a path-fragment search.
	PathAnchors
)

// Options configures dialect and anchoring for Parse/Compile.
type Options struct {
	// Separator is the path separator rune; '*' (but not '**') will not
	// cross it. Typically '/' or '\\'.
	Separator rune
	Anchor    AnchorMode
}

// DefaultOptions is the Unix-style dialect: '/' separator, wildcard
// anchoring.
func DefaultOptions() Options {
	return Options{Separator: '/', Anchor: WildcardAnchors}
}

// Parse lowers a glob pattern into a regexir tree under opts.
func Parse(pattern string, opts Options) (regexir.Node, error) {
	runes := []rune(pattern)
	var children []regexir.Node
	var lit []rune

	flushLit := func() {
		if len(lit) > 0 {
			children = append(children, regexir.MetaLiteral{Runes: append([]rune(nil), lit...)})
			lit = nil
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			lit = append(lit, runes[i+1])
			i++
		case r == '?':
			flushLit()
			children = append(children, regexir.AnyChar{})
		case r == '*':
			flushLit()
			if i+1 < len(runes) && runes[i+1] == '*' {
				children = append(children, regexir.AnyAny{})
				i++
			} else {
				children = append(children, regexir.AnySeparatorExcluded{Separator: opts.Separator})
			}
		case r == '[':
			flushLit()
			cls, consumed, err := parseClass(runes[i:])
			if err != nil {
				return nil, err
			}
			children = append(children, cls)
			i += consumed - 1
		default:
			lit = append(lit, r)
		}
	}
	flushLit()

	tree := regexir.Node(regexir.Concat{Children: children})
	return applyAnchors(tree, runes, opts), nil
}

func applyAnchors(tree regexir.Node, runes []rune, opts Options) regexir.Node {
	switch opts.Anchor {
	case PathAnchors:
		return tree
	case WildcardAnchors:
		startAnchored := !(len(runes) > 0 && runes[0] == '*')
		endAnchored := !(len(runes) > 0 && runes[len(runes)-1] == '*')
		return anchor(tree, startAnchored, endAnchored)
	default: // Strict
		return anchor(tree, true, true)
	}
}

func anchor(tree regexir.Node, start, end bool) regexir.Node {
	children := []regexir.Node{}
	if start {
		children = append(children, regexir.StartAnchor{})
	}
	children = append(children, tree)
	if end {
		children = append(children, regexir.EndAnchor{})
	}
	return regexir.Concat{Children: children}
}

func parseClass(runes []rune) (regexir.Node, int, error) {
	if len(runes) < 2 || runes[0] != '[' {
		return nil, 0, fmt.Errorf("glob: malformed character class")
	}
	i := 1
	negate := false
	if i < len(runes) && (runes[i] == '^' || runes[i] == '!') {
		negate = true
		i++
	}
	var ranges [][2]rune
	for i < len(runes) && runes[i] != ']' {
		lo := runes[i]
		if lo == '\\' && i+1 < len(runes) {
			i++
			lo = runes[i]
		}
		if i+2 < len(runes) && runes[i+1] == '-' && runes[i+2] != ']' {
			hi := runes[i+2]
			ranges = append(ranges, [2]rune{lo, hi})
			i += 3
			continue
		}
		ranges = append(ranges, [2]rune{lo, lo})
		i++
	}
	if i >= len(runes) {
		return nil, 0, fmt.Errorf("glob: unterminated character class")
	}
	return regexir.CharClass{Ranges: ranges, Negate: negate}, i + 1, nil
}

// Compile lowers pattern and wraps it in a regex.Program ready to search.
func Compile(pattern string, opts Options, cfg config.Config) (regex.Program, error) {
	tree, err := Parse(pattern, opts)
	if err != nil {
		return regex.Program{}, err
	}
	return regex.Compile(tree, cfg, nil), nil
}

// NormalizeSeparator rewrites the non-canonical separator to the
// canonical one, letting a single dialect's patterns and haystacks (e.g.
// Windows '\\' paths) share one glob compiled under Separator '/'.
func NormalizeSeparator(s string, from, to rune) string {
	if from == to {
		return s
	}
	return strings.ReplaceAll(s, string(from), string(to))
}
