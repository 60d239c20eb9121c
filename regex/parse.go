package regex

import (
	"fmt"
	"regexp/syntax"

	"github.com/ibmatcher/ibmatcher/regexir"
)

// ErrUnsupportedOp indicates a parsed regex construct this frontend does
// not lower: any syntax.Op that lower has no case for (e.g. OpNoMatch).
var ErrUnsupportedOp = fmt.Errorf("regex: unsupported construct")

// Parse parses a pattern with conventional-ERE syntax (alternation,
// non-capturing groups, greedy/lazy repetition) and lowers it to the
// shared regexir tree, replacing every literal run with a MetaLiteral so
// the executor can try transliteration transitions against it. Verbose
// mode is not supported: regexp/syntax rejects the (?x) flag, so such a
// pattern returns a *CompileError.
func Parse(pattern string) (regexir.Node, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	re = re.Simplify()
	node, err := lower(re)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return node, nil
}

func lower(re *syntax.Regexp) (regexir.Node, error) {
	switch re.Op {
	case syntax.OpLiteral:
		return regexir.MetaLiteral{Runes: append([]rune(nil), re.Rune...)}, nil

	case syntax.OpCharClass:
		ranges := make([][2]rune, 0, len(re.Rune)/2)
		for i := 0; i+1 < len(re.Rune); i += 2 {
			ranges = append(ranges, [2]rune{re.Rune[i], re.Rune[i+1]})
		}
		return regexir.CharClass{Ranges: ranges}, nil

	case syntax.OpAnyCharNotNL:
		return regexir.AnyChar{ExcludeNewline: true}, nil
	case syntax.OpAnyChar:
		return regexir.AnyChar{}, nil

	case syntax.OpBeginLine, syntax.OpBeginText:
		return regexir.StartAnchor{}, nil
	case syntax.OpEndLine, syntax.OpEndText:
		return regexir.EndAnchor{}, nil

	case syntax.OpWordBoundary:
		return regexir.WordBoundary{}, nil
	case syntax.OpNoWordBoundary:
		return regexir.WordBoundary{Negate: true}, nil

	case syntax.OpEmptyMatch:
		return regexir.Concat{}, nil

	case syntax.OpCapture:
		return lower(re.Sub[0])

	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		child, err := lower(re.Sub[0])
		if err != nil {
			return nil, err
		}
		min, max := repeatBounds(re)
		return regexir.Repeat{Child: child, Min: min, Max: max, Lazy: re.Flags&syntax.NonGreedy != 0}, nil

	case syntax.OpConcat:
		children, err := lowerAll(re.Sub)
		if err != nil {
			return nil, err
		}
		return regexir.Concat{Children: children}, nil

	case syntax.OpAlternate:
		children, err := lowerAll(re.Sub)
		if err != nil {
			return nil, err
		}
		return regexir.Alt{Children: children}, nil

	default:
		return nil, fmt.Errorf("%w: op %v", ErrUnsupportedOp, re.Op)
	}
}

func repeatBounds(re *syntax.Regexp) (min, max int) {
	switch re.Op {
	case syntax.OpStar:
		return 0, -1
	case syntax.OpPlus:
		return 1, -1
	case syntax.OpQuest:
		return 0, 1
	default: // OpRepeat
		return re.Min, re.Max
	}
}

func lowerAll(subs []*syntax.Regexp) ([]regexir.Node, error) {
	out := make([]regexir.Node, 0, len(subs))
	for _, s := range subs {
		n, err := lower(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
