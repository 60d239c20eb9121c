// Package regexir is the shared intermediate representation that both the
// glob frontend and the regex frontend lower their input into. A Node
// tree is purely structural; it carries no transliteration awareness by
// itself; the regex package's executor is what expands a MetaLiteral into
// literal/pinyin/romaji alternatives at match time.
package regexir

// Node is one piece of a lowered pattern tree.
type Node interface {
	isNode()
}

// MetaLiteral is a run of literal code points that the executor will also
// try to satisfy via pinyin or romaji transliteration starting at the
// haystack position where the run begins. Both the glob and regex
// frontends produce these instead of plain literals so a single executor
// can give every literal atom transliteration awareness.
type MetaLiteral struct {
	Runes []rune
}

func (MetaLiteral) isNode() {}

// AnyChar matches exactly one code point (glob's ?, regex's .).
type AnyChar struct {
	ExcludeNewline bool
}

func (AnyChar) isNode() {}

// CharClass matches one code point against a set of rune ranges.
type CharClass struct {
	Ranges [][2]rune
	Negate bool
}

func (CharClass) isNode() {}

// AnySeparatorExcluded matches any run of code points except a path
// separator (glob's single *).
type AnySeparatorExcluded struct {
	Separator rune
}

func (AnySeparatorExcluded) isNode() {}

// AnyAny matches any run of code points, including path separators
// (glob's **).
type AnyAny struct{}

func (AnyAny) isNode() {}

// Concat matches each child in sequence.
type Concat struct {
	Children []Node
}

func (Concat) isNode() {}

// Alt matches any one of its children (regex alternation).
type Alt struct {
	Children []Node
}

func (Alt) isNode() {}

// Repeat matches Child between Min and Max times (Max < 0 means
// unbounded); Lazy prefers the fewest repetitions first.
type Repeat struct {
	Child Node
	Min   int
	Max   int
	Lazy  bool
}

func (Repeat) isNode() {}

// StartAnchor/EndAnchor match the empty string only at the haystack's
// start/end respectively (regex ^ and $).
type StartAnchor struct{}

func (StartAnchor) isNode() {}

type EndAnchor struct{}

func (EndAnchor) isNode() {}

// WordBoundary matches the empty string at a transition between a word
// code point (per regexp/syntax's ASCII definition) and a non-word one;
// Negate requests the opposite (no transition, or buffer edge).
type WordBoundary struct {
	Negate bool
}

func (WordBoundary) isNode() {}

// Callback is a named, build-time-registered custom matcher: at
// execution time it is invoked as (haystack, pos) -> accepted lengths,
// and the executor treats each returned length as a valid transition.
type Callback struct {
	Name string
}

func (Callback) isNode() {}
