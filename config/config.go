// Package config defines MatchConfig, the value type that controls how a
// pattern is matched against a haystack: which transliterations are
// enabled, which pinyin notations are active, the case-folding policy,
// anchoring, partial-pattern mode, and language mixing.
package config

import "github.com/ibmatcher/ibmatcher/pinyin"

// CasePolicy controls how pattern letters compare to haystack letters.
type CasePolicy int

const (
	// FoldAll case-folds both pattern and haystack letters (the default).
	FoldAll CasePolicy = iota
	// FoldLowerOnly lets lowercase pattern letters fold, but forces
	// uppercase pattern letters to match only the exact haystack letter.
	// This is how a pattern asks to match ASCII literally mid-query.
	FoldLowerOnly
	// NoFold requires byte-for-byte (rune-for-rune) equality.
	NoFold
)

// Config is the compiled, immutable set of options a MatchConfig produces.
// It is safe to share across concurrent searches.
type Config struct {
	Pinyin           bool
	PinyinNotations  pinyin.Notation
	Romaji           bool
	CasePolicy       CasePolicy
	AnchoredStart    bool
	AnchoredEnd      bool
	IsPatternPartial bool
	MixLang          bool
}

// Default returns the library's default configuration: pinyin enabled with
// ASCII and ASCII-first-letter notations, romaji disabled, full case
// folding, unanchored, no partial mode, single-language matches only.
func Default() Config {
	return Config{
		Pinyin:          true,
		PinyinNotations: pinyin.DefaultNotations,
		Romaji:          false,
		CasePolicy:      FoldAll,
	}
}

// MatchConfig is a fluent builder over Config. Each setter returns the
// receiver by value, so a MatchConfig is cheap to copy and chain:
//
//	cfg := config.New().WithRomaji(true).WithAnchoredStart(true).Build()
type MatchConfig struct {
	c Config
}

// New returns a builder seeded with Default().
func New() MatchConfig {
	return MatchConfig{c: Default()}
}

func (m MatchConfig) WithPinyin(enabled bool) MatchConfig {
	m.c.Pinyin = enabled
	return m
}

func (m MatchConfig) WithPinyinNotations(n pinyin.Notation) MatchConfig {
	m.c.PinyinNotations = n
	return m
}

func (m MatchConfig) WithRomaji(enabled bool) MatchConfig {
	m.c.Romaji = enabled
	return m
}

func (m MatchConfig) WithCasePolicy(p CasePolicy) MatchConfig {
	m.c.CasePolicy = p
	return m
}

// WithUppercaseLiteral is shorthand for WithCasePolicy(FoldLowerOnly); it
// matches the spec's uppercase_literal flag name.
func (m MatchConfig) WithUppercaseLiteral(enabled bool) MatchConfig {
	if enabled {
		m.c.CasePolicy = FoldLowerOnly
	} else if m.c.CasePolicy == FoldLowerOnly {
		m.c.CasePolicy = FoldAll
	}
	return m
}

func (m MatchConfig) WithAnchoredStart(enabled bool) MatchConfig {
	m.c.AnchoredStart = enabled
	return m
}

func (m MatchConfig) WithAnchoredEnd(enabled bool) MatchConfig {
	m.c.AnchoredEnd = enabled
	return m
}

func (m MatchConfig) WithPartial(enabled bool) MatchConfig {
	m.c.IsPatternPartial = enabled
	return m
}

func (m MatchConfig) WithMixLang(enabled bool) MatchConfig {
	m.c.MixLang = enabled
	return m
}

// Build finalizes the builder into an immutable Config.
func (m MatchConfig) Build() Config {
	return m.c
}
