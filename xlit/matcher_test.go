package xlit

import (
	"testing"

	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/pinyin"
)

func find(t *testing.T, pattern, haystack string, cfg config.Config) (Match, bool) {
	t.Helper()
	return Find([]rune(pattern), []rune(haystack), cfg)
}

func TestPinyinFullSpelling(t *testing.T) {
	cfg := config.New().WithPinyinNotations(pinyin.ASCII | pinyin.ASCIIFirstLetter).Build()
	m, ok := find(t, "pysousuoeve", "拼音搜索Everything", cfg)
	if !ok {
		t.Fatalf("expected match")
	}
	if m.Start != 0 {
		t.Errorf("start = %d, want 0", m.Start)
	}
}

func TestPinyinDefaultConfig(t *testing.T) {
	cfg := config.Default()
	m, ok := find(t, "pysousuoeve", "拼音搜索Everything", cfg)
	if !ok || m.Start != 0 {
		t.Fatalf("Find = %v, %v, want start 0", m, ok)
	}
}

func TestRomajiPartialMode(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).WithPartial(true).Build()
	m, ok := find(t, "konosuba", "この素晴らしい世界に祝福を", cfg)
	if !ok {
		t.Fatalf("expected partial match")
	}
	if m.Start != 0 {
		t.Errorf("start = %d, want 0", m.Start)
	}
	got := []rune("この素晴らしい世界に祝福を")[m.Start:m.End]
	if string(got) != "この素晴ら" {
		t.Errorf("matched span = %q, want %q", string(got), "この素晴ら")
	}
}

func TestRomajiWithoutPartialModeFails(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).WithPartial(false).Build()
	_, ok := find(t, "konosuba", "この素晴らしい世界に祝福を", cfg)
	if ok {
		t.Errorf("expected no match without partial mode (pattern ends mid-reading)")
	}
}

func TestRomajiSokuonGemination(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).Build()
	m1, ok1 := find(t, "shuuseipatchi", "修正パッチ", cfg)
	if !ok1 || m1.Start != 0 {
		t.Fatalf("shuuseipatchi: Find = %v, %v", m1, ok1)
	}
	m2, ok2 := find(t, "shuuseipacchi", "集成パッチ", cfg)
	if !ok2 || m2.Start != 0 {
		t.Fatalf("shuuseipacchi: Find = %v, %v", m2, ok2)
	}
}

func TestRomajiIterationMark(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).Build()
	m, ok := find(t, "shikanokonokonokokoshitantan", "鹿乃子のこのこ虎視眈々", cfg)
	if !ok || m.Start != 0 {
		t.Fatalf("Find = %v, %v", m, ok)
	}
}

func TestRomajiMoraicNasalBeforeNaRow(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).Build()
	cases := []struct {
		pattern, haystack string
	}{
		{"konnichiwa", "こんにちは"}, // ん then に: could read as nn or bare n
		{"onna", "おんな"},         // ん then な
		{"annai", "あんない"},       // ん then な
	}
	for _, c := range cases {
		m, ok := find(t, c.pattern, c.haystack, cfg)
		if !ok || m.Start != 0 {
			t.Errorf("%s vs %s: Find = %v, %v, want a match at start 0", c.pattern, c.haystack, m, ok)
		}
	}
}

func TestRomajiHalfwidthKatakanaNormalization(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).Build()
	// ﾊﾟｯﾁ is half-width for パッチ (ﾊ+ﾟ composes to パ); the dictionary
	// only ever registers full-width keys, so this only matches if the
	// haystack is widened/composed before the romaji lookup runs.
	haystack := "修正ﾊﾟｯﾁ"
	m, ok := find(t, "shuuseipatchi", haystack, cfg)
	if !ok {
		t.Fatalf("expected half-width katakana haystack to match after normalization")
	}
	runes := []rune(haystack)
	if m.Start != 0 || m.End != len(runes) {
		t.Errorf("Find = %+v, want a match spanning all %d original runes", m, len(runes))
	}
}

func TestAnchoredStartAndEnd(t *testing.T) {
	cfg := config.New().WithAnchoredStart(true).WithAnchoredEnd(true).Build()
	if _, ok := find(t, "拼音", "拼音搜索", cfg); ok {
		t.Errorf("anchored both ends should require whole-haystack match")
	}
	if _, ok := find(t, "拼音搜索", "拼音搜索", cfg); !ok {
		t.Errorf("anchored both ends should match the whole haystack")
	}
}

func TestLiteralASCIISubstring(t *testing.T) {
	cfg := config.Default()
	m, ok := find(t, "everything", "拼音搜索Everything", cfg)
	if !ok {
		t.Fatalf("expected case-folded literal ASCII match")
	}
	if m.Start != len([]rune("拼音搜索")) {
		t.Errorf("start = %d, want %d", m.Start, len([]rune("拼音搜索")))
	}
}

func TestNoMatchReturnsFalse(t *testing.T) {
	cfg := config.Default()
	if _, ok := find(t, "zzzznotfound", "拼音搜索Everything", cfg); ok {
		t.Errorf("expected no match")
	}
}

func TestMixLangDisabledByDefault(t *testing.T) {
	// 音 (pinyin "yin") immediately followed by 素 (romaji "so"; its pinyin
	// is "su"): a match spanning both only exists by interleaving
	// transliteration systems.
	cfg := config.New().WithRomaji(true).Build() // pinyin on by default, romaji on, mix off
	_, ok := find(t, "yinso", "音素", cfg)
	if ok {
		t.Errorf("expected no match when mix_lang is disabled and matching requires both pinyin and romaji")
	}
}

func TestMixLangEnabled(t *testing.T) {
	cfg := config.New().WithRomaji(true).WithMixLang(true).Build()
	m, ok := find(t, "yinso", "音素", cfg)
	if !ok || m.Start != 0 {
		t.Fatalf("Find = %v, %v, want a match at 0 with mix_lang enabled", m, ok)
	}
}
