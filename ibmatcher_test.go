package ibmatcher

import (
	"testing"

	"github.com/ibmatcher/ibmatcher/config"
	"github.com/ibmatcher/ibmatcher/pinyin"
)

func TestIsMatchPinyinDefault(t *testing.T) {
	if !IsMatch("pysousuoeve", "拼音搜索Everything", config.Default()) {
		t.Errorf("expected default pinyin config to match")
	}
}

func TestFindPinyinAsciiAndFirstLetter(t *testing.T) {
	cfg := config.New().WithPinyinNotations(pinyin.ASCII | pinyin.ASCIIFirstLetter).Build()
	start, _, ok := Find("pysousuoeve", "拼音搜索Everything", cfg)
	if !ok || start != 0 {
		t.Fatalf("Find = %d, %v, want start 0", start, ok)
	}
}

func TestFindNoMatch(t *testing.T) {
	if _, _, ok := Find("zzz", "拼音搜索Everything", config.Default()); ok {
		t.Errorf("expected no match")
	}
}

func TestFindUTF32(t *testing.T) {
	cfg := config.New().WithPinyinNotations(pinyin.ASCII | pinyin.ASCIIFirstLetter).Build()
	start, _, ok := FindUTF32("pysousuoeve", []rune("拼音搜索Everything"), cfg)
	if !ok || start != 0 {
		t.Fatalf("FindUTF32 = %d, %v", start, ok)
	}
}

func TestFindUTF16SurrogatePairOffsets(t *testing.T) {
	// U+1F600 (a supplementary-plane rune) requires a surrogate pair in
	// UTF-16; the match after it must report unit offsets, not code-point
	// offsets.
	haystack := "\U0001F600hello"
	units := make([]uint16, 0)
	for _, r := range haystack {
		if r > 0xFFFF {
			r1, r2 := encodeSurrogatePair(r)
			units = append(units, r1, r2)
		} else {
			units = append(units, uint16(r))
		}
	}
	start, end, ok := FindUTF16("hello", units, config.Default())
	if !ok {
		t.Fatalf("expected match")
	}
	if start != 2 || end != 7 {
		t.Errorf("start,end = %d,%d, want 2,7 (2 UTF-16 units for the emoji, then 5 for hello)", start, end)
	}
}

func encodeSurrogatePair(r rune) (uint16, uint16) {
	r -= 0x10000
	return uint16(0xD800 + (r >> 10)), uint16(0xDC00 + (r & 0x3FF))
}

func TestBuildProgramReuse(t *testing.T) {
	prog := Build("everything", config.Default())
	if !prog.IsMatch("拼音搜索Everything") {
		t.Errorf("expected program to match")
	}
	if prog.IsMatch("nothing relevant here") {
		t.Errorf("expected program not to match unrelated haystack")
	}
}

func TestFindCompactPacksNoMatch(t *testing.T) {
	v := FindCompact("zzz", "拼音搜索Everything", pinyin.ASCII)
	start, end, ok := unpackTestHelper(v)
	if ok {
		t.Errorf("expected no-match sentinel, got %d,%d", start, end)
	}
}

func unpackTestHelper(v uint64) (int, int, bool) {
	if v == 0xFFFFFFFF {
		return 0, 0, false
	}
	return int(uint32(v)), int(uint32(v >> 32)), true
}

func TestRomajiEndToEndScenarios(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).WithPartial(true).Build()
	if !IsMatch("konosuba", "この素晴らしい世界に祝福を", cfg) {
		t.Errorf("scenario 3: expected partial-mode match")
	}

	cfg2 := config.New().WithPinyin(false).WithRomaji(true).Build()
	if !IsMatch("shuuseipatchi", "修正パッチ", cfg2) {
		t.Errorf("scenario 5a: expected sokuon-geminated match")
	}
	if !IsMatch("shuuseipacchi", "集成パッチ", cfg2) {
		t.Errorf("scenario 5b: expected sokuon-geminated match")
	}
	if !IsMatch("shikanokonokonokokoshitantan", "鹿乃子のこのこ虎視眈々", cfg2) {
		t.Errorf("scenario 6: expected iteration-mark match")
	}
}
