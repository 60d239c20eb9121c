package romaji

import "testing"

func hasVariant(syls []Syllable, want string) bool {
	for _, s := range syls {
		for _, v := range s.Variants {
			if v == want {
				return true
			}
		}
	}
	return false
}

func TestLookupBasicHiragana(t *testing.T) {
	d := Default()
	h := []rune("こんにちは")
	n, syl, ok := d.Lookup(h, 0)
	if !ok || n != 1 || !hasVariant(syl, "ko") {
		t.Fatalf("Lookup(こ) = %d, %v, %v", n, syl, ok)
	}
}

func TestLookupKatakanaMirrorsHiragana(t *testing.T) {
	d := Default()
	hira, _, _ := d.Lookup([]rune("す"), 0)
	kata, kataSyl, ok := d.Lookup([]rune("ス"), 0)
	if !ok || hira != kata || !hasVariant(kataSyl, "su") {
		t.Fatalf("katakana ス did not mirror hiragana す: %v %v %v", kata, kataSyl, ok)
	}
}

func TestLookupYoon(t *testing.T) {
	d := Default()
	n, syl, ok := d.Lookup([]rune("きゃ"), 0)
	if !ok || n != 2 || !hasVariant(syl, "kya") {
		t.Fatalf("Lookup(きゃ) = %d, %v, %v", n, syl, ok)
	}
}

func TestLookupSokuonGeminatesFollowingSyllable(t *testing.T) {
	d := Default()
	// しゅうせいぱっち -> shuuseipacchi: the っ before ち geminates "chi" to "tchi".
	h := []rune("ぱっち")
	n, syl, ok := d.Lookup(h, 1) // position of っ
	if !ok {
		t.Fatalf("Lookup(っち) failed")
	}
	if n != 2 {
		t.Errorf("consumed = %d, want 2 (っ + ち)", n)
	}
	if !hasVariant(syl, "tchi") {
		t.Errorf("geminated readings = %v, want tchi present", syl)
	}
}

func TestLookupIterationMarkRepeatsPreviousChar(t *testing.T) {
	d := Default()
	h := []rune("鹿々")
	n, syl, ok := d.Lookup(h, 1)
	if !ok || n != 1 {
		t.Fatalf("Lookup(々 after 鹿) = %d, %v, %v", n, syl, ok)
	}
	if !hasVariant(syl, "shika") {
		t.Errorf("々 readings = %v, want shika (鹿's reading) present", syl)
	}
}

func TestLookupLongVowelMarkExtendsPrevious(t *testing.T) {
	d := Default()
	h := []rune("コー")
	n, syl, ok := d.Lookup(h, 1)
	if !ok || n != 1 {
		t.Fatalf("Lookup(ー after コ) = %d, %v, %v", n, syl, ok)
	}
	if !hasVariant(syl, "koo") && !hasVariant(syl, "kō") {
		t.Errorf("ー readings = %v, want koo or kō present", syl)
	}
}

func TestLookupKanjiCompound(t *testing.T) {
	d := Default()
	h := []rune("晴らしい")
	n, syl, ok := d.Lookup(h, 0)
	if !ok || n != 2 || !hasVariant(syl, "bara") {
		t.Fatalf("Lookup(晴ら) = %d, %v, %v, want 2 runes / bara", n, syl, ok)
	}
}

func TestLookupMoraicNasalFlag(t *testing.T) {
	d := Default()
	_, syl, ok := d.Lookup([]rune("ん"), 0)
	if !ok || len(syl) != 1 || !syl[0].MoraicNasal {
		t.Fatalf("Lookup(ん) = %v, %v, want MoraicNasal syllable", syl, ok)
	}
}

func TestLookupUnknownRune(t *testing.T) {
	d := Default()
	_, _, ok := d.Lookup([]rune("@"), 0)
	if ok {
		t.Errorf("Lookup(@) should fail, no reading")
	}
}

func TestNormalizeHalfwidth(t *testing.T) {
	// Half-width katakana ｽ (U+FF7D) should widen to full-width ス (U+30B9).
	got := NormalizeHalfwidth("ｽ")
	want := "ス"
	if got != want {
		t.Errorf("NormalizeHalfwidth(ｽ) = %q, want %q", got, want)
	}
}
