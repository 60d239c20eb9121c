package pinyin

import "testing"

func TestDictionaryReadings(t *testing.T) {
	d := NewDictionary()

	syl := d.Readings('拼')
	if len(syl) == 0 {
		t.Fatal("expected at least one reading for 拼")
	}
	if syl[0].Base != "pin" {
		t.Errorf("拼 first reading base = %q, want %q", syl[0].Base, "pin")
	}

	if d.HasReading('E') {
		t.Error("ASCII letter should have no pinyin reading")
	}
	if d.Readings('E') != nil {
		t.Error("expected nil readings for non-Han code point")
	}
}

func TestDictionaryHeteronym(t *testing.T) {
	d := NewDictionary()
	// 中 is a textbook heteronym (zhōng / zhòng).
	syl := d.Readings('中')
	if len(syl) < 1 {
		t.Fatal("expected readings for 中")
	}
	found := false
	for _, s := range syl {
		if s.Base == "zhong" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a zhong reading among %v", syl)
	}
}

func TestExtractTone(t *testing.T) {
	cases := []struct {
		in       string
		wantBase string
		wantTone int
	}{
		{"pīn", "pin", 1},
		{"yīn", "yin", 1},
		{"sōu", "sou", 1},
		{"de", "de", 5},
		{"lǜ", "lv", 4},
	}
	for _, c := range cases {
		base, tone := extractTone(c.in)
		if base != c.wantBase || tone != c.wantTone {
			t.Errorf("extractTone(%q) = (%q, %d), want (%q, %d)", c.in, base, tone, c.wantBase, c.wantTone)
		}
	}
}
