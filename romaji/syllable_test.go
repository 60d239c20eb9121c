package romaji

import "testing"

func TestGeminate(t *testing.T) {
	cases := []struct {
		in   Syllable
		want []string
	}{
		{NewSyllable("ka"), []string{"kka"}},
		{NewSyllable("chi"), []string{"tchi", "cchi"}},
		{NewSyllable("shi", "si"), []string{"sshi", "ssi"}},
		{NewSyllable("pa"), []string{"ppa"}},
	}
	for _, c := range cases {
		got := Geminate(c.in)
		if len(got.Variants) != len(c.want) {
			t.Fatalf("Geminate(%v) = %v, want %v", c.in.Variants, got.Variants, c.want)
		}
		for i := range c.want {
			if got.Variants[i] != c.want[i] {
				t.Errorf("Geminate(%v)[%d] = %q, want %q", c.in.Variants, i, got.Variants[i], c.want[i])
			}
		}
	}
}

func TestExtendLongVowel(t *testing.T) {
	got := ExtendLongVowel(NewSyllable("ko"))
	want := []string{"koo", "kō"}
	if len(got.Variants) != len(want) {
		t.Fatalf("ExtendLongVowel(ko) = %v, want %v", got.Variants, want)
	}
	for i := range want {
		if got.Variants[i] != want[i] {
			t.Errorf("ExtendLongVowel(ko)[%d] = %q, want %q", i, got.Variants[i], want[i])
		}
	}
}

func TestExtendLongVowelNonVowelUnchanged(t *testing.T) {
	s := Syllable{Variants: []string{"n"}, MoraicNasal: true}
	got := ExtendLongVowel(s)
	if len(got.Variants) != 1 || got.Variants[0] != "n" {
		t.Errorf("ExtendLongVowel(n) = %v, want unchanged", got.Variants)
	}
}
