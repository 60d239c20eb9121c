package runeutil

import "testing"

func TestFoldRune(t *testing.T) {
	cases := []struct {
		in, want rune
	}{
		{'A', 'a'},
		{'Z', 'z'},
		{'a', 'a'},
		{'K', 'k'},
		{'Σ', 'σ'},
	}
	for _, c := range cases {
		if got := FoldRune(c.in); got != c.want {
			t.Errorf("FoldRune(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold('P', 'p') {
		t.Error("expected P and p to fold equal")
	}
	if EqualFold('P', 'q') {
		t.Error("expected P and q to not fold equal")
	}
}

func TestMatchesCasePolicy(t *testing.T) {
	if !Matches(FoldAll, 'p', 'P') {
		t.Error("FoldAll should match p against P")
	}
	if Matches(FoldLowerOnly, 'P', 'p') {
		t.Error("FoldLowerOnly should require exact match for uppercase pattern letters")
	}
	if !Matches(FoldLowerOnly, 'p', 'P') {
		t.Error("FoldLowerOnly should still fold lowercase pattern letters")
	}
	if Matches(NoFold, 'p', 'P') {
		t.Error("NoFold should never fold")
	}
}
