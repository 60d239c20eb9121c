package glob

import (
	"testing"

	"github.com/ibmatcher/ibmatcher/config"
)

func TestLiteralGlobMatchesWholeString(t *testing.T) {
	prog, err := Compile("hello.txt", DefaultOptions(), config.Default())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !prog.IsMatch([]rune("hello.txt")) {
		t.Errorf("expected exact match")
	}
	if prog.IsMatch([]rune("hello.txt.bak")) {
		t.Errorf("expected no match for trailing extra content under wildcard anchoring")
	}
}

func TestStarExcludesSeparator(t *testing.T) {
	prog, err := Compile("a*b", Options{Separator: '/', Anchor: Strict}, config.Default())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !prog.IsMatch([]rune("axxxb")) {
		t.Errorf("expected a*b to match axxxb")
	}
	if prog.IsMatch([]rune("ax/xb")) {
		t.Errorf("expected a*b not to cross a separator")
	}
}

func TestDoubleStarCrossesSeparator(t *testing.T) {
	prog, err := Compile("a**b", Options{Separator: '/', Anchor: Strict}, config.Default())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !prog.IsMatch([]rune("ax/xb")) {
		t.Errorf("expected a**b to cross a separator")
	}
}

func TestCharClass(t *testing.T) {
	prog, err := Compile("[a-c]og", Options{Separator: '/', Anchor: Strict}, config.Default())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !prog.IsMatch([]rune("cog")) || prog.IsMatch([]rune("dog")) {
		t.Errorf("character class [a-c] misbehaved")
	}
}

func TestNegatedCharClass(t *testing.T) {
	prog, err := Compile("[^a-c]og", Options{Separator: '/', Anchor: Strict}, config.Default())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if prog.IsMatch([]rune("cog")) || !prog.IsMatch([]rune("dog")) {
		t.Errorf("negated character class misbehaved")
	}
}

func TestGlobWithRomajiAcrossPath(t *testing.T) {
	cfg := config.New().WithPinyin(false).WithRomaji(true).Build()
	prog, err := Compile("wifi**miku", Options{Separator: '\\', Anchor: PathAnchors}, cfg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	haystack := `C:\Windows\System32\ja-jp\WiFiTask\ミク.exe`
	if !prog.IsMatch([]rune(haystack)) {
		t.Errorf("expected wifi**miku to match %q via romaji transliteration of ミク", haystack)
	}
}
