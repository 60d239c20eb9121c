package runeutil

import "strings"

import "testing"

func TestIsASCII(t *testing.T) {
	if !IsASCII([]byte("hello world, this is ascii")) {
		t.Error("expected pure ASCII input to report true")
	}
	if IsASCII([]byte("pysousuo拼音")) {
		t.Error("expected non-ASCII input to report false")
	}
}

func TestNextNonASCII(t *testing.T) {
	s := "pysousuoEverything" + strings.Repeat("x", 16) + "拼"
	idx := NextNonASCII([]byte(s))
	if idx != len(s)-len("拼") {
		t.Errorf("NextNonASCII = %d, want %d", idx, len(s)-len("拼"))
	}
	if NextNonASCII([]byte("allascii")) != len("allascii") {
		t.Error("expected len(b) for all-ASCII input")
	}
}
