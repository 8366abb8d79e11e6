package sanitize

import (
	"strings"
	"testing"
)

func TestCleanStripsDenylist(t *testing.T) {
	got := Clean("<script>alert('xss')</script>Hello", 0)
	want := "scriptalert(xss)/scriptHello"
	if got != want {
		t.Fatalf("Clean: got %q, want %q", got, want)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if got := Clean("", 10); got != "" {
		t.Fatalf("Clean(\"\"): got %q", got)
	}
}

func TestCleanTruncatesBeforeFiltering(t *testing.T) {
	got := Clean(strings.Repeat("x", 2000), 5)
	if got != "xxxxx" {
		t.Fatalf("Clean: got %q", got)
	}

	// The limit applies to the raw input; characters the denylist removes
	// afterwards still count against it.
	got = Clean("<<<<<kept", 5)
	if got != "" {
		t.Fatalf("Clean: got %q, want removal of the entire truncated prefix", got)
	}
}

func TestCleanTrimsWhitespace(t *testing.T) {
	if got := Clean("  hello world  ", 0); got != "hello world" {
		t.Fatalf("Clean: got %q", got)
	}

	// Trimming happens after filtering, so stripped characters can expose
	// new surrounding whitespace.
	if got := Clean("; hello ;", 0); got != "hello" {
		t.Fatalf("Clean: got %q", got)
	}
}

func TestCleanPreservesOrder(t *testing.T) {
	if got := Clean("a<b>c\"d'e&f;g", 0); got != "abcdefg" {
		t.Fatalf("Clean: got %q", got)
	}
}

func TestCleanCountsRunes(t *testing.T) {
	// Four three-byte runes with limit 3 keeps exactly three runes.
	if got := Clean("日本語字", 3); got != "日本語" {
		t.Fatalf("Clean: got %q", got)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("abc"); got != "****" {
		t.Fatalf("MaskSecret: got %q", got)
	}
	if got := MaskSecret("supersecret"); got != "su*******et" {
		t.Fatalf("MaskSecret: got %q", got)
	}
}
