package textfmt

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestDescription_EmptyBody(t *testing.T) {
	got := Description("   Demo: ", "", 72, 6)
	if len(got) != 1 || got[0] != "   Demo: " {
		t.Fatalf("Description with empty body = %q, want label only", got)
	}
}

func TestDescription_ShortBodySingleLine(t *testing.T) {
	got := Description("NOTE: ", "read the manual", 72)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(got), got)
	}
	if got[0] != "NOTE: read the manual" {
		t.Errorf("line = %q", got[0])
	}
}

func TestDescription_WrapsWithinWidth(t *testing.T) {
	body := strings.Repeat("robots coordinate along shared paths ", 8)
	label := "   \x1b[1m\x1b[32mDemoFoo\x1b[0m: "

	got := Description(label, body, 72, 6)
	if len(got) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(got))
	}
	if !strings.HasPrefix(got[0], label) {
		t.Errorf("first line %q does not start with label", got[0])
	}
	for i, line := range got {
		if w := ansi.PrintableRuneWidth(line); w > 72 {
			t.Errorf("line %d is %d columns wide: %q", i, w, line)
		}
		if i > 0 && !strings.HasPrefix(line, "      ") {
			t.Errorf("line %d not indented: %q", i, line)
		}
	}
}

func TestDescription_DefaultIndentIsZero(t *testing.T) {
	body := strings.Repeat("word ", 40)
	got := Description("NOTE: ", body, 40)
	if len(got) < 2 {
		t.Fatalf("expected wrapping, got %q", got)
	}
	for _, line := range got[1:] {
		if strings.HasPrefix(line, " ") {
			t.Errorf("continuation line indented without indent argument: %q", line)
		}
	}
}

func TestDescription_PreservesWords(t *testing.T) {
	body := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda"
	got := Description("L: ", body, 20, 2)

	var words []string
	for i, line := range got {
		if i == 0 {
			line = strings.TrimPrefix(line, "L: ")
		}
		words = append(words, strings.Fields(line)...)
	}
	if strings.Join(words, " ") != body {
		t.Errorf("words changed by wrapping: %q", strings.Join(words, " "))
	}
}
