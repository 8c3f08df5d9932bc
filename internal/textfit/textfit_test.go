package textfit

import (
	"reflect"
	"strings"
	"testing"
)

var helv = Font{Family: "Helvetica"}

func TestWrapEmptyInput(t *testing.T) {
	m := RuneMeasurer{}
	for _, in := range []string{"", "   ", "\t\n"} {
		lines := Wrap(m, in, helv, 10, 100)
		if !reflect.DeepEqual(lines, []string{""}) {
			t.Fatalf("Wrap(%q) = %v, want one empty line", in, lines)
		}
	}
}

func TestWrapNoLineExceedsWidth(t *testing.T) {
	m := RuneMeasurer{}
	const size, maxW = 10.0, 80.0 // 16 runes per line at factor 0.5

	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"one",
		"word word word word word word word word",
		strings.Repeat("x", 100), // single over-wide word, hard-split
	}
	for _, text := range texts {
		for _, line := range Wrap(m, text, helv, size, maxW) {
			if w := m.TextWidth(line, helv, size); w > maxW {
				t.Errorf("line %q measures %.1f > %.1f", line, w, maxW)
			}
		}
	}
}

func TestWrapHardSplitKeepsEveryRune(t *testing.T) {
	m := RuneMeasurer{}
	word := strings.Repeat("ab", 40)
	lines := Wrap(m, word, helv, 10, 50)
	if len(lines) < 2 {
		t.Fatalf("expected the word to split, got %v", lines)
	}
	if joined := strings.Join(lines, ""); joined != word {
		t.Fatalf("hard split lost characters: %q", joined)
	}
}

func TestWrapOverWideSingleRune(t *testing.T) {
	m := RuneMeasurer{}
	// maxWidth narrower than one rune: each rune becomes its own line.
	lines := Wrap(m, "abc", helv, 10, 1)
	if len(lines) != 3 {
		t.Fatalf("expected 3 one-rune lines, got %v", lines)
	}
}

func TestFitParagraphShrinksToFit(t *testing.T) {
	m := RuneMeasurer{}
	text := strings.Repeat("alpha beta ", 8)

	size, lines, leading := FitParagraph(m, text, helv, 120, 40, 12, 7, 1.25)
	if size > 12 || size < 7 {
		t.Fatalf("size %.1f out of [7,12]", size)
	}
	if leading != size*1.25 {
		t.Fatalf("leading %.2f != size*mult %.2f", leading, size*1.25)
	}
	if size > 7 && leading*float64(len(lines)) > 40 {
		t.Fatalf("chosen size %.1f still overflows: %d lines * %.2f leading", size, len(lines), leading)
	}
}

func TestFitParagraphNeverFails(t *testing.T) {
	m := RuneMeasurer{}
	// Impossible budget: must degrade to min size with overflow, not error.
	size, lines, _ := FitParagraph(m, strings.Repeat("overflow ", 50), helv, 40, 5, 11, 7, 1.25)
	if size != 7 {
		t.Fatalf("expected min size 7, got %.1f", size)
	}
	if len(lines) == 0 {
		t.Fatal("expected wrapped lines even under overflow")
	}
}

func TestFitParagraphDeterministic(t *testing.T) {
	m := RuneMeasurer{}
	text := "a stable paragraph of moderate length for fitting"
	s1, l1, lead1 := FitParagraph(m, text, helv, 90, 60, 11, 7, 1.25)
	s2, l2, lead2 := FitParagraph(m, text, helv, 90, 60, 11, 7, 1.25)
	if s1 != s2 || lead1 != lead2 || !reflect.DeepEqual(l1, l2) {
		t.Fatal("FitParagraph is not deterministic for identical inputs")
	}
}

func TestFitParagraphEmptyText(t *testing.T) {
	m := RuneMeasurer{}
	size, lines, _ := FitParagraph(m, "  ", helv, 100, 100, 11, 7, 1.25)
	if size != 11 || !reflect.DeepEqual(lines, []string{""}) {
		t.Fatalf("blank text: size=%.1f lines=%v", size, lines)
	}
}

func TestEllipsisFit(t *testing.T) {
	m := RuneMeasurer{}
	const size = 10.0 // 5pt per rune

	// Already fits: unchanged, no ellipsis.
	if got := EllipsisFit(m, "short", helv, size, 100); got != "short" {
		t.Fatalf("fitting string changed: %q", got)
	}

	// Needs truncation: result fits and ends with the ellipsis.
	got := EllipsisFit(m, "a very long strapline that cannot fit", helv, size, 60)
	if !strings.HasSuffix(got, Ellipsis) {
		t.Fatalf("truncated string %q lacks ellipsis", got)
	}
	if w := m.TextWidth(got, helv, size); w > 60 {
		t.Fatalf("truncated string measures %.1f > 60", w)
	}

	// Not even the ellipsis fits: empty string.
	if got := EllipsisFit(m, "anything", helv, size, 2); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestFontBold(t *testing.T) {
	if f := helv.Bold(); f.Style != "B" {
		t.Fatalf("Bold style = %q", f.Style)
	}
	if f := (Font{Family: "Times", Style: "B"}).Bold(); f.Style != "B" {
		t.Fatalf("double-bolding changed style to %q", f.Style)
	}
}
