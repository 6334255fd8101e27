package layout

import (
	"strings"
	"testing"
)

func TestSizeThresholds(t *testing.T) {
	if !IsTooSmall(79, 24) || !IsTooSmall(80, 23) || IsTooSmall(80, 24) {
		t.Error("unexpected minimum size check")
	}
	if !IsCompactWidth(99) || IsCompactWidth(100) {
		t.Error("unexpected compact width check")
	}
	if !IsCompactHeight(29) || IsCompactHeight(30) {
		t.Error("unexpected compact height check")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(24); got != 18 {
		t.Errorf("expected 18, got %d", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("expected 0 for tiny terminals, got %d", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Leaderboard", "Q 3/10", 80)
	for _, want := range []string{"Quizsys", "Leaderboard", "Q 3/10"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "Back") {
		t.Errorf("footer missing hint: %q", f)
	}
}
