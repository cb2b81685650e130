package layout

import (
	"strings"
	"testing"
)

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(Header{Title: "Farm Animals", Profile: "🦊 Ana", Stars: 3}, 90)
	for _, want := range []string{"SpeakUp", "Farm Animals", "Ana", "★ 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "listening") {
		t.Error("listening badge shown while idle")
	}
}

func TestRenderHeader_Listening(t *testing.T) {
	out := RenderHeader(Header{Title: "Colors", Listening: true}, 90)
	if !strings.Contains(out, "listening") {
		t.Errorf("expected listening badge:\n%s", out)
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Space", Description: "Speak"}, {Key: "L", Description: "Listen"}}, 80)
	for _, want := range []string{"Space", "Speak", "Listen"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestSizeChecks(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || IsTooSmall(MinWidth, MinHeight) {
		t.Error("IsTooSmall boundary wrong")
	}
	if !IsCompactWidth(CompactWidthThreshold-1) || IsCompactWidth(CompactWidthThreshold) {
		t.Error("IsCompactWidth boundary wrong")
	}
	if !IsCompactHeight(CompactHeightThreshold-1) || IsCompactHeight(CompactHeightThreshold) {
		t.Error("IsCompactHeight boundary wrong")
	}
}
