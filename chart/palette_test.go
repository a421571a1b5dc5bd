package chart

import (
	"regexp"
	"testing"
)

func TestHourPalette(t *testing.T) {
	palette := hourPalette()

	if len(palette) != 24 {
		t.Fatalf("expected 24 hour colours, got %d", len(palette))
	}

	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for h, c := range palette {
		if !hexPattern.MatchString(c) {
			t.Errorf("hour %d: not a hex colour: %q", h, c)
		}
	}

	// blend endpoints and fixed stops
	anchors := map[int]string{
		0:  "#0e0c09",
		4:  "#080605",
		5:  "#4f454b",
		6:  "#f6b697",
		8:  "#b2bbaf",
		12: "#7c96a5",
		17: "#7c96a5",
		18: "#272f42",
		20: "#080605",
		23: "#0e0c09",
	}
	for h, want := range anchors {
		if palette[h] != want {
			t.Errorf("hour %d: expected %s, got %s", h, want, palette[h])
		}
	}
}

func TestBlendHex(t *testing.T) {
	stops := blendHex("#000000", "#ffffff", 3)
	expected := []string{"#000000", "#808080", "#ffffff"}

	if len(stops) != len(expected) {
		t.Fatalf("expected %d stops, got %d", len(expected), len(stops))
	}
	for i, want := range expected {
		if stops[i] != want {
			t.Errorf("stop %d: expected %s, got %s", i, want, stops[i])
		}
	}
}
