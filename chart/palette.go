package chart

import (
	"fmt"
	"strconv"
)

// hourPalette returns the 24 dial wedge colours, one per hour, following a
// Singaporean sun cycle: night blending through dawn, daylight blues, and
// dusk folding back into night.
func hourPalette() []string {
	palette := make([]string, 0, 24)

	palette = append(palette, blendHex("#0e0c09", "#080605", 5)...) // 0000-0400
	palette = append(palette, "#4f454b", "#f6b697", "#d5bd9e")      // 0500, 0600, 0700
	palette = append(palette, blendHex("#b2bbaf", "#7c96a5", 5)...) // 0800-1200
	for i := 0; i < 5; i++ {                                        // 1300-1700
		palette = append(palette, "#7c96a5")
	}
	palette = append(palette, blendHex("#272f42", "#080605", 3)...) // 1800-2000
	palette = append(palette, blendHex("#080605", "#0e0c09", 3)...) // 2100-2300

	return palette
}

// rangeFallback and markerFallback colour events that have no entry in the
// colour map. Ranges get pastels, markers get saturated hues.
var rangeFallback = []string{
	"#a1c9f4", "#8de5a1", "#ff9f9b", "#d0bbff", "#fffea3", "#b9f2f0",
}

var markerFallback = []string{
	"#f77189", "#bb9832", "#50b131", "#36ada4", "#3ba3ec", "#e866f4",
}

// blendHex linearly interpolates between two hex colours, endpoints
// inclusive, producing n evenly spaced stops.
func blendHex(from, to string, n int) []string {
	fr, fg, fb := splitHex(from)
	tr, tg, tb := splitHex(to)

	stops := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		stops[i] = fmt.Sprintf("#%02x%02x%02x",
			lerpChannel(fr, tr, t),
			lerpChannel(fg, tg, t),
			lerpChannel(fb, tb, t),
		)
	}

	return stops
}

func splitHex(hex string) (r, g, b int) {
	r64, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g64, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b64, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return int(r64), int(g64), int(b64)
}

func lerpChannel(from, to int, t float64) int {
	v := float64(from) + (float64(to)-float64(from))*t
	return int(v + 0.5)
}
