package chart

import "daycircle"

// TimeToDegrees maps a wall-clock time to its angular position on the dial,
// in degrees. The dial is anchored at 1800: hour 18 maps to 360 rather than
// 0 so the mapping stays continuous across the wraparound. Hours step 15
// degrees counterclockwise from 270 at midnight; minutes interpolate
// linearly backward within the hour's slot.
//
// Rendered geometry is derived directly from this function, so the exact
// floating-point arithmetic below must not change.
func TimeToDegrees(t daycircle.Time) float64 {
	h := t.Hour % 24
	m := t.Minute % 60

	deg := float64(270 - (h * 15))
	if h >= 18 {
		deg += 360
	}

	return deg + (-(15 * (float64(m) / 60)))
}
