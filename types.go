// Package daycircle parses the daycircle plaintext format: one day of timed
// events (point markers and ranges) plus optional per-event colour
// assignments, one record per line.
//
//	day      01-02-2023
//	#sleep   1d2630
//	@wake    0630
//	sleep    2200-0600
package daycircle

import (
	"fmt"
	"strconv"
	"strings"

	"daycircle/result"
)

// Date is a calendar date. No calendar-range validation is performed; any
// numeric day/month/year groups decode.
type Date struct {
	Day   int
	Month int
	Year  int
}

// ParseDate decodes a dd-mm-yyyy string. The groups only need to be numeric,
// not calendar-valid.
func ParseDate(s string) result.Result[Date] {
	parts := strings.Split(s, "-")
	if len(parts) == 3 && allDigits(parts[0]) && allDigits(parts[1]) && allDigits(parts[2]) {
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		return result.OK(Date{Day: day, Month: month, Year: year})
	}

	return result.Fail(Date{}, NewError(KindInvalidDate, "invalid date format: %s", s))
}

func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// IsZero reports whether d is the placeholder date used by colour-only
// documents.
func (d Date) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

// Colour is a 6-digit RGB hex code without the leading '#'.
type Colour struct {
	Code string
}

// ParseColour decodes a 6-character hex colour code.
func ParseColour(s string) result.Result[Colour] {
	if len(s) == 6 && allHexDigits(s) {
		return result.OK(Colour{Code: s})
	}

	return result.Fail(Colour{}, NewError(KindInvalidColor, "invalid colour code: %s", s))
}

func (c Colour) String() string {
	return "#" + c.Code
}

// Time is a wall-clock time. Hour and minute are carried as decoded and are
// not range-checked; downstream angle math normalizes with modulo.
type Time struct {
	Hour   int
	Minute int
}

// ParseTime decodes a 4-digit HHMM string. The digits are not bounds-checked
// beyond length and numeric-ness, so "9975" decodes to 99h75m.
func ParseTime(s string) result.Result[Time] {
	if len(s) == 4 && allDigits(s) {
		hour, _ := strconv.Atoi(s[:2])
		minute, _ := strconv.Atoi(s[2:])
		return result.OK(Time{Hour: hour, Minute: minute})
	}

	return result.Fail(Time{}, NewError(KindInvalidTime, "invalid time format: %s", s))
}

func (t Time) String() string {
	return fmt.Sprintf("%02d%02d", t.Hour, t.Minute)
}

// Event is either an EventMarker or an EventRange.
type Event interface {
	EventName() string
}

// EventMarker is an instantaneous named event. Two markers may share a name.
type EventMarker struct {
	Name string
	Time Time
}

func (e EventMarker) EventName() string { return e.Name }

// EventRange is a named duration. Start and end are kept exactly as decoded:
// no ordering is enforced between them, so a range crossing midnight keeps
// its numerically-reversed endpoints.
type EventRange struct {
	Name  string
	Start Time
	End   Time
}

func (e EventRange) EventName() string { return e.Name }

// FileData is one parsed daycircle document.
type FileData struct {
	Day     Date
	Colours *ColourMap
	Events  []Event
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
