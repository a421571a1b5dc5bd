package daycircle

import (
	"fmt"
	"strings"

	"daycircle/result"
)

type keyType int

const (
	keyUnknown keyType = iota
	keyDay
	keyMarker
	keyColour
	keyRange
)

const (
	dayKeyword         = "day"
	markerPrefix       = "@"
	colourPrefix       = "#"
	colourPrefixWord   = "colour"
	missingDayMetadata = "missing day metadata"
)

// classifyLine splits a trimmed line into key and value and decides which
// record it is. Precedence matters: the day keyword first, then the marker
// and colour prefixes, and any other keyed line defaults to a time range.
// A line with no value classifies as unknown and is ignored entirely.
func classifyLine(line string) (kt keyType, key, value string) {
	key, value, ok := splitKeyValue(strings.TrimSpace(line))
	if !ok {
		return keyUnknown, "", ""
	}

	switch {
	case key == dayKeyword:
		return keyDay, key, value
	case strings.HasPrefix(key, markerPrefix):
		return keyMarker, strings.TrimLeft(key, markerPrefix), value
	case strings.HasPrefix(key, colourPrefix):
		return keyColour, strings.TrimLeft(key, colourPrefix), value
	case strings.HasPrefix(key, colourPrefixWord):
		return keyColour, strings.TrimPrefix(key, colourPrefixWord), value
	default:
		return keyRange, key, value
	}
}

// splitKeyValue splits on the first run of whitespace.
func splitKeyValue(line string) (key, value string, ok bool) {
	cut := strings.IndexFunc(line, isSpace)
	if cut < 0 {
		return "", "", false
	}
	return line[:cut], strings.TrimLeftFunc(line[cut:], isSpace), true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// parseTimeRange decodes a "HHMM-HHMM" value. Both times must decode; their
// ordering is not checked.
func parseTimeRange(value string) (start, end Time, ok bool) {
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return Time{}, Time{}, false
	}

	startResult := ParseTime(parts[0])
	endResult := ParseTime(parts[1])
	if !startResult.IsOK() || !endResult.IsOK() {
		return Time{}, Time{}, false
	}

	return startResult.Value(), endResult.Value(), true
}

// Parse scans a daycircle document line by line. Lines that fail to decode
// are dropped without surfacing an error; the parse is best-effort by
// design. If no day line was seen and colourFile is false, Parse fails with
// missing-day-metadata, but the returned Result still carries everything
// that was collected so the caller can decide what to do with it.
func Parse(content, filename string, colourFile bool) result.Result[FileData] {
	var day Date
	haveDay := false
	colours := NewColourMap()
	events := []Event{}

	for _, line := range strings.Split(content, "\n") {
		kt, key, value := classifyLine(line)

		switch kt {
		case keyDay:
			if r := ParseDate(value); r.IsOK() {
				day = r.Value()
				haveDay = true
			}

		case keyColour:
			if r := ParseColour(value); r.IsOK() {
				colours.Set(key, r.Value())
			}

		case keyMarker:
			if r := ParseTime(value); r.IsOK() {
				events = append(events, EventMarker{Name: key, Time: r.Value()})
			}

		case keyRange:
			if start, end, ok := parseTimeRange(value); ok {
				events = append(events, EventRange{Name: key, Start: start, End: end})
			}
		}
	}

	data := FileData{Day: day, Colours: colours, Events: events}

	if !haveDay && !colourFile {
		msg := missingDayMetadata
		if filename != "" {
			msg += fmt.Sprintf(" for file '%s'", filename)
		}
		return result.Fail(data, NewError(KindMissingDay, "%s", msg))
	}

	return result.OK(data)
}
