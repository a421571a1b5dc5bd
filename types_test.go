package daycircle

import (
	"strings"
	"testing"
)

func TestDateRoundTrip(t *testing.T) {
	d := Date{Day: 1, Month: 2, Year: 2023}

	if d.String() != "01-02-2023" {
		t.Fatalf("wrong canonical form: %q", d.String())
	}

	r := ParseDate(d.String())
	if !r.IsOK() {
		t.Fatalf("round trip failed: %s", r.Describe())
	}
	if r.Value() != d {
		t.Errorf("round trip mismatch: %+v", r.Value())
	}
}

func TestParseDateNarrowGroups(t *testing.T) {
	// any numeric digit groups parse; calendar validity is not checked
	r := ParseDate("1-2-23")
	if !r.IsOK() {
		t.Fatalf("unexpected failure: %s", r.Describe())
	}
	if r.Value() != (Date{Day: 1, Month: 2, Year: 23}) {
		t.Errorf("wrong date: %+v", r.Value())
	}
	if r.Value().String() != "01-02-0023" {
		t.Errorf("wrong canonical form: %q", r.Value().String())
	}

	if r := ParseDate("32-13-2023"); !r.IsOK() {
		t.Errorf("out-of-range calendar values must still decode: %s", r.Describe())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "01-02", "01-02-2023-04", "aa-bb-cccc", "01/02/2023"} {
		r := ParseDate(input)
		if r.IsOK() {
			t.Errorf("expected %q to be rejected", input)
			continue
		}
		if !strings.Contains(r.Describe(), "invalid date format: "+input) {
			t.Errorf("wrong message for %q: %q", input, r.Describe())
		}
	}
}

func TestColourRoundTrip(t *testing.T) {
	r := ParseColour("4f454B")
	if !r.IsOK() {
		t.Fatalf("unexpected failure: %s", r.Describe())
	}
	if r.Value().String() != "#4f454B" {
		t.Errorf("wrong canonical form: %q", r.Value().String())
	}
}

func TestParseColourInvalid(t *testing.T) {
	for _, input := range []string{"", "fff", "4f454bb", "zzzzzz", "#4f454"} {
		r := ParseColour(input)
		if r.IsOK() {
			t.Errorf("expected %q to be rejected", input)
			continue
		}
		if !strings.Contains(r.Describe(), "invalid colour code: "+input) {
			t.Errorf("wrong message for %q: %q", input, r.Describe())
		}
	}
}

func TestTimeRoundTrip(t *testing.T) {
	r := ParseTime("0630")
	if !r.IsOK() {
		t.Fatalf("unexpected failure: %s", r.Describe())
	}
	if r.Value() != (Time{Hour: 6, Minute: 30}) {
		t.Errorf("wrong time: %+v", r.Value())
	}
	if r.Value().String() != "0630" {
		t.Errorf("wrong canonical form: %q", r.Value().String())
	}
}

func TestParseTimePermissive(t *testing.T) {
	// 4 numeric digits is the whole contract; 99h75m decodes fine
	r := ParseTime("9975")
	if !r.IsOK() {
		t.Fatalf("unexpected failure: %s", r.Describe())
	}
	if r.Value() != (Time{Hour: 99, Minute: 75}) {
		t.Errorf("wrong time: %+v", r.Value())
	}
}

func TestParseTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "063", "06300", "06a0", "06:30"} {
		r := ParseTime(input)
		if r.IsOK() {
			t.Errorf("expected %q to be rejected", input)
			continue
		}
		if !strings.Contains(r.Describe(), "invalid time format: "+input) {
			t.Errorf("wrong message for %q: %q", input, r.Describe())
		}
	}
}

func TestColourMap(t *testing.T) {
	m := NewColourMap()
	m.Set("sleep", Colour{Code: "111111"})
	m.Set("work", Colour{Code: "222222"})
	m.Set("sleep", Colour{Code: "333333"})

	if m.Len() != 2 {
		t.Fatalf("wrong length: %d", m.Len())
	}

	names := m.Names()
	if names[0] != "sleep" || names[1] != "work" {
		t.Errorf("insertion order lost: %v", names)
	}

	other := NewColourMap()
	other.Set("gym", Colour{Code: "444444"})
	other.Set("work", Colour{Code: "555555"})
	m.Merge(other)

	if m.Len() != 3 || m.Names()[2] != "gym" {
		t.Errorf("wrong merge order: %v", m.Names())
	}
	if c, _ := m.Get("work"); c.Code != "555555" {
		t.Errorf("merge must overwrite, got %+v", c)
	}

	var nilMap *ColourMap
	if nilMap.Len() != 0 || nilMap.Names() != nil {
		t.Error("nil map must read as empty")
	}
	if _, ok := nilMap.Get("sleep"); ok {
		t.Error("nil map lookup must miss")
	}
}
