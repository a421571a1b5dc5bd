package daycircle

// ColourMap maps event names to colours while remembering first-insertion
// order. The renderer walks it in order to lay out the legend, so a plain
// map will not do. Later writes to the same name replace the colour but keep
// the original position.
type ColourMap struct {
	names   []string
	colours map[string]Colour
}

func NewColourMap() *ColourMap {
	return &ColourMap{colours: map[string]Colour{}}
}

// Set assigns a colour to name, last write wins.
func (m *ColourMap) Set(name string, colour Colour) {
	if _, seen := m.colours[name]; !seen {
		m.names = append(m.names, name)
	}
	m.colours[name] = colour
}

// Get looks up the colour for name.
func (m *ColourMap) Get(name string) (Colour, bool) {
	if m == nil {
		return Colour{}, false
	}
	colour, ok := m.colours[name]
	return colour, ok
}

// Names returns the assigned names in first-insertion order.
func (m *ColourMap) Names() []string {
	if m == nil {
		return nil
	}
	return m.names
}

func (m *ColourMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Merge copies every assignment from other into m, in other's order.
func (m *ColourMap) Merge(other *ColourMap) {
	for _, name := range other.Names() {
		colour, _ := other.Get(name)
		m.Set(name, colour)
	}
}
