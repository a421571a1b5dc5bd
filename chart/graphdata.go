// Package chart turns parsed daycircle documents into the 24-hour radial
// chart: assembly of the render-ready data, the time-to-angle mapping, and
// the SVG/PNG renderer itself.
package chart

import (
	"os"
	"path/filepath"

	"daycircle"
	"daycircle/result"
)

// GraphData is the render-ready form of one or more daycircle documents.
// DateEnd is reserved for multi-day timelines and is never set by Assemble
// today.
type GraphData struct {
	Date    daycircle.Date
	DateEnd *daycircle.Date
	Colours *daycircle.ColourMap
	Events  []daycircle.Event
}

// Assemble merges parsed documents into GraphData. Exactly one target is
// supported: zero targets is invalid input, and more than one is an
// acknowledged future capability, not a silent merge.
func Assemble(targets []daycircle.FileData) result.Result[GraphData] {
	return result.Guard(GraphData{}, func() (GraphData, error) {
		switch len(targets) {
		case 0:
			return GraphData{}, daycircle.NewError(daycircle.KindNoTargets, "no targets provided")

		case 1:
			target := targets[0]
			return GraphData{
				Date:    target.Day,
				DateEnd: nil,
				Colours: target.Colours,
				Events:  target.Events,
			}, nil
		}

		return GraphData{}, daycircle.NewError(daycircle.KindMultiTarget, "multiple targets not yet supported")
	})
}

// Filename derives the output filename for this graph. With no override the
// name is "<date>[<date_end>].<format>". An override naming an existing
// directory keeps the derived name inside that directory; any other override
// replaces the name outright (its parent directory is honored when it
// exists).
func (g GraphData) Filename(nameOverride, format string) string {
	workingDir := ""
	filename := "graph." + format
	override := false

	if nameOverride != "" {
		if info, err := os.Stat(nameOverride); err == nil && info.IsDir() {
			workingDir = nameOverride
		} else {
			if parent := filepath.Dir(nameOverride); parent != "." {
				if pinfo, err := os.Stat(parent); err == nil && pinfo.IsDir() {
					workingDir = parent
				}
			}
			filename = filepath.Base(nameOverride) + "." + format
			override = true
		}
	}

	if !override {
		end := ""
		if g.DateEnd != nil {
			end = g.DateEnd.String()
		}
		filename = g.Date.String() + end + "." + format
	}

	return filepath.Join(workingDir, filename)
}
