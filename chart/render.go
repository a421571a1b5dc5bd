package chart

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"strings"

	"daycircle"
	"daycircle/capture"
	"daycircle/result"
)

// Output formats supported by Render.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Options configures a render.
type Options struct {
	// FontPath optionally names a font file to embed in the chart.
	FontPath string

	// Format selects the output encoding; empty defaults to SVG.
	Format string
}

// Chart geometry, in pixels. The dial occupies the upper square; the legend
// grows the canvas downward one row per distinct event name.
const (
	chartWidth   = 800.0
	dialCenterX  = 400.0
	dialCenterY  = 400.0
	dialRadius   = 250.0
	labelRadius  = 275.0
	arcRadius    = 150.0
	arcStroke    = 40.0
	markerLength = 250.0
	markerStroke = 5.0
	legendTop    = 710.0
	legendRow    = 26.0
)

// Render draws data as a radial 24-hour chart and returns the encoded image
// buffer. Range events are thick arcs inside the dial, marker events are
// radial lines, and every distinct event name gets a legend row in
// first-seen order (ranges before markers). The colours mapping wins over
// the built-in fallback palettes. PNG output rasterizes the SVG through
// headless Chromium, so ctx should carry a deadline the caller is happy
// waiting out.
func Render(ctx context.Context, data GraphData, colours *daycircle.ColourMap, opts Options) result.Result[[]byte] {
	return result.Guard(nil, func() ([]byte, error) {
		format := opts.Format
		if format == "" {
			format = FormatSVG
		}
		if format != FormatSVG && format != FormatPNG {
			return nil, daycircle.NewError(daycircle.KindRender, "unsupported output format: %s", format)
		}

		svg, height, err := renderSVG(data, colours, opts.FontPath)
		if err != nil {
			return nil, err
		}

		if format == FormatSVG {
			return svg, nil
		}

		png, err := capture.PNG(ctx, svg, int(chartWidth), height)
		if err != nil {
			return nil, daycircle.NewError(daycircle.KindRender, "chromium capture: %v", err)
		}
		return png, nil
	})
}

type legendEntry struct {
	name   string
	colour string
}

func renderSVG(data GraphData, colours *daycircle.ColourMap, fontPath string) (svg []byte, height int, err error) {
	var ranges []daycircle.EventRange
	var markers []daycircle.EventMarker
	for _, ev := range data.Events {
		switch e := ev.(type) {
		case daycircle.EventRange:
			ranges = append(ranges, e)
		case daycircle.EventMarker:
			markers = append(markers, e)
		}
	}

	// Every event gets its own positional fallback colour; the legend is
	// deduped by name, keeping first-seen position but the latest colour.
	var legend []legendEntry
	position := map[string]int{}
	upsertLegend := func(name, colour string) {
		if i, ok := position[name]; ok {
			legend[i].colour = colour
			return
		}
		position[name] = len(legend)
		legend = append(legend, legendEntry{name: name, colour: colour})
	}

	rangeColours := make([]string, len(ranges))
	for i, e := range ranges {
		rangeColours[i] = eventColour(colours, e.Name, rangeFallback, i)
		upsertLegend(e.Name, rangeColours[i])
	}
	markerColours := make([]string, len(markers))
	for i, e := range markers {
		markerColours[i] = eventColour(colours, e.Name, markerFallback, i)
		upsertLegend(e.Name, markerColours[i])
	}

	// legend rows are counted up front so the canvas height is known before
	// the <svg> element is written
	height = int(legendTop)
	if len(legend) > 0 {
		height = int(legendTop + legendRow*float64(len(legend)) + 24)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		int(chartWidth), height, int(chartWidth), height)

	family := "sans-serif"
	if fontPath != "" {
		face, ferr := fontFace(fontPath)
		if ferr != nil {
			return nil, 0, ferr
		}
		family = "daycircle"
		fmt.Fprintf(&sb, "<defs><style>%s</style></defs>\n", face)
	}

	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", int(chartWidth), height)

	writeDial(&sb)
	for i, e := range ranges {
		writeRangeArc(&sb, e, rangeColours[i])
	}
	for i, e := range markers {
		writeMarkerLine(&sb, e, markerColours[i])
	}
	writeHourLabels(&sb, family)
	writeLegend(&sb, legend, family)

	sb.WriteString("</svg>\n")
	return []byte(sb.String()), height, nil
}

func eventColour(colours *daycircle.ColourMap, name string, fallback []string, index int) string {
	if c, ok := colours.Get(name); ok {
		return c.String()
	}
	return fallback[index%len(fallback)]
}

// writeDial fills the 24 hour wedges. The wedge for hour h spans the 15
// degrees trailing TimeToDegrees(h:00), so wedge boundaries land exactly on
// whole-hour angles.
func writeDial(sb *strings.Builder) {
	palette := hourPalette()
	for h := 0; h < 24; h++ {
		from := TimeToDegrees(daycircle.Time{Hour: h})
		x1, y1 := polar(dialRadius, from)
		x2, y2 := polar(dialRadius, from-15)
		fmt.Fprintf(sb,
			`<path d="M %.1f %.1f L %.2f %.2f A %.1f %.1f 0 0 1 %.2f %.2f Z" fill="%s"/>`+"\n",
			dialCenterX, dialCenterY, x1, y1, dialRadius, dialRadius, x2, y2, palette[h])
	}
}

// writeRangeArc strokes an arc from the range's end angle counterclockwise
// to its start angle, exactly the sweep the angle mapper implies. A range
// with reversed endpoints keeps its reversed sweep; nothing here reorders
// it.
func writeRangeArc(sb *strings.Builder, e daycircle.EventRange, colour string) {
	startAngle := TimeToDegrees(e.Start)
	endAngle := TimeToDegrees(e.End)

	sweep := math.Mod(startAngle-endAngle, 360)
	if sweep < 0 {
		sweep += 360
	}
	largeArc := 0
	if sweep > 180 {
		largeArc = 1
	}

	x1, y1 := polar(arcRadius, endAngle)
	x2, y2 := polar(arcRadius, startAngle)
	fmt.Fprintf(sb,
		`<path d="M %.2f %.2f A %.1f %.1f 0 %d 0 %.2f %.2f" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="butt"/>`+"\n",
		x1, y1, arcRadius, arcRadius, largeArc, x2, y2, colour, arcStroke)
}

func writeMarkerLine(sb *strings.Builder, e daycircle.EventMarker, colour string) {
	x, y := polar(markerLength, TimeToDegrees(e.Time))
	fmt.Fprintf(sb,
		`<line x1="%.1f" y1="%.1f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		dialCenterX, dialCenterY, x, y, colour, markerStroke)
}

func writeHourLabels(sb *strings.Builder, family string) {
	for h := 0; h < 24; h++ {
		mid := TimeToDegrees(daycircle.Time{Hour: h}) - 7.5
		x, y := polar(labelRadius, mid)
		fmt.Fprintf(sb,
			`<text x="%.2f" y="%.2f" font-family="%s" font-size="16" text-anchor="middle" dominant-baseline="middle">%d</text>`+"\n",
			x, y, family, h)
	}
}

func writeLegend(sb *strings.Builder, legend []legendEntry, family string) {
	for i, entry := range legend {
		y := legendTop + legendRow*float64(i)
		fmt.Fprintf(sb,
			`<rect x="%.1f" y="%.1f" width="14" height="14" rx="3" fill="%s"/>`+"\n",
			dialCenterX-100, y, entry.colour)
		fmt.Fprintf(sb,
			`<text x="%.1f" y="%.1f" font-family="%s" font-size="16" dominant-baseline="middle">%s</text>`+"\n",
			dialCenterX-78, y+8, family, escapeText(entry.name))
	}
}

// polar converts a math-convention angle (degrees, counterclockwise from
// east) into canvas coordinates around the dial center. The y axis flips
// because SVG grows downward.
func polar(radius, deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return dialCenterX + radius*math.Cos(rad), dialCenterY - radius*math.Sin(rad)
}

func fontFace(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", daycircle.NewError(daycircle.KindRender, "font file: %v", err)
	}
	return fmt.Sprintf("@font-face{font-family:'daycircle';src:url(data:font/ttf;base64,%s);}",
		base64.StdEncoding.EncodeToString(b)), nil
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}
