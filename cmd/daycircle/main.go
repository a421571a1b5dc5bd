package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"daycircle"
	"daycircle/chart"
	"daycircle/config"
	"daycircle/logging"
	"daycircle/publish"
	"daycircle/watcher"
)

const helpMsg = `
Usage: daycircle [flags] <file> [<file> ...]

Charts a day of timed events from daycircle plaintext files onto a 24-hour
radial dial.

Valid flags:
  --config
    Path to a yaml config file (default .daycircle.yaml).
  --colours
    Comma-separated list of colour-only files merged into the chart.
  --format
    Output format: svg or png.
  --font
    Path to a font file to embed in the chart.
  --out
    Output directory, or a filename override.
  --watch
    Watch a single target file and re-render on every change.

`

func main() {
	validInput, err := run()
	if err != nil {
		if !validInput {
			fmt.Print(helpMsg)
		}

		fmt.Printf("Error: %s\n", err.Error())

		os.Exit(1)
	}
}

func run() (validInput bool, err error) {
	confPath := flag.String("config", "", "Path to config file")
	coloursFlag := flag.String("colours", "", "Comma-separated colour-only files")
	formatFlag := flag.String("format", "", "Output format: svg or png")
	fontFlag := flag.String("font", "", "Path to a font file to embed")
	outFlag := flag.String("out", "", "Output directory or filename override")
	watchFlag := flag.Bool("watch", false, "Watch the target file for changes")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		logging.SetLevel(logging.LevelDebug)
	}

	conf, err := config.Load(*confPath)
	if err != nil {
		return false, fmt.Errorf("config.Load: %w", err)
	}

	targets := flag.Args()
	if len(targets) == 0 {
		return false, fmt.Errorf("no target files given")
	}

	p, err := newPipeline(conf, *formatFlag, *fontFlag, *outFlag)
	if err != nil {
		return false, fmt.Errorf("newPipeline: %w", err)
	}

	colourFiles := conf.Colours
	if *coloursFlag != "" {
		colourFiles = append(colourFiles, strings.Split(*coloursFlag, ",")...)
	}
	if err := p.loadColours(colourFiles); err != nil {
		return true, fmt.Errorf("loadColours: %w", err)
	}

	if *watchFlag {
		if len(targets) != 1 {
			return false, fmt.Errorf("watch mode takes exactly one target file")
		}

		sub, err := watcher.NewSubscriber(targets[0])
		if err != nil {
			return false, fmt.Errorf("watcher.NewSubscriber: %w", err)
		}

		return true, sub.Subscribe(p)
	}

	return true, p.runOnce(targets)
}

type pipeline struct {
	format    string
	font      string
	out       string
	colours   *daycircle.ColourMap
	publisher *publish.Client
}

func newPipeline(conf *config.Config, format, font, out string) (*pipeline, error) {
	p := &pipeline{
		format:  format,
		font:    font,
		out:     out,
		colours: daycircle.NewColourMap(),
	}

	// flags win over config
	if conf.Output != nil {
		if p.format == "" {
			p.format = conf.Output.Format
		}
		if p.out == "" {
			p.out = conf.Output.Dir
		}
	}
	if p.format == "" {
		p.format = chart.FormatSVG
	}
	if p.font == "" {
		p.font = conf.Font
	}

	if conf.Publish != nil {
		client, err := publish.NewClient(
			conf.Publish.TokenURL,
			conf.Publish.ClientID,
			conf.Publish.ClientSecret,
			conf.Publish.UploadURL,
		)
		if err != nil {
			return nil, fmt.Errorf("publish.NewClient: %w", err)
		}
		p.publisher = client
	}

	return p, nil
}

// loadColours reads colour-only files into the pipeline's base colour map.
// They parse with the colour-file flag set, so a missing day line is fine.
func (p *pipeline) loadColours(paths []string) error {
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		parsed := daycircle.Parse(string(b), filepath.Base(path), true)
		if !parsed.IsOK() {
			logging.Warn("colour file skipped", "file", path, "reason", parsed.Describe())
			continue
		}

		p.colours.Merge(parsed.Value().Colours)
	}
	return nil
}

func (p *pipeline) runOnce(targets []string) error {
	parsed := []daycircle.FileData{}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			logging.Warn("target does not exist, skipping", "file", target)
			continue
		}
		if info.IsDir() {
			logging.Warn("target is not a file, skipping", "file", target)
			continue
		}

		b, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		doc := daycircle.Parse(string(b), filepath.Base(target), false)
		if !doc.IsOK() {
			// best-effort batch: a broken document is logged and skipped,
			// not fatal
			logging.Warn("document skipped", "file", target, "reason", doc.Describe())
			continue
		}

		parsed = append(parsed, doc.Value())
	}

	return p.render(parsed)
}

func (p *pipeline) render(parsed []daycircle.FileData) error {
	data, err := chart.Assemble(parsed).Unwrap()
	if err != nil {
		return fmt.Errorf("chart.Assemble: %w", err)
	}

	// colour-file assignments first, then the document's own (document wins)
	colours := daycircle.NewColourMap()
	colours.Merge(p.colours)
	colours.Merge(data.Colours)

	ctx := context.Background()
	buf, err := chart.Render(ctx, data, colours, chart.Options{
		FontPath: p.font,
		Format:   p.format,
	}).Unwrap()
	if err != nil {
		return fmt.Errorf("chart.Render: %w", err)
	}

	filename := data.Filename(p.out, p.format)
	if err := os.WriteFile(filename, buf, 0644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	logging.Info("chart written", "file", filename)

	if p.publisher != nil {
		if err := p.publisher.Upload(ctx, filepath.Base(filename), buf); err != nil {
			return fmt.Errorf("publisher.Upload: %w", err)
		}
		logging.Info("chart published", "name", filepath.Base(filename))
	}

	return nil
}

// Receive implements watcher.Receiver: re-parse and re-render on every write
// to the watched file.
func (p *pipeline) Receive(path string, content []byte) error {
	doc := daycircle.Parse(string(content), filepath.Base(path), false)
	if !doc.IsOK() {
		logging.Warn("document not renderable", "file", path, "reason", doc.Describe())
		return nil
	}

	return p.render([]daycircle.FileData{doc.Value()})
}
