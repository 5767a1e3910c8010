// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/term"

	"github.com/a2s-project/asciisvg"
	"github.com/a2s-project/asciisvg/internal/a2slog"
	"github.com/a2s-project/asciisvg/internal/config"
	"github.com/a2s-project/asciisvg/internal/errs"
	"github.com/a2s-project/asciisvg/internal/exampledoc"
	"github.com/a2s-project/asciisvg/internal/preview"
)

const logo = `.-------------------------.
|                         |
| .---.-. .-----. .-----. |
| | .-. | +-->  | |  <--| |
| | '-' | |  <--| +-->  | |
| '---'-' '-----' '-----' |
|  ascii     2      svg   |
|                         |
'-------------------------'
`

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", logo)
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}

	in := flag.String("i", "-", `Path to input text file. If set to "-" (hyphen), stdin is used.`)
	out := flag.String("o", "-", `Path to output SVG file. If set to "-" (hyphen), stdout is used.`)
	rulesPath := flag.String("rules", "", "Path to a custom rule table file (§4.2 grammar). Overrides -table.")
	tableName := flag.String("table", "", `Built-in table to use: "demo" or "original". Defaults to the config file's choice, or "original".`)
	font := flag.String("f", "", "Font family to use in the rendered SVG.")
	gz := flag.Bool("gzip", false, "Gzip-compress the SVG output.")
	watch := flag.Bool("watch", false, "Re-render whenever the input file changes.")
	preview_ := flag.Bool("preview", false, "Show the extraction in a terminal preview instead of writing SVG.")
	cfgPath := flag.String("config", ".a2s.yaml", "Path to a YAML config file supplying defaults for the flags above.")
	verbose := flag.Bool("v", false, "Verbose (debug-level) logging.")
	flag.Parse()

	log := a2slog.New(os.Stderr, *verbose)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error("loading config", "error", err)
		os.Exit(errs.ExitUnknown)
	}
	if *tableName == "" {
		*tableName = cfg.Table
	}
	if *font == "" {
		*font = cfg.Font
	}
	if *rulesPath == "" {
		*rulesPath = cfg.Rules
	}
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if !setFlags["gzip"] {
		*gz = cfg.Gzip
	}
	if !setFlags["watch"] {
		*watch = cfg.Watch
	}
	if !setFlags["preview"] {
		*preview_ = cfg.Preview
	}

	if *in == "-" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "reading diagram from stdin (terminal attached); press Ctrl-D when done")
	}
	if *preview_ && !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Error("--preview requires an interactive terminal on stdout")
		os.Exit(errs.ExitUnknown)
	}

	table, err := loadTable(*rulesPath, *tableName)
	if err != nil {
		log.Error("loading rule table", "error", err)
		os.Exit(errs.Code(err))
	}

	run := func() error { return renderOnce(*in, *out, *font, *gz, *preview_, table, log) }

	if err := run(); err != nil {
		log.Error("render failed", "error", err)
		os.Exit(errs.Code(err))
	}

	if !*watch || *in == "-" {
		return
	}
	if err := watchAndRerun(*in, run, log); err != nil {
		log.Error("watch failed", "error", err)
		os.Exit(errs.ExitUnknown)
	}
}

func loadTable(rulesPath, tableName string) (*asciitosvg.Table, error) {
	if rulesPath != "" {
		src, err := os.ReadFile(rulesPath)
		if err != nil {
			return nil, &asciitosvg.ErrInputIO{Err: err}
		}
		return asciitosvg.ParseTable(string(src))
	}
	switch tableName {
	case "demo":
		return asciitosvg.DemoTable(), nil
	default:
		return asciitosvg.OriginalTable(), nil
	}
}

func renderOnce(in, out, font string, gz, preview_ bool, table *asciitosvg.Table, log *slog.Logger) error {
	input, err := readAll(in)
	if err != nil {
		return &asciitosvg.ErrInputIO{Err: err}
	}

	grid, err := asciitosvg.Parse(input)
	if err != nil {
		return err
	}
	log.Debug("parsed grid", "width", grid.Width, "height", grid.Height)

	finder := asciitosvg.NewFinder(grid, table)
	ex := finder.Find()
	log.Info("extraction complete", "paths", len(ex.Paths), "texts", len(ex.Texts), "warnings", len(finder.Warnings))
	errs.LogWarnings(log, finder.Warnings)

	if preview_ {
		return preview.Show(grid.Width, grid.Height, ex)
	}

	renderer := asciitosvg.NewRenderer(table)
	rendered := make([]asciitosvg.RenderedPath, 0, len(ex.Paths))
	for _, p := range ex.Paths {
		rendered = append(rendered, renderer.RenderPath(p))
	}
	errs.LogWarnings(log, renderer.Warnings)

	doc := exampledoc.New(grid.Width, grid.Height)
	doc.Font = font
	svg := doc.Assemble(rendered, ex.Texts)

	n, err := writeAll(out, svg, gz)
	if err != nil {
		return &asciitosvg.ErrInputIO{Err: err}
	}
	log.Info("wrote output", "bytes", humanize.Bytes(uint64(n)), "gzip", gz)
	return nil
}

func readAll(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeAll(path string, data []byte, gz bool) (int, error) {
	var w io.Writer = os.Stdout
	var f *os.File
	if path != "-" {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		w = f
	}
	if !gz {
		n, err := w.Write(data)
		return n, err
	}
	gzw := gzip.NewWriter(w)
	n, err := gzw.Write(data)
	if err != nil {
		return n, err
	}
	return n, gzw.Close()
}

// watchAndRerun re-invokes run every time path's containing directory
// reports a write event for it, debounced by a short quiet period so a
// burst of writes from an editor's save-then-rename dance triggers one
// render, not several.
func watchAndRerun(path string, run func() error, log *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	log.Info("watching for changes", "path", abs)
	var pending *time.Timer
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evAbs, _ := filepath.Abs(ev.Name)
			if evAbs != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(150*time.Millisecond, func() {
				if err := run(); err != nil {
					log.Warn("re-render failed", "error", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		}
	}
}
