// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package preview implements the --preview flag: a terminal rendering of
// an extraction's paths and text, each path tinted by a color drawn from
// go-colorful's perceptually-even palette generator, so adjacent paths
// are visually distinguishable even in a 16-color terminal. Text spans are
// positioned with go-runewidth, since a Grid column (a Unicode scalar) and
// a terminal column (a display cell) aren't the same thing once a wide
// glyph is involved.
package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/a2s-project/asciisvg"
)

// Show opens an alternate-screen terminal view of ex over a grid sized
// width x height, coloring each path distinctly, and blocks until the
// user presses q, Escape, or Ctrl-C.
func Show(width, height int, ex *asciitosvg.Extraction) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: opening terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	palette := pathPalette(len(ex.Paths))
	screen.Clear()
	drawPaths(screen, ex.Paths, palette)
	drawTexts(screen, ex.Texts)
	drawStatusLine(screen, width, height, len(ex.Paths), len(ex.Texts))
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// pathPalette generates n perceptually-distinct colors using go-colorful's
// warm/happy palette, falling back to plain white if generation fails
// (it only fails for absurdly large n).
func pathPalette(n int) []tcell.Color {
	if n == 0 {
		return nil
	}
	colors, err := colorful.HappyPalette(n)
	if err != nil {
		out := make([]tcell.Color, n)
		for i := range out {
			out[i] = tcell.ColorWhite
		}
		return out
	}
	out := make([]tcell.Color, n)
	for i, c := range colors {
		r, g, b := c.RGB255()
		out[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return out
}

func drawPaths(screen tcell.Screen, paths []*asciitosvg.Path, palette []tcell.Color) {
	for i, p := range paths {
		style := tcell.StyleDefault.Foreground(palette[i%len(palette)]).Bold(true)
		for _, s := range p.Steps {
			screen.SetContent(s.Pt.Col-1, s.Pt.Row-1, s.Char, nil, style)
		}
	}
}

// drawTexts writes each Text span starting at its Grid anchor. A Grid
// column is a Unicode scalar, not a terminal column, so a wide glyph
// (CJK, some box-drawing characters) inside a span must advance the
// on-screen cursor by its actual display width or the next rune in the
// same span would be overdrawn on top of it.
func drawTexts(screen tcell.Screen, texts []*asciitosvg.Text) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for _, t := range texts {
		col := t.Anchor.Col - 1
		for _, r := range t.Value {
			screen.SetContent(col, t.Anchor.Row-1, r, nil, style)
			col += runewidth.RuneWidth(r)
		}
	}
}

func drawStatusLine(screen tcell.Screen, width, height, paths, texts int) {
	msg := fmt.Sprintf(" %d paths, %d text spans -- press q to exit ", paths, texts)
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(msg) {
		screen.SetContent(i, height+1, r, nil, style)
	}
	_ = width
}
