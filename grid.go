// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// CellStatus is the lifecycle state of a single Grid position.
type CellStatus int

const (
	// StatusContent is an unconsumed input character.
	StatusContent CellStatus = iota
	// StatusUsed is a character consumed by a Path or Text but still
	// visible, because it may be a joint other paths pass through.
	StatusUsed
	// StatusCleared is a character consumed and erased.
	StatusCleared
	// StatusPad is trailing filler added to square the grid.
	StatusPad
)

// A Cell is one grid position: its lifecycle status and the character it
// holds (space for Pad cells).
type Cell struct {
	Status CellStatus
	Char   rune
}

// footnoteLine matches a trailing attribute line: `[key]: value`.
var footnoteLine = regexp.MustCompile(`^\[([^\]\n]+)\]: (.*)$`)

// A Grid is the rectangular array of Cells parsed from input text, plus
// any free-floating attribute pairs trailing the body as footnotes.
type Grid struct {
	Width, Height int
	cells         []Cell
	Attrs         map[string]string
}

// Parse splits input into lines, separates trailing footnote lines from
// the diagram body, and lays the body out as a rectangular Grid, padding
// short rows with StatusPad cells. Lines are split into cells by grapheme
// cluster (via uniseg) rather than raw rune, so that combining marks don't
// fragment a Cell.
func Parse(input string) (*Grid, error) {
	rawLines := strings.Split(input, "\n")

	bodyEnd := len(rawLines)
	attrs := map[string]string{}
	for i, line := range rawLines {
		if footnoteLine.MatchString(line) {
			bodyEnd = i
			break
		}
	}
	for _, line := range rawLines[bodyEnd:] {
		m := footnoteLine.FindStringSubmatch(line)
		if m == nil {
			continue // trailing non-footnote lines are discarded silently
		}
		attrs[m[1]] = m[2]
	}

	body := rawLines[:bodyEnd]
	rows := make([][]rune, len(body))
	width := 0
	for i, line := range body {
		rows[i] = graphemeRunes(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}

	g := &Grid{Width: width, Height: len(rows), Attrs: attrs}
	g.cells = make([]Cell, width*len(rows))
	for r, row := range rows {
		for c := 0; c < width; c++ {
			idx := r*width + c
			if c < len(row) {
				g.cells[idx] = Cell{Status: StatusContent, Char: row[c]}
			} else {
				g.cells[idx] = Cell{Status: StatusPad, Char: ' '}
			}
		}
	}
	return g, nil
}

// graphemeRunes reduces a line to one rune per grapheme cluster, taking the
// cluster's first rune as the Cell's representative character, so a
// combining mark doesn't fragment a Cell of its own. The Grid's width is
// this per-line count -- a Unicode-scalar-scale measure, per §3/§4.1 -- not
// the line's on-screen display width; a wide glyph (CJK, some box-drawing
// characters) still occupies exactly one Cell, so ToString round-trips a
// pristine Grid exactly. Display-width-aware column accounting belongs to
// a rendering layer (internal/preview), not here.
func graphemeRunes(line string) []rune {
	var out []rune
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		rs := g.Runes()
		if len(rs) == 0 {
			continue
		}
		out = append(out, rs[0])
	}
	return out
}

// Holds reports whether p is within the Grid's bounds.
func (g *Grid) Holds(p Point) bool {
	return p.Row >= 1 && p.Row <= g.Height && p.Col >= 1 && p.Col <= g.Width
}

func (g *Grid) index(p Point) int {
	return (p.Row-1)*g.Width + (p.Col - 1)
}

// At returns the Cell at p and whether p is within bounds.
func (g *Grid) At(p Point) (Cell, bool) {
	if !g.Holds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Set overwrites the Cell at p. It panics if p is out of bounds, matching
// the invariant that extraction never touches cells outside the Grid.
func (g *Grid) Set(p Point, c Cell) {
	if !g.Holds(p) {
		panic("asciitosvg: Set out of grid bounds: " + p.String())
	}
	g.cells[g.index(p)] = c
}

// consume transitions the Cell at p from Content to Used (for joint
// characters '+'/'*') or Cleared (everything else), per §4.6.
func (g *Grid) consume(p Point) {
	cell, ok := g.At(p)
	if !ok || cell.Status != StatusContent {
		return
	}
	if isJoint(cell.Char) {
		cell.Status = StatusUsed
	} else {
		cell.Status = StatusCleared
	}
	g.Set(p, cell)
}

// ToString round-trips the grid, rendering Used/Cleared cells as the
// sentinel '_' so visual inspection shows what has been consumed.
func (g *Grid) ToString() string {
	var b strings.Builder
	for r := 1; r <= g.Height; r++ {
		for c := 1; c <= g.Width; c++ {
			cell, _ := g.At(Point{Col: c, Row: r})
			switch cell.Status {
			case StatusUsed, StatusCleared:
				b.WriteRune('_')
			case StatusPad:
				b.WriteRune(' ')
			default:
				b.WriteRune(cell.Char)
			}
		}
		if r != g.Height {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
