// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

// CellWidth and CellHeight are the fixed cell geometry used by template
// expansion, per §4.7: every grid cell maps to a 9×12 pixel rectangle.
const (
	CellWidth  = 9.0
	CellHeight = 12.0
)

// XY is a floating point pixel coordinate produced by template expansion.
type XY struct{ X, Y float64 }

// cellOrigin returns the top-left pixel of the cell at p.
func cellOrigin(p Point) XY {
	return XY{X: float64(p.Col-1) * CellWidth, Y: float64(p.Row-1) * CellHeight}
}

// anchor returns the named half-cell point (or center) for the cell at p.
func anchor(p Point, name string) (XY, bool) {
	o := cellOrigin(p)
	hw, hh := CellWidth/2, CellHeight/2
	switch name {
	case "C":
		return XY{o.X + hw, o.Y + hh}, true
	case "N":
		return XY{o.X + hw, o.Y}, true
	case "NE":
		return XY{o.X + CellWidth, o.Y}, true
	case "E":
		return XY{o.X + CellWidth, o.Y + hh}, true
	case "SE":
		return XY{o.X + CellWidth, o.Y + CellHeight}, true
	case "S":
		return XY{o.X + hw, o.Y + CellHeight}, true
	case "SW":
		return XY{o.X, o.Y + CellHeight}, true
	case "W":
		return XY{o.X, o.Y + hh}, true
	case "NW":
		return XY{o.X, o.Y}, true
	default:
		return XY{}, false
	}
}

// inward nudges an anchor point a small fixed distance toward the cell
// center, used for the `{X/o}` offset placeholder forms (circle joins).
func inward(p Point, name string) (XY, bool) {
	a, ok := anchor(p, name)
	if !ok {
		return XY{}, false
	}
	c, _ := anchor(p, "C")
	const step = 2.0
	dx, dy := c.X-a.X, c.Y-a.Y
	norm := absf(dx) + absf(dy)
	if norm == 0 {
		return a, true
	}
	return XY{X: a.X + dx/norm*step, Y: a.Y + dy/norm*step}, true
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// dirAnchorName maps a Direction to the anchor name on the same side of
// the cell.
func dirAnchorName(d Direction) string {
	return directionNames[d&7]
}
