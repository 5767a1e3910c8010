// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package exampledoc assembles the finished SVG document from a rendered
// extraction, grounded on the teacher's svg.go: three passes (closed
// paths, open paths, text) over a manually-built XML string, since
// encoding/xml's struct marshaling would balloon the output for no
// benefit here.
package exampledoc

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

func expandShorthandHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	return s
}

// TextColor returns an accessible text color to lay on top of background
// bg. The contrast formula is the same W3 working-group brightness/color
// difference test the teacher used; go-colorful supplies the hex parsing
// and 0-1 RGB components in place of the teacher's hand-rolled nibble
// parsing.
func TextColor(bg string) (string, error) {
	col, err := colorful.Hex(expandShorthandHex(bg))
	if err != nil {
		return "#000", fmt.Errorf("color %q can't be parsed: %w", bg, err)
	}
	r, g, b := col.R*255, col.G*255, col.B*255
	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 && difference < 500 {
		return "#fff", nil
	}
	return "#000", nil
}
