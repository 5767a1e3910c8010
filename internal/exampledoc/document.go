// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package exampledoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	asciisvg "github.com/a2s-project/asciisvg"
)

const (
	defaultFont = "Consolas,Monaco,Anonymous Pro,Anonymous,Bitstream Sans Mono,monospace"
	header      = "<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"
	watermark   = "<!-- Rendered by asciisvg -->\n"
	svgTag      = "<svg width=\"%dpx\" height=\"%dpx\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\">\n"

	markerDefs = `  <defs>
    <marker id="iPointer" viewBox="0 0 10 10" refX="5" refY="5" markerUnits="strokeWidth" markerWidth="8" markerHeight="8" orient="auto">
      <path d="M 10 0 L 10 10 L 0 5 z" />
    </marker>
    <marker id="oPointer" viewBox="0 0 10 10" refX="5" refY="5" markerUnits="strokeWidth" markerWidth="8" markerHeight="8" orient="auto">
      <path d="M 0 0 L 10 5 L 0 10 z" />
    </marker>
  </defs>
`
	pathTag      = "    <path id=\"%s\" %s%s%sd=\"%s\" />\n"
	markStartTag = "marker-start=\"url(#iPointer)\" "
	markEndTag   = "marker-end=\"url(#oPointer)\" "

	textGroupTag = "  <g id=\"text\" stroke=\"none\" style=\"font-family:%s;font-size:15.2px\" >\n"
	textTag      = "    <text id=\"%s\" x=\"%g\" y=\"%g\" fill=\"%s\">%s</text>\n"
)

// Document holds the pixel canvas size and font used to assemble an SVG
// document from a rendered extraction.
type Document struct {
	Width, Height int
	Font          string
}

// New builds a Document sized for a width x height (in cells) grid, using
// the fixed cell geometry from the parent package.
func New(width, height int) *Document {
	return &Document{
		Width:  (width + 1) * asciisvg.CellWidth,
		Height: (height + 1) * asciisvg.CellHeight,
	}
}

// Assemble renders paths and texts into a complete SVG document, in three
// passes -- closed paths, open paths, then text -- matching the teacher's
// CanvasToSVG layering.
func (d *Document) Assemble(paths []asciisvg.RenderedPath, texts []*asciisvg.Text) []byte {
	font := d.Font
	if font == "" {
		font = defaultFont
	}

	b := &bytes.Buffer{}
	b.WriteString(header)
	b.WriteString(watermark)
	fmt.Fprintf(b, svgTag, d.Width, d.Height)
	b.WriteString(markerDefs)

	b.WriteString("  <g id=\"closed\" stroke=\"#000\" stroke-width=\"2\" fill=\"#88d\">\n")
	for _, rp := range paths {
		if !rp.Path.Closed {
			continue
		}
		fmt.Fprintf(b, pathTag, escape(rp.ID), "", "", attrString(rp), pathData(rp)+" Z")
	}
	b.WriteString("  </g>\n")

	b.WriteString("  <g id=\"lines\" stroke=\"#000\" stroke-width=\"2\" fill=\"none\">\n")
	for _, rp := range paths {
		if rp.Path.Closed {
			continue
		}
		start, end := "", ""
		if steps := rp.Path.Steps; len(steps) > 0 {
			if asciisvg.IsArrow(steps[0].Char) {
				start = markStartTag
			}
			if asciisvg.IsArrow(steps[len(steps)-1].Char) {
				end = markEndTag
			}
		}
		fmt.Fprintf(b, pathTag, escape(rp.ID), start, end, attrString(rp), pathData(rp))
	}
	b.WriteString("  </g>\n")

	fmt.Fprintf(b, textGroupTag, escape(font))
	for i, t := range texts {
		if t.ID == bracketOnly(t.Value) {
			continue // pure "[name]" identifier markers are not drawn as text
		}
		color := "#000"
		if bg := attrValue(t.Attrs, "fill"); bg != "" {
			if c, err := TextColor(bg); err == nil {
				color = c
			}
		}
		x := float64(t.Anchor.Col-1) * asciisvg.CellWidth
		y := (float64(t.Anchor.Row-1) + .75) * asciisvg.CellHeight
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("text%d", i)
		}
		fmt.Fprintf(b, textTag, escape(id), x, y, color, escape(t.Value))
	}
	b.WriteString("  </g>\n")

	b.WriteString("</svg>\n")
	return b.Bytes()
}

func bracketOnly(v string) string {
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		return v
	}
	return ""
}

func pathData(rp asciisvg.RenderedPath) string {
	parts := make([]string, len(rp.Commands))
	for i, c := range rp.Commands {
		parts[i] = c.Text
	}
	return strings.Join(parts, " ")
}

func attrString(rp asciisvg.RenderedPath) string {
	if len(rp.Commands) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range rp.Commands[0].Attrs {
		fmt.Fprintf(&b, "%s=\"%s\" ", a.Name, escape(a.Value))
	}
	return b.String()
}

func attrValue(attrs []asciisvg.Attr, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}
