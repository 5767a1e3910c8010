// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// A Command is one step's expanded drawing instruction: literal SVG
// path-command text plus the attributes merged in from the matched Entry
// and any footnote binding on the owning Path.
type Command struct {
	Pt    Point
	Text  string
	Attrs []Attr
}

// A RenderedPath is the drawing-command stream produced for a single
// Path, plus the element id it was assigned (its bound identifier, or a
// synthesized uuid if it has none).
type RenderedPath struct {
	Path     *Path
	ID       string
	Commands []Command
}

// Renderer implements §4.7: for each step of a finished Path, it asks the
// Table for the first non-loop-start Entry matching the step's context
// and expands that Entry's template.
type Renderer struct {
	Table *Table

	// Warnings collects NoMatchAtStep occurrences (§7): rendering
	// continues, that step's command is simply omitted.
	Warnings []error
}

// NewRenderer builds a Renderer driven by t.
func NewRenderer(t *Table) *Renderer {
	return &Renderer{Table: t}
}

// RenderPath expands p's steps into a Command stream.
func (r *Renderer) RenderPath(p *Path) RenderedPath {
	n := len(p.Steps)
	cmds := make([]Command, 0, n)
	for i, s := range p.Steps {
		in := r.incomingObservation(p, i)
		out := r.outgoingObservation(p, i)
		entry, ok := r.Table.FindRender(in, s.Char, out)
		if !ok {
			r.Warnings = append(r.Warnings, &WarnNoMatchAtStep{Pt: s.Pt, Char: s.Char})
			continue
		}
		text := expandTemplate(entry.Template, s.Pt, in, out)
		cmds = append(cmds, Command{Pt: s.Pt, Text: text, Attrs: mergeAttrs(entry.Attrs, p.Attrs)})
	}
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	return RenderedPath{Path: p, ID: id, Commands: cmds}
}

func (r *Renderer) incomingObservation(p *Path, i int) SideObservation {
	n := len(p.Steps)
	switch {
	case i > 0:
		prev := p.Steps[i-1]
		d, _ := prev.Pt.Towards(p.Steps[i].Pt)
		return Observed(prev.Char, d)
	case p.Closed:
		last := p.Steps[n-1]
		d, _ := last.Pt.Towards(p.Steps[0].Pt)
		return Observed(last.Char, d)
	default:
		return Absent
	}
}

func (r *Renderer) outgoingObservation(p *Path, i int) SideObservation {
	n := len(p.Steps)
	switch {
	case i < n-1:
		next := p.Steps[i+1]
		d, _ := p.Steps[i].Pt.Towards(next.Pt)
		return Observed(next.Char, d)
	case p.Closed:
		first := p.Steps[0]
		d, _ := p.Steps[i].Pt.Towards(first.Pt)
		return Observed(first.Char, d)
	default:
		return Absent
	}
}

func mergeAttrs(entryAttrs, pathAttrs []Attr) []Attr {
	if len(entryAttrs) == 0 && len(pathAttrs) == 0 {
		return nil
	}
	byName := map[string]string{}
	var order []string
	for _, a := range entryAttrs {
		if _, seen := byName[a.Name]; !seen {
			order = append(order, a.Name)
		}
		byName[a.Name] = a.Value
	}
	for _, a := range pathAttrs { // footnote attrs override entry defaults
		if _, seen := byName[a.Name]; !seen {
			order = append(order, a.Name)
		}
		byName[a.Name] = a.Value
	}
	out := make([]Attr, len(order))
	for i, n := range order {
		out[i] = Attr{Name: n, Value: byName[n]}
	}
	return out
}

var placeholder = regexp.MustCompile(`\{([A-Z]{1,2}(?:/o)?)\}`)

// expandTemplate expands a template's `{...}` placeholders into pixel
// coordinates for the step at pt with the given incoming/outgoing
// context, per §4.7. Literal text is emitted verbatim.
func expandTemplate(tmpl string, pt Point, in, out SideObservation) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		xy, ok := resolvePlaceholder(name, pt, in, out)
		if !ok {
			return m
		}
		return fmt.Sprintf("%g,%g", xy.X, xy.Y)
	})
}

func resolvePlaceholder(name string, pt Point, in, out SideObservation) (XY, bool) {
	offset := strings.HasSuffix(name, "/o")
	base := strings.TrimSuffix(name, "/o")
	switch base {
	case "C", "N", "S", "E", "W", "NE", "SE", "SW", "NW":
		if offset {
			return inward(pt, base)
		}
		return anchor(pt, base)
	case "I":
		if !in.Present {
			return XY{}, false
		}
		return anchorMaybeOffset(pt, dirAnchorName(in.Dir.Reverse()), offset)
	case "O":
		if !out.Present {
			return XY{}, false
		}
		return anchorMaybeOffset(pt, dirAnchorName(out.Dir), offset)
	case "RI":
		if !in.Present {
			return XY{}, false
		}
		return anchorMaybeOffset(pt, dirAnchorName(in.Dir), offset)
	case "RO":
		if !out.Present {
			return XY{}, false
		}
		return anchorMaybeOffset(pt, dirAnchorName(out.Dir.Reverse()), offset)
	default:
		return XY{}, false
	}
}

func anchorMaybeOffset(pt Point, name string, offset bool) (XY, bool) {
	if offset {
		return inward(pt, name)
	}
	return anchor(pt, name)
}
