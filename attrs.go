// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// attrSchemaSrc constrains a footnote's JSON object to the shape the
// renderer can merge onto an SVG element: string keys, scalar values.
// encoding/json itself has no schema notion, so validating the decoded
// value against this schema (rather than hand-rolling type assertions) is
// what catches a malformed footnote before it silently becomes an empty
// attribute set.
const attrSchemaSrc = `{
	"type": "object",
	"additionalProperties": {"type": ["string", "boolean", "number"]}
}`

var attrSchema = func() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("attrs.json", strings.NewReader(attrSchemaSrc)); err != nil {
		panic(err)
	}
	s, err := c.Compile("attrs.json")
	if err != nil {
		panic(err)
	}
	return s
}()

var rowColKey = regexp.MustCompile(`^\s*(\d+)\s*,\s*(\d+)\s*$`)

// parseAttrValue interprets a footnote's value (§4.1, §6): either a
// JSON-style object, validated against attrSchema, or free text kept as a
// single "text" attribute.
func parseAttrValue(raw string) ([]Attr, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		if trimmed == "" {
			return nil, nil
		}
		return []Attr{{Name: "text", Value: trimmed}}, nil
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return nil, fmt.Errorf("footnote value %q is not valid JSON: %w", raw, err)
	}
	if err := attrSchema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("footnote value %q failed attribute schema: %w", raw, err)
	}
	obj := decoded.(map[string]interface{})
	names := make([]string, 0, len(obj))
	for k := range obj {
		names = append(names, k)
	}
	sortStrings(names)
	attrs := make([]Attr, 0, len(obj))
	for _, k := range names {
		attrs = append(attrs, Attr{Name: k, Value: fmt.Sprint(obj[k])})
	}
	return attrs, nil
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// bindFootnotes attaches Grid.Attrs footnotes to Paths and Texts, per
// §4.1/§4.5: a footnote key either names an object's identifier or
// addresses one of a path's steps as "[row,col]".
func (f *Finder) bindFootnotes(ex *Extraction) {
	for key, raw := range f.Grid.Attrs {
		attrs, err := parseAttrValue(raw)
		if err != nil {
			f.Warnings = append(f.Warnings, err)
			continue
		}
		if attrs == nil {
			continue
		}
		if p := findPathByID(ex.Paths, key); p != nil {
			p.SetAttrs(attrs)
			continue
		}
		if t := findTextByID(ex.Texts, key); t != nil {
			t.Attrs = attrs
			continue
		}
		if m := rowColKey.FindStringSubmatch(key); m != nil {
			row, _ := strconv.Atoi(m[1])
			col, _ := strconv.Atoi(m[2])
			pt := Point{Col: col, Row: row}
			if p := findPathAtStep(ex.Paths, pt); p != nil {
				p.SetAttrs(attrs)
			}
		}
	}
}

func findPathByID(paths []*Path, id string) *Path {
	for _, p := range paths {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findTextByID(texts []*Text, id string) *Text {
	for _, t := range texts {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func findPathAtStep(paths []*Path, pt Point) *Path {
	for _, p := range paths {
		for _, s := range p.Steps {
			if s.Pt == pt {
				return p
			}
		}
	}
	return nil
}
