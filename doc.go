// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package asciitosvg interprets a 2D grid of ASCII/Unicode characters as a
// collection of polylines, closed polygons, and text annotations, then
// emits drawing instructions per character along each discovered path
// using a user-extensible rule table.
//
// The pipeline is: text is parsed into a Grid (Parse); a Table of rules is
// either built in memory or compiled from the textual rule grammar
// (ParseTable); a Finder walks the Grid, consulting the Table on every
// candidate step, producing Paths and Texts (Find); a Renderer asks the
// same Table for a template on every consumed step and expands it into a
// stream of drawing Commands (Renderer.RenderPath).
//
// SVG document assembly, the command-line driver, and log/diagnostic
// plumbing are external collaborators, not part of this package; see
// cmd/a2s and internal/exampledoc for one way to wire them up.
package asciitosvg
