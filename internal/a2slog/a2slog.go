// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package a2slog builds the structured logger cmd/a2s hands to the rest
// of the program. The teacher never logged at all (main.go wrote errors
// straight to stderr with fmt.Fprintf); this exists because the expanded
// driver has a --watch loop and a rule table with skippable warnings,
// both of which need a running log rather than a single final error.
package a2slog

import (
	"io"
	"log/slog"
)

// New builds a text-handler logger writing to w. verbose lowers the
// level to Debug; otherwise only Info and above are emitted.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
