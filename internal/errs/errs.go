// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package errs classifies the root package's error taxonomy into process
// exit codes and log levels for cmd/a2s, so main.go itself stays a thin
// flag-parsing shell in the teacher's mainImpl style.
package errs

import (
	"errors"
	"log/slog"

	asciisvg "github.com/a2s-project/asciisvg"
)

// Exit codes. 0 is reserved for success by convention; the rest follow
// the order errors are likely to occur in a run: bad input, bad rules,
// then anything unexpected.
const (
	ExitOK = iota
	ExitInputIO
	ExitRuleParse
	ExitAssertion
	ExitUnknown
)

// Code maps err to the exit code a driver should report to the shell.
func Code(err error) int {
	if err == nil {
		return ExitOK
	}
	var ioErr *asciisvg.ErrInputIO
	var parseErr *asciisvg.ParseError
	var assertErr *asciisvg.ErrAssertionViolation
	switch {
	case errors.As(err, &ioErr):
		return ExitInputIO
	case errors.As(err, &parseErr):
		return ExitRuleParse
	case errors.As(err, &assertErr):
		return ExitAssertion
	default:
		return ExitUnknown
	}
}

// LogWarnings emits every warning collected during a Finder or Renderer
// pass at a level matched to its severity: AmbiguousIdentifier is
// informational, NoMatchAtStep points at a gap in the rule table so it is
// worth a louder Warn.
func LogWarnings(log *slog.Logger, warnings []error) {
	for _, w := range warnings {
		var noMatch *asciisvg.WarnNoMatchAtStep
		if errors.As(w, &noMatch) {
			log.Warn("no rendering rule matched a committed step", "point", noMatch.Pt.String(), "char", string(noMatch.Char))
			continue
		}
		var ambiguous *asciisvg.WarnAmbiguousIdentifier
		if errors.As(w, &ambiguous) {
			log.Info("ambiguous identifier resolved to the upper-left candidate", "candidates", len(ambiguous.Candidates), "chosen", ambiguous.Chosen.String())
			continue
		}
		log.Warn(w.Error())
	}
}
