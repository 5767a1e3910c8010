// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package asciitosvg

// NeighborKind is the shape of a Neighbor constraint.
type NeighborKind int

const (
	// Blank requires this side to be an endpoint (no neighbor observed).
	Blank NeighborKind = iota
	// Must requires a non-empty neighbor satisfying CharSet and DirSet.
	Must
	// May matches either an endpoint or a matching neighbor.
	May
)

// A Neighbor is one side (incoming or outgoing) of an Entry's match.
type Neighbor struct {
	Kind  NeighborKind
	Chars CharSet
	Dirs  DirSet
}

// BlankSide is the Blank Neighbor constraint.
var BlankSide = Neighbor{Kind: Blank}

// MustSide builds a Must Neighbor constraint.
func MustSide(cs CharSet, ds DirSet) Neighbor {
	return Neighbor{Kind: Must, Chars: cs, Dirs: ds}
}

// MaySide builds a May Neighbor constraint.
func MaySide(cs CharSet, ds DirSet) Neighbor {
	return Neighbor{Kind: May, Chars: cs, Dirs: ds}
}

// A SideObservation describes what the finder or renderer actually saw on
// one side of a step: either nothing (an endpoint) or a character reached
// via a given direction.
type SideObservation struct {
	Present bool
	Char    rune
	Dir     Direction
}

// Absent is the "no neighbor" observation.
var Absent = SideObservation{}

// Observed builds a present SideObservation.
func Observed(c rune, d Direction) SideObservation {
	return SideObservation{Present: true, Char: c, Dir: d}
}

// matchSide implements §4.3's matches_side.
func matchSide(n Neighbor, obs SideObservation) bool {
	switch n.Kind {
	case Blank:
		return !obs.Present
	case Must:
		return obs.Present && n.Dirs.Has(obs.Dir) && n.Chars.Matches(obs.Char)
	case May:
		if !obs.Present {
			return true
		}
		return n.Dirs.Has(obs.Dir) && n.Chars.Matches(obs.Char)
	default:
		return false
	}
}

// An Attr is one (name, value) rendering attribute merged onto elements
// produced from an Entry's template.
type Attr struct {
	Name, Value string
}

// An Entry is one rule: a matching predicate over (incoming neighbor,
// current character, outgoing neighbor) plus a rendering template and
// optional attributes.
type Entry struct {
	Incoming    Neighbor
	Current     CharSet
	Outgoing    Neighbor
	Template    string
	Attrs       []Attr
	IsLoopStart bool
	// Instrument is the rule's instrumentation flag. It is carried on the
	// Entry only: matching ignores it, and neither the Finder nor the
	// Renderer records any extra diagnostics when it is set.
	Instrument bool
	// Provenance is free text describing where this Entry came from:
	// "line N" for a rule compiled by ParseTable, "builtin" for one made
	// by BuildEntry.
	Provenance string
}

// Matches implements §4.3's matches: both side predicates and the current
// character must hold.
func (e Entry) Matches(in SideObservation, curr rune, out SideObservation) bool {
	return matchSide(e.Incoming, in) && matchSide(e.Outgoing, out) && e.Current.Matches(curr)
}

// MatchesStart is the start-side specialization: the incoming side must be
// Blank or May (a Must incoming side can never match as a start), and it
// is evaluated as absent.
func (e Entry) MatchesStart(curr rune, out SideObservation) bool {
	if e.Incoming.Kind == Must {
		return false
	}
	return matchSide(e.Outgoing, out) && e.Current.Matches(curr)
}

// MatchesEnd is the symmetric end-side specialization: the outgoing side
// must be Blank or May, evaluated as absent.
func (e Entry) MatchesEnd(in SideObservation, curr rune) bool {
	if e.Outgoing.Kind == Must {
		return false
	}
	return matchSide(e.Incoming, in) && e.Current.Matches(curr)
}

// A Table is an ordered list of Entries; order is significant, first match
// wins. Tables are frozen after construction: nothing in this package
// mutates one once built (see tables.go, parser.go's ParseTable).
type Table struct {
	entries []Entry
}

// NewTable builds a Table from a fixed set of Entries, in order.
func NewTable(entries ...Entry) *Table {
	return &Table{entries: append([]Entry(nil), entries...)}
}

// Entries returns the Table's entries in match order. The returned slice
// must not be mutated by callers.
func (t *Table) Entries() []Entry {
	return t.entries
}

// FindStep returns the first non-loop-start Entry matching the given step
// context, per §4.3/§4.4 step 2.
func (t *Table) FindStep(in SideObservation, curr rune, out SideObservation) (Entry, bool) {
	for _, e := range t.entries {
		if e.IsLoopStart {
			continue
		}
		if e.Matches(in, curr, out) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindLoopStart returns the first loop-start Entry matching the given loop
// closure context (§4.4 "Loop closure").
func (t *Table) FindLoopStart(in SideObservation, curr rune, out SideObservation) (Entry, bool) {
	for _, e := range t.entries {
		if !e.IsLoopStart {
			continue
		}
		if e.Matches(in, curr, out) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindStart returns the first non-loop-start Entry usable as a path start.
func (t *Table) FindStart(curr rune, out SideObservation) (Entry, bool) {
	for _, e := range t.entries {
		if e.IsLoopStart {
			continue
		}
		if e.MatchesStart(curr, out) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindEnd returns the first non-loop-start Entry usable as a path end.
func (t *Table) FindEnd(in SideObservation, curr rune) (Entry, bool) {
	for _, e := range t.entries {
		if e.IsLoopStart {
			continue
		}
		if e.MatchesEnd(in, curr) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindRender returns the first non-loop-start Entry matching a committed
// render context; identical shape to FindStep, exposed separately because
// the renderer (render.go) consults the Table independently of the finder,
// per §4.7.
func (t *Table) FindRender(in SideObservation, curr rune, out SideObservation) (Entry, bool) {
	return t.FindStep(in, curr, out)
}
