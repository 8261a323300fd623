// Package model contains domain models passed between layers.
package model

import "strings"

// OptInt is an optional integer read from the feed. Absent or non-numeric
// leaf values stay absent instead of collapsing to zero, so a missing
// finish time is distinguishable from a zero-second one.
type OptInt struct {
	Value int
	Valid bool
}

// Int returns an OptInt carrying v.
func Int(v int) OptInt { return OptInt{Value: v, Valid: true} }

// Event is the aggregate root: one ingested result document.
// Classes are replaced wholesale on every ingest, never merged.
type Event struct {
	// Name is the human-readable race name.
	Name string
	// Timestamp is the document creation time as supplied by the feed.
	// It is opaque; only a date-only prefix is ever derived from it.
	Timestamp string
	// Classes in document order. Class identity is its name.
	Classes []Class
}

// Class is one competition category with its ranked result list.
type Class struct {
	Name string
	// Results in the ranked order given by the source. Never re-sorted.
	Results []Summary
}

// Key returns the lookup key for the class name, see ClassKey.
func (c Class) Key() string { return ClassKey(c.Name) }

// ClassKey sanitizes a class name into an identifier-safe lookup key:
// whitespace runs collapse to a single dash.
func ClassKey(name string) string {
	return strings.Join(strings.Fields(name), "-")
}

// Summary is the lightweight per-competitor record backing the listing view.
// Position and TimeBehind are only meaningful when Status is "OK".
type Summary struct {
	Name       string
	Club       string
	Time       OptInt // finish time, seconds
	TimeBehind OptInt // seconds behind the class leader
	Status     string // normalized status code, e.g. OK, DNF, MP, DNS
	Position   string // rank as given by the source, empty when not ranked
}

// Punch is one cumulative control time as punched on the course.
type Punch struct {
	Control    string
	Cumulative OptInt
}

// Leg is a computed split: the duration between two consecutive punches,
// alongside the cumulative time at the later one.
type Leg struct {
	Control    string
	Split      OptInt
	Cumulative OptInt
}

// Detail is the drill-down record for a single competitor. It is derived
// on demand from the raw document and never persisted.
type Detail struct {
	Summary

	ControlCard  string
	CourseLength OptInt // meters
	Controls     OptInt // number of controls on the course
	Runners      int    // competitors in the class
	Legs         []Leg
	Pace         OptInt // seconds per kilometer, absent when length is unknown
}
