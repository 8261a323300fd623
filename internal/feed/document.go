// Package feed parses IOF XML v3 result documents and extracts normalized
// competitor records from them.
package feed

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Document mirrors the subset of an IOF XML v3 ResultList the board needs.
// The feed is trusted as well-formed beyond the XML layer itself: absent
// leaf elements simply decode to empty strings.
type Document struct {
	XMLName      xml.Name      `xml:"ResultList"`
	CreateTime   string        `xml:"createTime,attr"`
	EventName    string        `xml:"Event>Name"`
	ClassResults []ClassResult `xml:"ClassResult"`
}

// ClassResult is one category's block of results.
type ClassResult struct {
	ClassName        string         `xml:"Class>Name"`
	CourseLength     string         `xml:"Course>Length"`
	NumberOfControls string         `xml:"Course>NumberOfControls"`
	PersonResults    []PersonResult `xml:"PersonResult"`
}

// PersonResult is one competitor's entry within a class.
type PersonResult struct {
	Given        string      `xml:"Person>Name>Given"`
	Family       string      `xml:"Person>Name>Family"`
	Organisation string      `xml:"Organisation>Name"`
	Result       PersonTimes `xml:"Result"`
}

// PersonTimes carries the timing block of a PersonResult. Numeric fields
// stay raw strings here; conversion happens at extraction through
// parseOptionalSeconds.
type PersonTimes struct {
	Time        string      `xml:"Time"`
	TimeBehind  string      `xml:"TimeBehind"`
	Status      string      `xml:"Status"`
	Position    string      `xml:"Position"`
	ControlCard string      `xml:"ControlCard"`
	SplitTimes  []SplitTime `xml:"SplitTime"`
}

// SplitTime is one cumulative control punch.
type SplitTime struct {
	ControlCode string `xml:"ControlCode"`
	Time        string `xml:"Time"`
}

// FullName joins given and family name with a single space. Empty halves
// leave a stray space rather than failing; the feed is taken as-is.
func (p PersonResult) FullName() string {
	return p.Given + " " + p.Family
}

// Parse decodes raw bytes into a Document. Anything the XML decoder
// rejects surfaces as ErrMalformedDocument.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// parseOptionalSeconds is the single boundary between feed strings and
// numeric fields: blank or non-numeric values come back absent, never zero
// and never an error.
func parseOptionalSeconds(raw string) (value int, valid bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
