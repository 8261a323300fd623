// Package display turns normalized result records into the strings the
// board actually shows. Every function here is pure and total: bad or
// absent input yields a placeholder, never an error.
package display

import (
	"fmt"

	"github.com/okian/splitboard/internal/domain/model"
)

// Placeholder is shown for absent or unusable durations.
const Placeholder = "--:--"

// FormatSeconds renders a duration as m:ss with unpadded, unbounded
// minutes. Absent or negative input renders as the placeholder.
func FormatSeconds(s model.OptInt) string {
	if !s.Valid || s.Value < 0 {
		return Placeholder
	}
	return fmt.Sprintf("%d:%02d", s.Value/60, s.Value%60)
}

// NormalizeStatus maps the feed's verbose completion statuses to the short
// codes shown on the board. Unrecognized values (including "OK") pass
// through unchanged.
func NormalizeStatus(raw string) string {
	switch raw {
	case "DidNotFinish":
		return "DNF"
	case "MissingPunch":
		return "MP"
	case "DidNotStart":
		return "DNS"
	default:
		return raw
	}
}

// StatusOK is the only status under which position and time-behind carry
// meaning.
const StatusOK = "OK"

// Row is one rendered line of a class result table.
type Row struct {
	Position   string `json:"position"`
	Name       string `json:"name"`
	Club       string `json:"club"`
	Time       string `json:"time"`
	TimeBehind string `json:"time_behind"`
	Status     string `json:"status"`
}

// SummaryRow applies the status-driven display policy to a summary record.
// Non-finishers lose their position, show their status code in the time
// column and the placeholder in the behind column, regardless of any
// numeric fields the feed carried for them. A non-zero time-behind gets a
// leading plus.
func SummaryRow(s model.Summary) Row {
	r := Row{
		Position:   s.Position,
		Name:       s.Name,
		Club:       s.Club,
		Time:       FormatSeconds(s.Time),
		TimeBehind: FormatSeconds(s.TimeBehind),
		Status:     s.Status,
	}
	if r.TimeBehind != "0:00" {
		r.TimeBehind = "+" + r.TimeBehind
	}
	if s.Status != StatusOK {
		r.Position = ""
		r.Time = s.Status
		r.TimeBehind = Placeholder
	}
	return r
}

// DateOnly truncates a feed timestamp to its date prefix. The timestamp is
// never reparsed; anything shorter than a date is returned as is.
func DateOnly(timestamp string) string {
	if len(timestamp) > 10 {
		return timestamp[:10]
	}
	return timestamp
}
