package feed

import (
	"github.com/okian/splitboard/internal/domain/display"
	"github.com/okian/splitboard/internal/domain/model"
	"github.com/okian/splitboard/internal/domain/splits"
)

// ExtractClass walks one class's entries in document order and produces
// normalized summaries, one per competitor, same order. The source order
// is already rank order, so nothing is re-sorted and nothing is dropped:
// extraction cannot fail, bad values just come out absent or empty.
func ExtractClass(cr ClassResult) []model.Summary {
	out := make([]model.Summary, 0, len(cr.PersonResults))
	for _, pr := range cr.PersonResults {
		out = append(out, extractPerson(pr))
	}
	return out
}

// ExtractEvent normalizes a whole document into the aggregate event model.
func ExtractEvent(doc *Document) model.Event {
	ev := model.Event{
		Name:      doc.EventName,
		Timestamp: doc.CreateTime,
		Classes:   make([]model.Class, 0, len(doc.ClassResults)),
	}
	for _, cr := range doc.ClassResults {
		ev.Classes = append(ev.Classes, model.Class{
			Name:    cr.ClassName,
			Results: ExtractClass(cr),
		})
	}
	return ev
}

// ExtractDetail assembles the drill-down record for one competitor within
// their class: the summary fields plus course data, computed legs and pace.
func ExtractDetail(cr ClassResult, pr PersonResult) model.Detail {
	summary := extractPerson(pr)
	length := optInt(cr.CourseLength)
	return model.Detail{
		Summary:      summary,
		ControlCard:  pr.Result.ControlCard,
		CourseLength: length,
		Controls:     optInt(cr.NumberOfControls),
		Runners:      len(cr.PersonResults),
		Legs:         splits.Compute(Punches(pr), summary.Time),
		Pace:         splits.Pace(summary.Time, length),
	}
}

func extractPerson(pr PersonResult) model.Summary {
	return model.Summary{
		Name:       pr.FullName(),
		Club:       pr.Organisation,
		Time:       optInt(pr.Result.Time),
		TimeBehind: optInt(pr.Result.TimeBehind),
		Status:     display.NormalizeStatus(pr.Result.Status),
		Position:   pr.Result.Position,
	}
}

// Punches converts a competitor's split times into cumulative punches.
func Punches(pr PersonResult) []model.Punch {
	punches := make([]model.Punch, 0, len(pr.Result.SplitTimes))
	for _, st := range pr.Result.SplitTimes {
		punches = append(punches, model.Punch{
			Control:    st.ControlCode,
			Cumulative: optInt(st.Time),
		})
	}
	return punches
}

func optInt(raw string) model.OptInt {
	v, ok := parseOptionalSeconds(raw)
	if !ok {
		return model.OptInt{}
	}
	return model.Int(v)
}
