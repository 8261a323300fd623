// Package splits computes per-leg durations from cumulative control times.
package splits

import (
	"math"

	"github.com/okian/splitboard/internal/domain/model"
)

// Compute turns a competitor's ordered cumulative punches into legs and
// appends the finish as a synthetic final control. The first leg's split
// equals its cumulative time; every later leg is the difference to the
// punch before it. Cumulative times are trusted to be non-decreasing, the
// feed owns that guarantee. A leg touching an absent cumulative time gets
// an absent split, which covers mispunched courses.
func Compute(punches []model.Punch, finish model.OptInt) []model.Leg {
	course := make([]model.Punch, 0, len(punches)+1)
	course = append(course, punches...)
	course = append(course, model.Punch{Control: FinishControl, Cumulative: finish})

	legs := make([]model.Leg, len(course))
	prev := model.Int(0)
	for i, p := range course {
		leg := model.Leg{Control: p.Control, Cumulative: p.Cumulative}
		if p.Cumulative.Valid && prev.Valid {
			leg.Split = model.Int(p.Cumulative.Value - prev.Value)
		}
		legs[i] = leg
		prev = p.Cumulative
	}
	return legs
}

// FinishControl labels the appended finish leg.
const FinishControl = "F"

// Pace derives seconds per kilometer from a finish time and a course
// length in meters. Absent when either side is absent or the length is
// zero.
func Pace(finish, lengthMeters model.OptInt) model.OptInt {
	if !finish.Valid || !lengthMeters.Valid || lengthMeters.Value == 0 {
		return model.OptInt{}
	}
	perKM := float64(finish.Value) / float64(lengthMeters.Value) * 1000
	return model.Int(int(math.Round(perKM)))
}
