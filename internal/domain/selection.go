package domain

import (
	"time"

	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Selection is one staged activity in a multi-activity booking session:
// a course, a degree, the chosen participants and the chosen dates.
// Selections live in local storage until the session is committed to the
// backend; conflict detection runs against them before any server round-trip.
type Selection struct {
	ID             int64
	SessionID      string
	CourseID       types.NumericID
	CourseType     CourseType
	DegreeID       types.NumericID
	ParticipantIDs []types.NumericID
	Dates          []SelectionDate
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SelectionDate одна выбранная дата внутри staged-активности
type SelectionDate struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// SharesParticipant reports whether two selections have at least one
// participant in common.
func (s *Selection) SharesParticipant(participantIDs []types.NumericID) bool {
	for _, mine := range s.ParticipantIDs {
		for _, other := range participantIDs {
			if mine == other {
				return true
			}
		}
	}
	return false
}

// SameDateSet проверяет, что набор дат selection в точности совпадает
// с переданным (по календарным дням, без учета времени)
func (s *Selection) SameDateSet(dates []SelectionDate) bool {
	if len(s.Dates) != len(dates) {
		return false
	}

	have := make(map[string]struct{}, len(s.Dates))
	for _, d := range s.Dates {
		have[DateOnly(d.Date).Format(DateFormat)] = struct{}{}
	}

	for _, d := range dates {
		if _, ok := have[DateOnly(d.Date).Format(DateFormat)]; !ok {
			return false
		}
	}

	return true
}
