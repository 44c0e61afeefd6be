package check_conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func selection(id int64, participants []int64, dates ...domain.SelectionDate) domain.Selection {
	ids := make([]types.NumericID, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, types.NumericID(p))
	}
	return domain.Selection{
		ID:             id,
		SessionID:      "s1",
		CourseID:       100,
		DegreeID:       5,
		ParticipantIDs: ids,
		Dates:          dates,
	}
}

func selDate(d time.Time, start, end string) domain.SelectionDate {
	return domain.SelectionDate{Date: d, StartTime: types.TimeString(start), EndTime: types.TimeString(end)}
}

func candidate(participants []int64, dates ...domain.SelectionDate) *Candidate {
	ids := make([]types.NumericID, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, types.NumericID(p))
	}
	return &Candidate{
		CourseID:       200,
		DegreeID:       7,
		ParticipantIDs: ids,
		Dates:          dates,
	}
}

func TestFindLocalConflict_OverlappingTimes(t *testing.T) {
	christmas := day(2024, 12, 25)

	existing := []domain.Selection{
		selection(1, []int64{11}, selDate(christmas, "10:00", "11:00")),
	}

	// 10:00-11:00 против 10:30-11:30 - пересечение
	conflict := findLocalConflict(candidate([]int64{11}, selDate(christmas, "10:30", "11:30")), existing)
	require.NotNil(t, conflict)
	assert.Equal(t, SourceLocal, conflict.Source)
	assert.EqualValues(t, 11, conflict.ParticipantID)
	require.NotNil(t, conflict.SelectionID)
	assert.EqualValues(t, 1, *conflict.SelectionID)

	// 10:00-11:00 против 11:00-12:00 - граничат, НЕ пересекаются
	assert.Nil(t, findLocalConflict(candidate([]int64{11}, selDate(christmas, "11:00", "12:00")), existing))
}

func TestFindLocalConflict_NoSharedParticipant(t *testing.T) {
	christmas := day(2024, 12, 25)

	existing := []domain.Selection{
		selection(1, []int64{11}, selDate(christmas, "10:00", "11:00")),
	}

	// Те же времена, но другой участник
	assert.Nil(t, findLocalConflict(candidate([]int64{22}, selDate(christmas, "10:30", "11:30")), existing))
}

func TestFindLocalConflict_DifferentDays(t *testing.T) {
	existing := []domain.Selection{
		selection(1, []int64{11}, selDate(day(2024, 12, 25), "10:00", "11:00")),
	}

	assert.Nil(t, findLocalConflict(candidate([]int64{11}, selDate(day(2024, 12, 26), "10:00", "11:00")), existing))
}

func TestFindLocalConflict_EditingException(t *testing.T) {
	christmas := day(2024, 12, 25)

	existing := []domain.Selection{
		selection(3, []int64{11}, selDate(christmas, "10:00", "11:00")),
	}

	// Кандидат редактирует активность 3 - она не сравнивается сама с собой
	edited := candidate([]int64{11}, selDate(christmas, "10:30", "11:30"))
	editedID := int64(3)
	edited.EditedSelectionID = &editedID

	assert.Nil(t, findLocalConflict(edited, existing))
}

func TestFindLocalConflict_SameActivityShortCircuit(t *testing.T) {
	christmas := day(2024, 12, 25)

	existing := []domain.Selection{
		selection(1, []int64{11}, selDate(christmas, "10:00", "11:00")),
	}

	// Тот же курс, уровень и набор дат с общим участником - это та же
	// активность (правка на месте), времена не сверяются
	same := candidate([]int64{11}, selDate(christmas, "10:30", "11:30"))
	same.CourseID = 100
	same.DegreeID = 5

	assert.Nil(t, findLocalConflict(same, existing))
}

func TestFindLocalConflict_Symmetric(t *testing.T) {
	christmas := day(2024, 12, 25)

	a := selDate(christmas, "10:00", "11:00")
	b := selDate(christmas, "10:30", "11:30")

	gotAB := findLocalConflict(candidate([]int64{11}, a), []domain.Selection{selection(1, []int64{11}, b)})
	gotBA := findLocalConflict(candidate([]int64{11}, b), []domain.Selection{selection(1, []int64{11}, a)})

	assert.Equal(t, gotAB != nil, gotBA != nil)
	assert.NotNil(t, gotAB)
}

func TestTimesOverlap_Boundaries(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{name: "partial overlap", s1: "10:00", e1: "11:00", s2: "10:30", e2: "11:30", want: true},
		{name: "touching is not overlap", s1: "10:00", e1: "11:00", s2: "11:00", e2: "12:00", want: false},
		{name: "contained", s1: "10:00", e1: "12:00", s2: "10:30", e2: "11:00", want: true},
		{name: "identical", s1: "10:00", e1: "11:00", s2: "10:00", e2: "11:00", want: true},
		{name: "disjoint", s1: "08:00", e1: "09:00", s2: "11:00", e2: "12:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timesOverlap(
				types.TimeString(tt.s1), types.TimeString(tt.e1),
				types.TimeString(tt.s2), types.TimeString(tt.e2),
			)
			assert.Equal(t, tt.want, got)
			// Симметрия
			got = timesOverlap(
				types.TimeString(tt.s2), types.TimeString(tt.e2),
				types.TimeString(tt.s1), types.TimeString(tt.e1),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindLocalConflict_ShortCircuitsOnFirstMatch(t *testing.T) {
	christmas := day(2024, 12, 25)

	existing := []domain.Selection{
		selection(1, []int64{11}, selDate(christmas, "10:00", "11:00")),
		selection(2, []int64{11}, selDate(christmas, "10:15", "11:15")),
	}

	conflict := findLocalConflict(candidate([]int64{11}, selDate(christmas, "10:30", "11:30")), existing)
	require.NotNil(t, conflict)
	require.NotNil(t, conflict.SelectionID)
	assert.EqualValues(t, 1, *conflict.SelectionID)
}
