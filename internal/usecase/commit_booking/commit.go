package commit_booking

import (
	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/internal/usecase/allocate_subgroup"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// matchCourseDates сопоставляет даты staged-активности с датами расписания
// курса. Сопоставление по календарному дню; при нескольких слотах в один
// день уточняется временем начала. Несопоставленная дата означает, что
// расписание изменилось после выбора.
func matchCourseDates(course *domain.Course, dates []domain.SelectionDate) ([]*domain.CourseDate, error) {
	matched := make([]*domain.CourseDate, 0, len(dates))

	for _, d := range dates {
		var found *domain.CourseDate
		for i := range course.Dates {
			cd := &course.Dates[i]
			if !domain.SameDay(cd.Date, d.Date) {
				continue
			}
			if !d.StartTime.IsZero() && !cd.StartTime.IsZero() && cd.StartTime != d.StartTime {
				continue
			}
			found = cd
			break
		}
		if found == nil {
			return nil, ErrDateMismatch
		}
		matched = append(matched, found)
	}

	return matched, nil
}

// chooseSubgroup выбирает подгруппу, вмещающую участников на каждой дате
// активности. First-fit по первой дате, затем проверка вместимости той же
// подгруппы на остальных датах; при неудаче - следующий кандидат первой даты.
//
// Возвращает nil, если ни одна подгруппа не проходит по всем датам.
func chooseSubgroup(dates []*domain.CourseDate, degreeID types.NumericID, neededSlots int) *domain.CourseSubgroup {
	if len(dates) == 0 {
		return nil
	}

	group := dates[0].GroupByDegree(degreeID)
	if group == nil {
		return nil
	}

	for i := range group.Subgroups {
		candidate := &group.Subgroups[i]
		if !candidate.HasCapacityFor(neededSlots) {
			continue
		}
		if fitsAllDates(candidate.ID, dates[1:], degreeID, neededSlots) {
			return candidate
		}
	}

	return nil
}

// fitsAllDates проверяет вместимость подгруппы с данным ID на каждой дате
func fitsAllDates(subgroupID types.NumericID, dates []*domain.CourseDate, degreeID types.NumericID, neededSlots int) bool {
	for _, cd := range dates {
		group := cd.GroupByDegree(degreeID)
		if group == nil {
			return false
		}

		ok := false
		for i := range group.Subgroups {
			if group.Subgroups[i].ID != subgroupID {
				continue
			}
			ok = group.Subgroups[i].HasCapacityFor(neededSlots)
			break
		}
		if !ok {
			return false
		}
	}
	return true
}

// occupancyIndicator строит индикатор занятости выбранной подгруппы для лога
func occupancyIndicator(sg *domain.CourseSubgroup) string {
	return allocate_subgroup.FormatOccupancy(sg.Occupancy(), sg.MaxParticipants)
}
