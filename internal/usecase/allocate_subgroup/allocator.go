package allocate_subgroup

import (
	"fmt"
	"sort"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// FindSubgroup находит подгруппу с достаточной свободной вместимостью для
// указанного уровня на указанной дате. Строгий first-fit: подгруппы
// сканируются в порядке хранения, возвращается первая подходящая - никакой
// балансировки, повторный вызов на неизменных данных дает ту же подгруппу.
//
// Возвращает nil, если группы для уровня нет или все подгруппы заполнены.
// Это нормальный исход ("нет мест"), не ошибка; вызывающий не имеет права
// молча переключаться на другой уровень.
func FindSubgroup(courseDate *domain.CourseDate, degreeID types.NumericID, neededSlots int) *domain.CourseSubgroup {
	group := courseDate.GroupByDegree(degreeID)
	if group == nil {
		return nil
	}

	for i := range group.Subgroups {
		if group.Subgroups[i].HasCapacityFor(neededSlots) {
			return &group.Subgroups[i]
		}
	}

	return nil
}

// AggregateOccupancy считает суммарную занятость подгруппы по всем датам
// курса: уникальные активные участники на каждой дате складываются.
// Используется для индикаторов "current/total" в интерфейсе.
func AggregateOccupancy(course *domain.Course, subgroupID types.NumericID) int {
	total := 0
	for i := range course.Dates {
		for j := range course.Dates[i].Groups {
			for k := range course.Dates[i].Groups[j].Subgroups {
				sg := &course.Dates[i].Groups[j].Subgroups[k]
				if sg.ID == subgroupID {
					total += sg.Occupancy()
				}
			}
		}
	}
	return total
}

// SubgroupSummary сводка по подгруппе для списков в интерфейсе
type SubgroupSummary struct {
	// Index порядковый номер после сортировки (с нуля)
	Index      int
	SubgroupID types.NumericID
	DegreeID   types.NumericID
	// MaxParticipants 0 = без лимита
	MaxParticipants int
	// Occupancy суммарная занятость по датам интервала
	Occupancy int
	// HasBookings true, если в подгруппе есть хотя бы одна активная запись
	HasBookings bool
}

// SubgroupsForDegree возвращает уникальные подгруппы уровня по всем датам
// интервала. Подгруппы с записями идут раньше пустых (интерфейс показывает
// активные группы первыми), внутри каждой части порядок стабилен по ID;
// после сортировки подгруппы переиндексируются.
func SubgroupsForDegree(course *domain.Course, intervalID, degreeID types.NumericID) []SubgroupSummary {
	seen := make(map[types.NumericID]*SubgroupSummary)
	order := make([]types.NumericID, 0)

	for _, courseDate := range course.DatesOfInterval(intervalID) {
		group := courseDate.GroupByDegree(degreeID)
		if group == nil {
			continue
		}

		for i := range group.Subgroups {
			sg := &group.Subgroups[i]

			summary, ok := seen[sg.ID]
			if !ok {
				summary = &SubgroupSummary{
					SubgroupID:      sg.ID,
					DegreeID:        sg.DegreeID,
					MaxParticipants: sg.MaxParticipants,
				}
				seen[sg.ID] = summary
				order = append(order, sg.ID)
			}

			summary.Occupancy += sg.Occupancy()
			if sg.HasBookings() {
				summary.HasBookings = true
			}
		}
	}

	result := make([]SubgroupSummary, 0, len(order))
	for _, id := range order {
		result = append(result, *seen[id])
	}

	// Сначала подгруппы с записями, внутри частей - стабильно по ID
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].HasBookings != result[j].HasBookings {
			return result[i].HasBookings
		}
		return result[i].SubgroupID < result[j].SubgroupID
	})

	for i := range result {
		result[i].Index = i
	}

	return result
}

// FormatOccupancy форматирует индикатор занятости "occupied/total".
// Формат - стабильный внешний контракт, его потребляют компоненты
// отображения. Безлимитная вместимость обозначается "∞".
func FormatOccupancy(occupied, maxParticipants int) string {
	if maxParticipants == domain.UnlimitedParticipants {
		return fmt.Sprintf("%d/%s", occupied, domain.OccupancyUnlimitedMark)
	}
	return fmt.Sprintf("%d/%d", occupied, maxParticipants)
}
