package allocate_subgroup

import "github.com/m04kA/CBO-CourseService/pkg/types"

// Request модель запроса подбора подгруппы
type Request struct {
	CourseID    types.NumericID
	DateID      types.NumericID
	DegreeID    types.NumericID
	NeededSlots int
}

// Response модель ответа аллокатора.
// Available=false с пустым Subgroup - нормальный исход "нет мест".
type Response struct {
	Available bool
	Subgroup  *AllocatedSubgroup
	// Subgroups сводка всех подгрупп уровня на дате с индикаторами занятости
	Subgroups []SubgroupIndicator
}

// AllocatedSubgroup выбранная подгруппа
type AllocatedSubgroup struct {
	SubgroupID      types.NumericID
	DegreeID        types.NumericID
	MonitorID       *types.NumericID
	MaxParticipants int
	Occupancy       int
	// FreeSlots свободные места; -1 для безлимитной подгруппы
	FreeSlots int
	// Indicator индикатор занятости "occupied/total"
	Indicator string
}

// SubgroupIndicator занятость одной подгруппы на дате
type SubgroupIndicator struct {
	SubgroupID types.NumericID
	Indicator  string
}
