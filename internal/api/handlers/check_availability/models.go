package check_availability

import (
	allocateSubgroup "github.com/m04kA/CBO-CourseService/internal/usecase/allocate_subgroup"
)

// SubgroupResponse выбранная подгруппа в HTTP ответе
type SubgroupResponse struct {
	SubgroupID      int64  `json:"subgroupId"`
	DegreeID        int64  `json:"degreeId"`
	MonitorID       *int64 `json:"monitorId,omitempty"`
	MaxParticipants int    `json:"maxParticipants"`
	Occupancy       int    `json:"occupancy"`
	FreeSlots       int    `json:"freeSlots"` // -1 - безлимитная подгруппа
	Indicator       string `json:"indicator"` // "4/6", "3/∞"
}

// SubgroupIndicatorResponse занятость одной подгруппы на дате
type SubgroupIndicatorResponse struct {
	SubgroupID int64  `json:"subgroupId"`
	Indicator  string `json:"indicator"`
}

// AvailabilityResponse HTTP ответ проверки вместимости.
// available=false - нормальный исход "нет мест", не ошибка.
type AvailabilityResponse struct {
	Available bool                        `json:"available"`
	Subgroup  *SubgroupResponse           `json:"subgroup,omitempty"`
	Subgroups []SubgroupIndicatorResponse `json:"subgroups,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *allocateSubgroup.Response) *AvailabilityResponse {
	resp := &AvailabilityResponse{Available: result.Available}

	if result.Subgroup != nil {
		sg := &SubgroupResponse{
			SubgroupID:      result.Subgroup.SubgroupID.Int64(),
			DegreeID:        result.Subgroup.DegreeID.Int64(),
			MaxParticipants: result.Subgroup.MaxParticipants,
			Occupancy:       result.Subgroup.Occupancy,
			FreeSlots:       result.Subgroup.FreeSlots,
			Indicator:       result.Subgroup.Indicator,
		}
		if result.Subgroup.MonitorID != nil {
			monitorID := result.Subgroup.MonitorID.Int64()
			sg.MonitorID = &monitorID
		}
		resp.Subgroup = sg
	}

	for _, ind := range result.Subgroups {
		resp.Subgroups = append(resp.Subgroups, SubgroupIndicatorResponse{
			SubgroupID: ind.SubgroupID.Int64(),
			Indicator:  ind.Indicator,
		})
	}

	return resp
}
