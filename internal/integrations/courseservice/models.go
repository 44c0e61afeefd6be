package courseservice

import (
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Wire-модели агрегата курса.
//
// Backend исторически отдает поля и в snake_case, и в camelCase, а записи
// участников - и вложенными в подгруппы (booking_users), и отдельным плоским
// списком активных записей на дату (booking_users_active). Здесь объявлены
// оба варианта каждого поля; выбор канонического значения происходит в
// normalize.go, дальше wire-модели не утекают.

type courseWire struct {
	ID   types.NumericID `json:"id"`
	Name string          `json:"name"`

	CourseType      string `json:"course_type,omitempty"`
	CourseTypeCamel string `json:"courseType,omitempty"`

	IsFlexible      *bool `json:"is_flexible,omitempty"`
	IsFlexibleCamel *bool `json:"isFlexible,omitempty"`

	Price    float64  `json:"price"`
	MinPrice *float64 `json:"min_price,omitempty"`
	Currency string   `json:"currency"`

	Settings      *settingsWire `json:"settings,omitempty"`
	SettingsCamel *settingsWire `json:"courseSettings,omitempty"`

	Intervals []intervalWire `json:"intervals"`

	Dates      []courseDateWire `json:"course_dates,omitempty"`
	DatesCamel []courseDateWire `json:"courseDates,omitempty"`

	DiscountRules      []discountRuleWire `json:"discounts,omitempty"`
	DiscountRulesCamel []discountRuleWire `json:"discountRules,omitempty"`

	PriceRange []priceRangeRowWire `json:"price_range,omitempty"`
}

type settingsWire struct {
	MustBeConsecutive      *bool `json:"must_be_consecutive,omitempty"`
	MustBeConsecutiveCamel *bool `json:"mustBeConsecutive,omitempty"`

	MustStartFromFirst      *bool `json:"must_start_from_first,omitempty"`
	MustStartFromFirstCamel *bool `json:"mustStartFromFirst,omitempty"`

	DateGenerationMethod      string `json:"date_generation_method,omitempty"`
	DateGenerationMethodCamel string `json:"dateGenerationMethod,omitempty"`

	ConsecutiveDaysCount      int `json:"consecutive_days_count,omitempty"`
	ConsecutiveDaysCountCamel int `json:"consecutiveDaysCount,omitempty"`

	WeeklyPattern      *weeklyPatternWire `json:"weekly_pattern,omitempty"`
	WeeklyPatternCamel *weeklyPatternWire `json:"weeklyPattern,omitempty"`
}

type weeklyPatternWire struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

type intervalWire struct {
	ID   types.NumericID `json:"id"`
	Name string          `json:"name"`

	StartDate      string `json:"start_date,omitempty"`
	StartDateCamel string `json:"startDate,omitempty"`

	EndDate      string `json:"end_date,omitempty"`
	EndDateCamel string `json:"endDate,omitempty"`

	ConfigMode      string `json:"config_mode,omitempty"`
	ConfigModeCamel string `json:"configMode,omitempty"`

	Method      string `json:"date_generation_method,omitempty"`
	MethodCamel string `json:"dateGenerationMethod,omitempty"`

	BookingMode      string `json:"booking_mode,omitempty"`
	BookingModeCamel string `json:"bookingMode,omitempty"`

	DisplayOrder      int `json:"display_order,omitempty"`
	DisplayOrderCamel int `json:"displayOrder,omitempty"`

	ConsecutiveDaysCount      int `json:"consecutive_days_count,omitempty"`
	ConsecutiveDaysCountCamel int `json:"consecutiveDaysCount,omitempty"`

	WeeklyPattern      *weeklyPatternWire `json:"weekly_pattern,omitempty"`
	WeeklyPatternCamel *weeklyPatternWire `json:"weeklyPattern,omitempty"`

	ManualDates      []string `json:"manual_dates,omitempty"`
	ManualDatesCamel []string `json:"manualDates,omitempty"`

	DiscountRules      []discountRuleWire `json:"discounts,omitempty"`
	DiscountRulesCamel []discountRuleWire `json:"discountRules,omitempty"`
}

type courseDateWire struct {
	ID         types.NumericID  `json:"id"`
	IntervalID *types.NumericID `json:"interval_id,omitempty"`

	IntervalIDCamel *types.NumericID `json:"intervalId,omitempty"`

	Date string `json:"date"`

	StartTime      string `json:"hour_start,omitempty"`
	StartTimeCamel string `json:"startTime,omitempty"`

	EndTime      string `json:"hour_end,omitempty"`
	EndTimeCamel string `json:"endTime,omitempty"`

	Groups      []courseGroupWire `json:"course_groups,omitempty"`
	GroupsCamel []courseGroupWire `json:"courseGroups,omitempty"`

	// Плоский список активных записей на дату - альтернативный источник
	// занятости, когда подгруппы приходят без вложенных booking_users
	ActiveBookings      []bookingUserWire `json:"booking_users_active,omitempty"`
	ActiveBookingsCamel []bookingUserWire `json:"bookingUsersActive,omitempty"`
}

type courseGroupWire struct {
	ID types.NumericID `json:"id"`

	DegreeID      types.NumericID `json:"degree_id,omitempty"`
	DegreeIDCamel types.NumericID `json:"degreeId,omitempty"`

	Subgroups      []courseSubgroupWire `json:"course_subgroups,omitempty"`
	SubgroupsCamel []courseSubgroupWire `json:"courseSubgroups,omitempty"`
}

type courseSubgroupWire struct {
	ID types.NumericID `json:"id"`

	DegreeID      types.NumericID `json:"degree_id,omitempty"`
	DegreeIDCamel types.NumericID `json:"degreeId,omitempty"`

	MaxParticipants      *int `json:"max_participants,omitempty"`
	MaxParticipantsCamel *int `json:"maxParticipants,omitempty"`

	MonitorID      *types.NumericID `json:"monitor_id,omitempty"`
	MonitorIDCamel *types.NumericID `json:"monitorId,omitempty"`

	Bookings      []bookingUserWire `json:"booking_users,omitempty"`
	BookingsCamel []bookingUserWire `json:"bookingUsers,omitempty"`
}

type bookingUserWire struct {
	ID types.NumericID `json:"id"`

	ParticipantID      types.NumericID `json:"client_id,omitempty"`
	ParticipantIDCamel types.NumericID `json:"clientId,omitempty"`

	CourseDateID      types.NumericID `json:"course_date_id,omitempty"`
	CourseDateIDCamel types.NumericID `json:"courseDateId,omitempty"`

	SubgroupID      types.NumericID `json:"course_subgroup_id,omitempty"`
	SubgroupIDCamel types.NumericID `json:"courseSubgroupId,omitempty"`

	DegreeID      types.NumericID `json:"degree_id,omitempty"`
	DegreeIDCamel types.NumericID `json:"degreeId,omitempty"`

	Status   string `json:"status,omitempty"`
	Attended *bool  `json:"attended,omitempty"`
}

type discountRuleWire struct {
	Days  int     `json:"days"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type priceRangeRowWire struct {
	Duration string             `json:"duration"`
	Prices   map[string]float64 `json:"prices"`
}

// AvailabilityRequest запрос серверной проверки пересечений (§6)
type AvailabilityRequest struct {
	ParticipantIDs []types.NumericID `json:"participantIds"`
	Date           string            `json:"date"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
}

// ConflictingSlot пересекающийся слот, возвращаемый backend'ом
type ConflictingSlot struct {
	ParticipantID types.NumericID `json:"participantId"`
	Date          string          `json:"date"`
	StartTime     string          `json:"startTime"`
	EndTime       string          `json:"endTime"`
	CourseName    string          `json:"courseName,omitempty"`
}

// AvailabilityResult результат серверной проверки пересечений
type AvailabilityResult struct {
	Available bool              `json:"available"`
	Conflicts []ConflictingSlot `json:"conflicts,omitempty"`
}

// BookingCommit запрос на фиксацию одной staged-активности
type BookingCommit struct {
	CourseID       types.NumericID   `json:"courseId"`
	DegreeID       types.NumericID   `json:"degreeId"`
	SubgroupID     types.NumericID   `json:"subgroupId"`
	ParticipantIDs []types.NumericID `json:"participantIds"`
	Dates          []BookingDate     `json:"dates"`
}

// BookingDate одна дата фиксируемой активности
type BookingDate struct {
	CourseDateID types.NumericID `json:"courseDateId"`
	Date         string          `json:"date"`
	StartTime    string          `json:"startTime"`
	EndTime      string          `json:"endTime"`
}

// BookingResult результат фиксации бронирования
type BookingResult struct {
	BookingID types.NumericID `json:"bookingId"`
}

type generateDatesResponse struct {
	Count int `json:"count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
