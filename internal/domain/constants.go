package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinDiscountDays    = 1
	MaxDiscountPercent = 100
	MinConsecutiveDays = 1
	MaxConsecutiveDays = 365
)

// UnlimitedParticipants значение max_participants, означающее отсутствие лимита
const UnlimitedParticipants = 0

// OccupancyUnlimitedMark отображение безлимитной вместимости в индикаторе "occupied/total"
const OccupancyUnlimitedMark = "∞"
