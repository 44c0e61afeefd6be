package domain

import (
	"time"

	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// ConfigMode определяет, откуда интервал берет правила генерации дат
type ConfigMode string

const (
	// ConfigInherit интервал использует настройки уровня курса
	ConfigInherit ConfigMode = "inherit"
	// ConfigCustom интервал использует собственные настройки
	ConfigCustom ConfigMode = "custom"
)

// DateGenerationMethod способ генерации конкретных дат интервала
type DateGenerationMethod string

const (
	// MethodFirstDay единственная дата - первый день интервала
	MethodFirstDay DateGenerationMethod = "first_day"
	// MethodConsecutive N последовательных дней с начала интервала
	MethodConsecutive DateGenerationMethod = "consecutive"
	// MethodWeekly все даты интервала, чей день недели отмечен в паттерне
	MethodWeekly DateGenerationMethod = "weekly"
	// MethodManual даты задаются вручную внешним редактором
	MethodManual DateGenerationMethod = "manual"
)

// BookingMode режим бронирования дат интервала
type BookingMode string

const (
	// BookingFlexible клиент выбирает произвольные даты интервала
	BookingFlexible BookingMode = "flexible"
	// BookingPackage интервал бронируется целиком
	BookingPackage BookingMode = "package"
)

// WeeklyPattern набор флагов дней недели для метода weekly
type WeeklyPattern struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// IsEmpty returns true if no weekday is flagged.
func (p WeeklyPattern) IsEmpty() bool {
	return !p.Monday && !p.Tuesday && !p.Wednesday && !p.Thursday &&
		!p.Friday && !p.Saturday && !p.Sunday
}

// Contains reports whether the given weekday is flagged in the pattern.
func (p WeeklyPattern) Contains(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return p.Monday
	case time.Tuesday:
		return p.Tuesday
	case time.Wednesday:
		return p.Wednesday
	case time.Thursday:
		return p.Thursday
	case time.Friday:
		return p.Friday
	case time.Saturday:
		return p.Saturday
	case time.Sunday:
		return p.Sunday
	default:
		return false
	}
}

// Interval represents a named sub-period of a course with its own
// date-generation rule and optionally its own discount rules.
type Interval struct {
	ID           types.NumericID
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	ConfigMode   ConfigMode
	Method       DateGenerationMethod
	BookingMode  BookingMode
	DisplayOrder int

	ConsecutiveDaysCount int
	WeeklyPattern        WeeklyPattern

	// ManualDates даты, заданные внешним редактором (метод manual)
	ManualDates []time.Time

	// DiscountRules правила скидок интервала; непустой список
	// перекрывает глобальные правила курса
	DiscountRules []DiscountRule
}

// Overlaps reports whether two intervals' date ranges intersect.
// Ranges are inclusive on both ends: touching boundaries do overlap.
func (i *Interval) Overlaps(other *Interval) bool {
	return !i.StartDate.After(other.EndDate) && !other.StartDate.After(i.EndDate)
}

// ContainsDate reports whether the date lies within [StartDate, EndDate].
func (i *Interval) ContainsDate(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(i.StartDate)) && !d.After(DateOnly(i.EndDate))
}

// DaysAvailable количество календарных дней от StartDate до EndDate включительно
func (i *Interval) DaysAvailable() int {
	start := DateOnly(i.StartDate)
	end := DateOnly(i.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateOnly обнуляет компонент времени, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
