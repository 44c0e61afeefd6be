package domain

import "github.com/m04kA/CBO-CourseService/pkg/types"

// CourseType represents the kind of course
type CourseType string

const (
	CourseCollective CourseType = "collective"
	CoursePrivate    CourseType = "private"
)

// Course represents a course aggregate fetched from the persistence API.
// This is the canonical in-memory shape: all wire variants are normalized
// into it at the integration boundary, core components never see raw DTOs.
type Course struct {
	ID         types.NumericID
	Name       string
	Type       CourseType
	IsFlexible bool
	Price      float64
	MinPrice   *float64
	Currency   string
	Settings   CourseSettings

	Intervals []Interval
	Dates     []CourseDate

	// DiscountRules правила скидок уровня курса (глобальные).
	// Интервал со своими правилами перекрывает их (см. price_selection).
	DiscountRules []DiscountRule

	// PriceRange матрица цен для гибких приватных курсов:
	// строка = длительность, колонки = количество участников
	PriceRange []PriceRangeRow
}

// CourseSettings holds course-level booking rules and the fallback
// date-generation config used by intervals with config_mode = inherit.
type CourseSettings struct {
	MustBeConsecutive  bool
	MustStartFromFirst bool

	DateGenerationMethod DateGenerationMethod
	ConsecutiveDaysCount int
	WeeklyPattern        WeeklyPattern
}

// PriceRangeRow одна строка матрицы цен приватного курса
type PriceRangeRow struct {
	Duration string // например "1h", "1h 30min"
	// Prices цена по количеству участников; отсутствие ключа означает,
	// что для этого количества участников цена не определена
	Prices map[int]float64
}

// IsCollective returns true for collective courses.
func (c *Course) IsCollective() bool {
	return c.Type == CourseCollective
}

// IsPrivate returns true for private courses.
func (c *Course) IsPrivate() bool {
	return c.Type == CoursePrivate
}

// IntervalByID возвращает интервал курса по ID (или nil)
func (c *Course) IntervalByID(id types.NumericID) *Interval {
	for i := range c.Intervals {
		if c.Intervals[i].ID == id {
			return &c.Intervals[i]
		}
	}
	return nil
}

// DateByID возвращает дату курса по ID (или nil)
func (c *Course) DateByID(id types.NumericID) *CourseDate {
	for i := range c.Dates {
		if c.Dates[i].ID == id {
			return &c.Dates[i]
		}
	}
	return nil
}

// DatesOfInterval возвращает все даты курса, принадлежащие интервалу
func (c *Course) DatesOfInterval(intervalID types.NumericID) []CourseDate {
	result := make([]CourseDate, 0)
	for _, d := range c.Dates {
		if d.IntervalID != nil && *d.IntervalID == intervalID {
			result = append(result, d)
		}
	}
	return result
}

// HasPriceForParticipants reports whether the price matrix defines at least
// one price point for the given participant count. Private flexible courses
// with no price point for the needed headcount are excluded from selection,
// never silently priced by the flat fallback.
func (c *Course) HasPriceForParticipants(count int) bool {
	if !c.IsPrivate() || !c.IsFlexible {
		return true
	}
	for _, row := range c.PriceRange {
		if _, ok := row.Prices[count]; ok {
			return true
		}
	}
	return false
}
