package price_selection

import (
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// SelectedDate одна выбранная дата с опциональной собственной ценой
type SelectedDate struct {
	Date       time.Time
	IntervalID *types.NumericID
	// Price цена конкретной даты; nil - используется fallback
	// (цена курса, затем min_price)
	Price *float64
}

// Request модель запроса расчета цены
type Request struct {
	CourseID         types.NumericID
	SelectedDates    []SelectedDate
	ParticipantCount int
	// IntervalID ограничивает расчет датами одного интервала
	// (interval-scoped вариант); nil - вся активность
	IntervalID *types.NumericID
}

// Quote результат расчета цены
type Quote struct {
	Base     float64
	Discount float64
	Final    float64
	Currency string
	// AppliedRules правила скидок, примененные по интервалам
	AppliedRules []AppliedRule
}

// AppliedRule примененное правило с контекстом для отображения
type AppliedRule struct {
	IntervalID *types.NumericID
	Rule       domain.DiscountRule
	DatesCount int
	Amount     float64
}

// Response модель ответа расчета цены
type Response struct {
	CourseID types.NumericID
	Quote    Quote
}
