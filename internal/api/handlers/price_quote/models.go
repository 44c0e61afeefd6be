package price_quote

import (
	"fmt"
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	priceSelection "github.com/m04kA/CBO-CourseService/internal/usecase/price_selection"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// SelectedDateInput одна выбранная дата в HTTP запросе
type SelectedDateInput struct {
	Date       string           `json:"date"` // "2025-10-15"
	IntervalID *types.NumericID `json:"intervalId,omitempty"`
	Price      *float64         `json:"price,omitempty"`
}

// PriceQuoteRequest HTTP запрос расчета цены
type PriceQuoteRequest struct {
	CourseID         types.NumericID     `json:"courseId"`
	ParticipantCount int                 `json:"participantCount"`
	IntervalID       *types.NumericID    `json:"intervalId,omitempty"`
	Dates            []SelectedDateInput `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *PriceQuoteRequest) ToUseCaseRequest() (*priceSelection.Request, error) {
	dates := make([]priceSelection.SelectedDate, 0, len(r.Dates))
	for _, d := range r.Dates {
		day, err := time.Parse(domain.DateFormat, d.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", d.Date, err)
		}
		dates = append(dates, priceSelection.SelectedDate{
			Date:       day,
			IntervalID: d.IntervalID,
			Price:      d.Price,
		})
	}

	return &priceSelection.Request{
		CourseID:         r.CourseID,
		SelectedDates:    dates,
		ParticipantCount: r.ParticipantCount,
		IntervalID:       r.IntervalID,
	}, nil
}

// AppliedRuleResponse примененное правило скидки в HTTP ответе
type AppliedRuleResponse struct {
	IntervalID *int64  `json:"intervalId,omitempty"`
	Days       int     `json:"days"`
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	DatesCount int     `json:"datesCount"`
	Amount     float64 `json:"amount"`
}

// PriceQuoteResponse HTTP ответ расчета цены
type PriceQuoteResponse struct {
	CourseID     int64                 `json:"courseId"`
	Base         float64               `json:"base"`
	Discount     float64               `json:"discount"`
	Final        float64               `json:"final"`
	Currency     string                `json:"currency"`
	AppliedRules []AppliedRuleResponse `json:"appliedRules,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *priceSelection.Response) *PriceQuoteResponse {
	resp := &PriceQuoteResponse{
		CourseID: result.CourseID.Int64(),
		Base:     result.Quote.Base,
		Discount: result.Quote.Discount,
		Final:    result.Quote.Final,
		Currency: result.Quote.Currency,
	}

	for _, rule := range result.Quote.AppliedRules {
		applied := AppliedRuleResponse{
			Days:       rule.Rule.Days,
			Type:       string(rule.Rule.Type),
			Value:      rule.Rule.Value,
			DatesCount: rule.DatesCount,
			Amount:     rule.Amount,
		}
		if rule.IntervalID != nil {
			intervalID := rule.IntervalID.Int64()
			applied.IntervalID = &intervalID
		}
		resp.AppliedRules = append(resp.AppliedRules, applied)
	}

	return resp
}
