package get_interval_discounts

import (
	"github.com/m04kA/CBO-CourseService/internal/domain"
)

// DiscountRuleResponse одно правило скидки в HTTP ответе
type DiscountRuleResponse struct {
	Days  int     `json:"days"`
	Type  string  `json:"type"` // "percentage" | "fixed"
	Value float64 `json:"value"`
}

// DiscountsResponse HTTP ответ со списком правил интервала
type DiscountsResponse struct {
	IntervalID int64                  `json:"intervalId"`
	Rules      []DiscountRuleResponse `json:"rules"`
}

// FromDomainRules конвертирует domain правила в HTTP модель
func FromDomainRules(intervalID int64, rules []domain.DiscountRule) *DiscountsResponse {
	result := make([]DiscountRuleResponse, 0, len(rules))
	for _, r := range rules {
		result = append(result, DiscountRuleResponse{
			Days:  r.Days,
			Type:  string(r.Type),
			Value: r.Value,
		})
	}
	return &DiscountsResponse{
		IntervalID: intervalID,
		Rules:      result,
	}
}
