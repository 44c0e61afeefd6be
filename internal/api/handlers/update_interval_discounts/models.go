package update_interval_discounts

import (
	"github.com/m04kA/CBO-CourseService/internal/domain"
)

// DiscountRuleInput одно правило скидки в HTTP запросе
type DiscountRuleInput struct {
	Days  int     `json:"days"`
	Type  string  `json:"type"` // "percentage" | "fixed"
	Value float64 `json:"value"`
}

// UpdateDiscountsRequest HTTP запрос замены правил интервала целиком
type UpdateDiscountsRequest struct {
	Rules []DiscountRuleInput `json:"rules"`
}

// ToDomainRules конвертирует запрос в domain правила
func (r *UpdateDiscountsRequest) ToDomainRules() []domain.DiscountRule {
	rules := make([]domain.DiscountRule, 0, len(r.Rules))
	for _, in := range r.Rules {
		rules = append(rules, domain.DiscountRule{
			Days:  in.Days,
			Type:  domain.DiscountType(in.Type),
			Value: in.Value,
		})
	}
	return rules
}
