package domain

// DiscountType тип правила скидки
type DiscountType string

const (
	// DiscountPercentage скидка в процентах от базовой цены
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed фиксированная сумма, вычитаемая из базовой цены
	DiscountFixed DiscountType = "fixed"
)

// DiscountRule is a threshold-activated price reduction: it applies once the
// selection contains at least Days dates.
type DiscountRule struct {
	// Days минимальное количество выбранных дат, активирующее правило
	Days  int
	Type  DiscountType
	Value float64
}

// Apply возвращает размер скидки для базовой цены.
// Процентные правила умножают, фиксированные вычитают плоскую сумму.
func (r DiscountRule) Apply(base float64) float64 {
	switch r.Type {
	case DiscountPercentage:
		return base * r.Value / 100
	case DiscountFixed:
		return r.Value
	default:
		return 0
	}
}

// BestRuleForDays выбирает применимое правило: среди правил с порогом
// days <= selectedCount берется правило с наибольшим порогом
// (ближайший снизу). Возвращает nil, если ни одно правило не подходит.
func BestRuleForDays(rules []DiscountRule, selectedCount int) *DiscountRule {
	var best *DiscountRule
	for i := range rules {
		r := &rules[i]
		if r.Days > selectedCount {
			continue
		}
		if best == nil || r.Days > best.Days {
			best = r
		}
	}
	return best
}
