package price_selection

import (
	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Чистый расчет цены. Никаких обращений к часам или генераторам случайных
// чисел: одинаковые входы всегда дают одинаковый Quote, что позволяет
// интерфейсу кэшировать результаты, а тестам - сверять точные значения.

// priceSelection считает цену выбранных дат курса.
// scopeInterval != nil ограничивает расчет датами одного интервала.
func priceSelection(course *domain.Course, dates []SelectedDate, participantCount int, scopeInterval *types.NumericID) (*Quote, error) {
	if scopeInterval != nil {
		dates = filterByInterval(dates, *scopeInterval)
	}

	if len(dates) == 0 {
		return nil, ErrEmptySelection
	}

	// Фиксированные (негибкие) коллективные курсы: плоская цена курса,
	// при interval-scoped запросе - пропорциональная доля по числу дат
	if course.IsCollective() && !course.IsFlexible {
		return priceFixed(course, dates, scopeInterval), nil
	}

	return priceFlexible(course, dates, participantCount)
}

// priceFixed плоская цена с pro-rata разбивкой по интервалам
func priceFixed(course *domain.Course, dates []SelectedDate, scopeInterval *types.NumericID) *Quote {
	price := course.Price

	if scopeInterval != nil && len(course.Dates) > 0 {
		// Доля интервала = его даты / все даты курса
		intervalDates := len(course.DatesOfInterval(*scopeInterval))
		price = course.Price * float64(intervalDates) / float64(len(course.Dates))
	}

	return &Quote{
		Base:     price,
		Discount: 0,
		Final:    price,
		Currency: course.Currency,
	}
}

// priceFlexible цена гибкого курса: сумма цен дат минус скидки по интервалам.
// Скидки применяются на уровне интервала: порог правила сравнивается с
// количеством выбранных дат именно этого интервала, правила интервала
// перекрывают глобальные правила курса.
func priceFlexible(course *domain.Course, dates []SelectedDate, participantCount int) (*Quote, error) {
	quote := &Quote{Currency: course.Currency}

	for _, group := range groupByInterval(dates) {
		base, err := intervalBase(course, group.dates, participantCount)
		if err != nil {
			return nil, err
		}

		rules := rulesForInterval(course, group.intervalID)
		rule := domain.BestRuleForDays(rules, len(group.dates))

		discount := 0.0
		if rule != nil {
			discount = rule.Apply(base)
			if discount > base {
				discount = base
			}
			quote.AppliedRules = append(quote.AppliedRules, AppliedRule{
				IntervalID: group.intervalID,
				Rule:       *rule,
				DatesCount: len(group.dates),
				Amount:     discount,
			})
		}

		quote.Base += base
		quote.Discount += discount
	}

	quote.Final = quote.Base - quote.Discount
	// Итог никогда не уходит в минус
	if quote.Final < 0 {
		quote.Final = 0
	}

	return quote, nil
}

// intervalBase базовая цена дат одного интервала
func intervalBase(course *domain.Course, dates []SelectedDate, participantCount int) (float64, error) {
	// Приватный гибкий курс: единая цена за дату из матрицы
	if course.IsPrivate() && course.IsFlexible {
		unit, err := privateUnitPrice(course, participantCount)
		if err != nil {
			return 0, err
		}
		return unit * float64(len(dates)), nil
	}

	base := 0.0
	for _, d := range dates {
		if d.Price != nil {
			base += *d.Price
			continue
		}
		base += fallbackUnitPrice(course)
	}
	return base, nil
}

// privateUnitPrice цена одной даты приватного курса: минимум по всем строкам
// длительности для запрошенного количества участников. Отсутствие цены -
// жесткое исключение курса, не fallback на плоскую цену.
func privateUnitPrice(course *domain.Course, participantCount int) (float64, error) {
	found := false
	min := 0.0

	for _, row := range course.PriceRange {
		price, ok := row.Prices[participantCount]
		if !ok {
			continue
		}
		if !found || price < min {
			min = price
			found = true
		}
	}

	if !found {
		return 0, ErrNoPriceForParticipants
	}

	return min, nil
}

// fallbackUnitPrice цена даты без собственной цены: цена курса, затем min_price
func fallbackUnitPrice(course *domain.Course) float64 {
	if course.Price > 0 {
		return course.Price
	}
	if course.MinPrice != nil {
		return *course.MinPrice
	}
	return 0
}

// rulesForInterval правила скидок в области интервала: непустой список
// правил интервала перекрывает глобальные правила курса
func rulesForInterval(course *domain.Course, intervalID *types.NumericID) []domain.DiscountRule {
	if intervalID != nil {
		if interval := course.IntervalByID(*intervalID); interval != nil && len(interval.DiscountRules) > 0 {
			return interval.DiscountRules
		}
	}
	return course.DiscountRules
}

// intervalGroup даты одного интервала (nil - даты вне интервалов)
type intervalGroup struct {
	intervalID *types.NumericID
	dates      []SelectedDate
}

// groupByInterval группирует выбранные даты по интервалам, сохраняя порядок
// первого появления интервала
func groupByInterval(dates []SelectedDate) []intervalGroup {
	index := make(map[types.NumericID]int)
	groups := make([]intervalGroup, 0)
	noInterval := -1

	for _, d := range dates {
		if d.IntervalID == nil {
			if noInterval == -1 {
				noInterval = len(groups)
				groups = append(groups, intervalGroup{})
			}
			groups[noInterval].dates = append(groups[noInterval].dates, d)
			continue
		}

		i, ok := index[*d.IntervalID]
		if !ok {
			i = len(groups)
			index[*d.IntervalID] = i
			id := *d.IntervalID
			groups = append(groups, intervalGroup{intervalID: &id})
		}
		groups[i].dates = append(groups[i].dates, d)
	}

	return groups
}

// filterByInterval оставляет только даты указанного интервала
func filterByInterval(dates []SelectedDate, intervalID types.NumericID) []SelectedDate {
	result := make([]SelectedDate, 0, len(dates))
	for _, d := range dates {
		if d.IntervalID != nil && *d.IntervalID == intervalID {
			result = append(result, d)
		}
	}
	return result
}
