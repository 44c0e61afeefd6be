package price_selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/ptr"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

func day(d int) time.Time {
	return time.Date(2024, time.December, d, 0, 0, 0, 0, time.UTC)
}

func selected(d int, intervalID int64, price float64) SelectedDate {
	id := types.NumericID(intervalID)
	return SelectedDate{
		Date:       day(d),
		IntervalID: &id,
		Price:      ptr.Ptr(price),
	}
}

func TestPriceSelection_FlexibleWithDiscountThresholds(t *testing.T) {
	course := &domain.Course{
		ID:         1,
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
		DiscountRules: []domain.DiscountRule{
			{Days: 2, Type: domain.DiscountPercentage, Value: 10},
			{Days: 4, Type: domain.DiscountPercentage, Value: 20},
		},
	}

	dates := []SelectedDate{
		selected(2, 10, 50),
		selected(4, 10, 50),
		selected(9, 10, 50),
	}

	quote, err := priceSelection(course, dates, 1, nil)
	require.NoError(t, err)

	// 3 даты проходят порог days=2, но не days=4: применяется 10%
	assert.Equal(t, 150.0, quote.Base)
	assert.Equal(t, 15.0, quote.Discount)
	assert.Equal(t, 135.0, quote.Final)
	require.Len(t, quote.AppliedRules, 1)
	assert.Equal(t, 2, quote.AppliedRules[0].Rule.Days)

	// 4 даты достигают второго порога: применяется 20%
	dates = append(dates, selected(11, 10, 50))
	quote, err = priceSelection(course, dates, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 200.0, quote.Base)
	assert.Equal(t, 40.0, quote.Discount)
	assert.Equal(t, 160.0, quote.Final)
}

func TestPriceSelection_BelowFirstThresholdNoDiscount(t *testing.T) {
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
		DiscountRules: []domain.DiscountRule{
			{Days: 2, Type: domain.DiscountPercentage, Value: 10},
		},
	}

	quote, err := priceSelection(course, []SelectedDate{selected(2, 10, 50)}, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 50.0, quote.Base)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 50.0, quote.Final)
	assert.Empty(t, quote.AppliedRules)
}

func TestPriceSelection_PerDateAverageNeverGrows(t *testing.T) {
	// Средняя цена за дату не растет при добавлении дат: большее
	// количество дат включает как минимум те же скидки
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
		DiscountRules: []domain.DiscountRule{
			{Days: 3, Type: domain.DiscountPercentage, Value: 15},
			{Days: 5, Type: domain.DiscountPercentage, Value: 25},
		},
	}

	prevAvg := 0.0
	var dates []SelectedDate
	for i := 1; i <= 8; i++ {
		dates = append(dates, selected(i, 10, 40))
		quote, err := priceSelection(course, dates, 1, nil)
		require.NoError(t, err)

		avg := quote.Final / float64(len(dates))
		if i > 1 {
			assert.LessOrEqual(t, avg, prevAvg, "average per date grew at %d dates", i)
		}
		prevAvg = avg
	}
}

func TestPriceSelection_Deterministic(t *testing.T) {
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
		DiscountRules: []domain.DiscountRule{
			{Days: 2, Type: domain.DiscountFixed, Value: 30},
		},
	}

	dates := []SelectedDate{
		selected(2, 10, 50),
		selected(4, 20, 60),
		selected(9, 10, 50),
	}

	first, err := priceSelection(course, dates, 2, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := priceSelection(course, dates, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPriceSelection_DiscountsScopedPerInterval(t *testing.T) {
	intervalRules := []domain.DiscountRule{
		{Days: 2, Type: domain.DiscountPercentage, Value: 50},
	}
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
		Intervals: []domain.Interval{
			{ID: 10, DiscountRules: intervalRules},
			{ID: 20},
		},
		DiscountRules: []domain.DiscountRule{
			{Days: 2, Type: domain.DiscountPercentage, Value: 10},
		},
	}

	// Интервал 10 набирает 2 даты и использует собственное правило 50%,
	// интервал 20 с одной датой не достигает глобального порога
	dates := []SelectedDate{
		selected(2, 10, 100),
		selected(4, 10, 100),
		selected(9, 20, 100),
	}

	quote, err := priceSelection(course, dates, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 300.0, quote.Base)
	assert.Equal(t, 100.0, quote.Discount)
	assert.Equal(t, 200.0, quote.Final)
}

func TestPriceSelection_IntervalScopeFiltersDates(t *testing.T) {
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
	}

	dates := []SelectedDate{
		selected(2, 10, 50),
		selected(4, 20, 70),
	}

	scope := types.NumericID(20)
	quote, err := priceSelection(course, dates, 1, &scope)
	require.NoError(t, err)
	assert.Equal(t, 70.0, quote.Base)

	// Область без дат - пустой выбор
	scope = types.NumericID(30)
	_, err = priceSelection(course, dates, 1, &scope)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestPriceFixed_ProRataByIntervalShare(t *testing.T) {
	intervalID := types.NumericID(10)
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: false,
		Price:      400,
		Currency:   "EUR",
		Dates: []domain.CourseDate{
			{ID: 1, IntervalID: &intervalID, Date: day(2)},
			{ID: 2, IntervalID: &intervalID, Date: day(4)},
			{ID: 3, Date: day(9)},
			{ID: 4, Date: day(11)},
		},
	}

	// Вся активность: плоская цена независимо от числа выбранных дат
	quote, err := priceSelection(course, []SelectedDate{selected(2, 10, 0)}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 400.0, quote.Final)

	// Interval-scoped: 2 даты из 4 - половина плоской цены
	scope := types.NumericID(10)
	quote, err = priceSelection(course, []SelectedDate{selected(2, 10, 0), selected(4, 10, 0)}, 1, &scope)
	require.NoError(t, err)
	assert.Equal(t, 200.0, quote.Base)
	assert.Equal(t, 200.0, quote.Final)
	assert.Equal(t, 0.0, quote.Discount)
}

func TestPriceSelection_PrivateMatrixMinimum(t *testing.T) {
	course := &domain.Course{
		Type:       domain.CoursePrivate,
		IsFlexible: true,
		Price:      999,
		Currency:   "EUR",
		PriceRange: []domain.PriceRangeRow{
			{Duration: "1h", Prices: map[int]float64{2: 80, 3: 120}},
			{Duration: "2h", Prices: map[int]float64{2: 70, 4: 140}},
		},
	}

	dates := []SelectedDate{
		selected(2, 10, 0),
		selected(4, 10, 0),
	}

	// Минимум по строкам для 2 участников: 70, а не плоская цена курса
	quote, err := priceSelection(course, dates, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 140.0, quote.Base)

	// Для 5 участников цены нет ни в одной строке: жесткое исключение
	_, err = priceSelection(course, dates, 5, nil)
	assert.ErrorIs(t, err, ErrNoPriceForParticipants)
}

func TestPriceSelection_FallbackUnitPrice(t *testing.T) {
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
		MinPrice:   ptr.Ptr(35.0),
	}

	noPrice := SelectedDate{Date: day(2)}
	quote, err := priceSelection(course, []SelectedDate{noPrice}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 35.0, quote.Base)

	course.Price = 45
	quote, err = priceSelection(course, []SelectedDate{noPrice}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 45.0, quote.Base)
}

func TestPriceSelection_FixedDiscountCappedAtBase(t *testing.T) {
	course := &domain.Course{
		Type:       domain.CourseCollective,
		IsFlexible: true,
		Currency:   "EUR",
		DiscountRules: []domain.DiscountRule{
			{Days: 1, Type: domain.DiscountFixed, Value: 500},
		},
	}

	quote, err := priceSelection(course, []SelectedDate{selected(2, 10, 50)}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, quote.Base)
	assert.Equal(t, 50.0, quote.Discount)
	assert.Equal(t, 0.0, quote.Final)
}
