package generate_dates

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
)

// generationConfig эффективная конфигурация генерации после разрешения
// config_mode: custom берет настройки интервала, inherit - настройки курса
type generationConfig struct {
	method               domain.DateGenerationMethod
	consecutiveDaysCount int
	weeklyPattern        domain.WeeklyPattern
}

// resolveConfig разрешает конфигурацию генерации для интервала.
// Порядок: собственные настройки интервала, затем fallback на уровень курса.
func resolveConfig(interval *domain.Interval, settings domain.CourseSettings) generationConfig {
	if interval.ConfigMode == domain.ConfigInherit {
		return generationConfig{
			method:               settings.DateGenerationMethod,
			consecutiveDaysCount: settings.ConsecutiveDaysCount,
			weeklyPattern:        settings.WeeklyPattern,
		}
	}

	return generationConfig{
		method:               interval.Method,
		consecutiveDaysCount: interval.ConsecutiveDaysCount,
		weeklyPattern:        interval.WeeklyPattern,
	}
}

// generateDates вычисляет конкретные даты интервала. Чистая функция:
// повторный вызов на неизменных входных данных дает тот же результат,
// что позволяет безопасно перегенерировать даты после редактирования.
func generateDates(interval *domain.Interval, settings domain.CourseSettings) ([]time.Time, []string, error) {
	start := domain.DateOnly(interval.StartDate)
	end := domain.DateOnly(interval.EndDate)

	if end.Before(start) {
		return nil, nil, fmt.Errorf("%w: interval %s", ErrInvalidBounds, interval.ID)
	}

	cfg := resolveConfig(interval, settings)

	var dates []time.Time
	var warnings []string

	switch cfg.method {
	case domain.MethodFirstDay:
		dates = []time.Time{start}

	case domain.MethodConsecutive:
		if cfg.consecutiveDaysCount < domain.MinConsecutiveDays {
			return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidConsecutiveCount, cfg.consecutiveDaysCount)
		}

		available := interval.DaysAvailable()
		count := cfg.consecutiveDaysCount
		if count > available {
			// Серия не помещается в интервал - обрезаем до границы
			// и предупреждаем, это не ошибка
			warnings = append(warnings, fmt.Sprintf(
				"consecutive run of %d days truncated to %d to fit interval end %s",
				cfg.consecutiveDaysCount, available, end.Format(domain.DateFormat)))
			count = available
		}

		for i := 0; i < count; i++ {
			dates = append(dates, start.AddDate(0, 0, i))
		}

	case domain.MethodWeekly:
		if cfg.weeklyPattern.IsEmpty() {
			return nil, nil, ErrEmptyWeeklyPattern
		}

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if cfg.weeklyPattern.Contains(d.Weekday()) {
				dates = append(dates, d)
			}
		}

	case domain.MethodManual:
		// Даты заданы внешним редактором; генератор только проверяет границы
		for _, md := range interval.ManualDates {
			if !interval.ContainsDate(md) {
				return nil, nil, fmt.Errorf("%w: %s not in [%s, %s]",
					ErrManualDateOutOfBounds,
					domain.DateOnly(md).Format(domain.DateFormat),
					start.Format(domain.DateFormat),
					end.Format(domain.DateFormat))
			}
			dates = append(dates, domain.DateOnly(md))
		}

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.method)
	}

	return dedupeSorted(dates), warnings, nil
}

// dedupeSorted убирает дубликаты и сортирует даты по возрастанию
func dedupeSorted(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	result := make([]time.Time, 0, len(dates))

	for _, d := range dates {
		key := d.Format(domain.DateFormat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j]) })
	return result
}

// ValidateIntervals проверяет интервалы курса попарно на пересечение
// диапазонов дат. Пересечение - жесткая ошибка валидации: сохранение
// отклоняется целиком, частичная запись невозможна.
func ValidateIntervals(intervals []domain.Interval) error {
	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			if intervals[i].Overlaps(&intervals[j]) {
				return fmt.Errorf("%w: %q and %q", ErrIntervalsOverlap,
					intervals[i].Name, intervals[j].Name)
			}
		}
	}
	return nil
}
