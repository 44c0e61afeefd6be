package courseservice

import (
	"fmt"
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Нормализация wire-агрегата в каноническую доменную схему.
// Это единственное место, где разбираются варианты именования и вложенности
// backend'а; ядро работает только с domain-типами.

func normalizeCourse(w *courseWire) (*domain.Course, error) {
	course := &domain.Course{
		ID:         w.ID,
		Name:       w.Name,
		Type:       domain.CourseType(pickString(w.CourseType, w.CourseTypeCamel)),
		IsFlexible: pickBool(w.IsFlexible, w.IsFlexibleCamel),
		Price:      w.Price,
		MinPrice:   w.MinPrice,
		Currency:   w.Currency,
	}

	if s := pickSettings(w.Settings, w.SettingsCamel); s != nil {
		course.Settings = normalizeSettings(s)
	}

	for i := range w.Intervals {
		interval, err := normalizeInterval(&w.Intervals[i])
		if err != nil {
			return nil, err
		}
		course.Intervals = append(course.Intervals, *interval)
	}

	for _, dw := range pickDates(w.Dates, w.DatesCamel) {
		courseDate, err := normalizeCourseDate(&dw)
		if err != nil {
			return nil, err
		}
		course.Dates = append(course.Dates, *courseDate)
	}

	course.DiscountRules = normalizeRules(pickRules(w.DiscountRules, w.DiscountRulesCamel))
	course.PriceRange = normalizePriceRange(w.PriceRange)

	return course, nil
}

func normalizeSettings(w *settingsWire) domain.CourseSettings {
	settings := domain.CourseSettings{
		MustBeConsecutive:    pickBool(w.MustBeConsecutive, w.MustBeConsecutiveCamel),
		MustStartFromFirst:   pickBool(w.MustStartFromFirst, w.MustStartFromFirstCamel),
		DateGenerationMethod: domain.DateGenerationMethod(pickString(w.DateGenerationMethod, w.DateGenerationMethodCamel)),
		ConsecutiveDaysCount: pickInt(w.ConsecutiveDaysCount, w.ConsecutiveDaysCountCamel),
	}

	if p := pickPattern(w.WeeklyPattern, w.WeeklyPatternCamel); p != nil {
		settings.WeeklyPattern = normalizePattern(p)
	}

	return settings
}

func normalizeInterval(w *intervalWire) (*domain.Interval, error) {
	startDate, err := parseWireDate(pickString(w.StartDate, w.StartDateCamel))
	if err != nil {
		return nil, fmt.Errorf("%w: interval %d start_date: %v", ErrInvalidResponse, w.ID, err)
	}

	endDate, err := parseWireDate(pickString(w.EndDate, w.EndDateCamel))
	if err != nil {
		return nil, fmt.Errorf("%w: interval %d end_date: %v", ErrInvalidResponse, w.ID, err)
	}

	interval := &domain.Interval{
		ID:                   w.ID,
		Name:                 w.Name,
		StartDate:            startDate,
		EndDate:              endDate,
		ConfigMode:           domain.ConfigMode(pickString(w.ConfigMode, w.ConfigModeCamel)),
		Method:               domain.DateGenerationMethod(pickString(w.Method, w.MethodCamel)),
		BookingMode:          domain.BookingMode(pickString(w.BookingMode, w.BookingModeCamel)),
		DisplayOrder:         pickInt(w.DisplayOrder, w.DisplayOrderCamel),
		ConsecutiveDaysCount: pickInt(w.ConsecutiveDaysCount, w.ConsecutiveDaysCountCamel),
	}

	// Пустой config_mode трактуем как custom - так ведет себя backend
	if interval.ConfigMode == "" {
		interval.ConfigMode = domain.ConfigCustom
	}

	if p := pickPattern(w.WeeklyPattern, w.WeeklyPatternCamel); p != nil {
		interval.WeeklyPattern = normalizePattern(p)
	}

	for _, raw := range pickStrings(w.ManualDates, w.ManualDatesCamel) {
		d, err := parseWireDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: interval %d manual date: %v", ErrInvalidResponse, w.ID, err)
		}
		interval.ManualDates = append(interval.ManualDates, d)
	}

	interval.DiscountRules = normalizeRules(pickRules(w.DiscountRules, w.DiscountRulesCamel))

	return interval, nil
}

func normalizeCourseDate(w *courseDateWire) (*domain.CourseDate, error) {
	d, err := parseWireDate(w.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: course date %d: %v", ErrInvalidResponse, w.ID, err)
	}

	courseDate := &domain.CourseDate{
		ID:         w.ID,
		IntervalID: pickIDPtr(w.IntervalID, w.IntervalIDCamel),
		Date:       d,
		StartTime:  types.TimeString(pickString(w.StartTime, w.StartTimeCamel)),
		EndTime:    types.TimeString(pickString(w.EndTime, w.EndTimeCamel)),
	}

	flat := pickBookings(w.ActiveBookings, w.ActiveBookingsCamel)

	for _, gw := range pickGroups(w.Groups, w.GroupsCamel) {
		group := domain.CourseGroup{
			ID:       gw.ID,
			DegreeID: pickID(gw.DegreeID, gw.DegreeIDCamel),
		}

		for _, sw := range pickSubgroups(gw.Subgroups, gw.SubgroupsCamel) {
			subgroup := domain.CourseSubgroup{
				ID:              sw.ID,
				DegreeID:        pickID(sw.DegreeID, sw.DegreeIDCamel),
				MaxParticipants: pickIntPtr(sw.MaxParticipants, sw.MaxParticipantsCamel),
				MonitorID:       pickIDPtr(sw.MonitorID, sw.MonitorIDCamel),
			}

			embedded := pickBookings(sw.Bookings, sw.BookingsCamel)
			if len(embedded) > 0 {
				// Вложенная структура - предпочтительный источник занятости
				subgroup.Bookings = normalizeBookings(embedded, courseDate.ID, subgroup.ID)
			} else {
				// Иначе достаем записи этой подгруппы из плоского списка даты
				subgroup.Bookings = normalizeBookings(filterBySubgroup(flat, subgroup.ID), courseDate.ID, subgroup.ID)
			}

			group.Subgroups = append(group.Subgroups, subgroup)
		}

		courseDate.Groups = append(courseDate.Groups, group)
	}

	return courseDate, nil
}

func normalizeBookings(wires []bookingUserWire, dateID, subgroupID types.NumericID) []domain.BookingUser {
	result := make([]domain.BookingUser, 0, len(wires))
	for _, bw := range wires {
		status := domain.BookingUserStatus(bw.Status)
		// Плоский список активных записей не несет статуса
		if status == "" {
			status = domain.BookingActive
		}

		result = append(result, domain.BookingUser{
			ID:            bw.ID,
			ParticipantID: pickID(bw.ParticipantID, bw.ParticipantIDCamel),
			CourseDateID:  dateID,
			SubgroupID:    subgroupID,
			DegreeID:      pickID(bw.DegreeID, bw.DegreeIDCamel),
			Status:        status,
			Attended:      bw.Attended,
		})
	}
	return result
}

func filterBySubgroup(flat []bookingUserWire, subgroupID types.NumericID) []bookingUserWire {
	result := make([]bookingUserWire, 0)
	for _, bw := range flat {
		if pickID(bw.SubgroupID, bw.SubgroupIDCamel) == subgroupID {
			result = append(result, bw)
		}
	}
	return result
}

func normalizeRules(wires []discountRuleWire) []domain.DiscountRule {
	if len(wires) == 0 {
		return nil
	}
	rules := make([]domain.DiscountRule, 0, len(wires))
	for _, rw := range wires {
		rules = append(rules, domain.DiscountRule{
			Days:  rw.Days,
			Type:  domain.DiscountType(rw.Type),
			Value: rw.Value,
		})
	}
	return rules
}

func normalizePriceRange(wires []priceRangeRowWire) []domain.PriceRangeRow {
	if len(wires) == 0 {
		return nil
	}
	rows := make([]domain.PriceRangeRow, 0, len(wires))
	for _, rw := range wires {
		row := domain.PriceRangeRow{Duration: rw.Duration, Prices: make(map[int]float64)}
		for key, price := range rw.Prices {
			// Ключ матрицы - количество участников, приходит строкой
			n, err := types.ParseNumericID(key)
			if err != nil || n.IsZero() {
				continue
			}
			row.Prices[int(n.Int64())] = price
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizePattern(w *weeklyPatternWire) domain.WeeklyPattern {
	return domain.WeeklyPattern{
		Monday:    w.Monday,
		Tuesday:   w.Tuesday,
		Wednesday: w.Wednesday,
		Thursday:  w.Thursday,
		Friday:    w.Friday,
		Saturday:  w.Saturday,
		Sunday:    w.Sunday,
	}
}

func parseWireDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	// Даты приходят как "2006-01-02" или полный RFC3339
	if d, err := time.Parse(domain.DateFormat, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(d), nil
}

// pick-хелперы: snake-вариант приоритетен, camel - fallback

func pickString(snake, camel string) string {
	if snake != "" {
		return snake
	}
	return camel
}

func pickInt(snake, camel int) int {
	if snake != 0 {
		return snake
	}
	return camel
}

func pickIntPtr(snake, camel *int) int {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return domain.UnlimitedParticipants
}

func pickBool(snake, camel *bool) bool {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return false
}

func pickID(snake, camel types.NumericID) types.NumericID {
	if !snake.IsZero() {
		return snake
	}
	return camel
}

func pickIDPtr(snake, camel *types.NumericID) *types.NumericID {
	if snake != nil {
		return snake
	}
	return camel
}

func pickSettings(snake, camel *settingsWire) *settingsWire {
	if snake != nil {
		return snake
	}
	return camel
}

func pickPattern(snake, camel *weeklyPatternWire) *weeklyPatternWire {
	if snake != nil {
		return snake
	}
	return camel
}

func pickDates(snake, camel []courseDateWire) []courseDateWire {
	if len(snake) > 0 {
		return snake
	}
	return camel
}

func pickGroups(snake, camel []courseGroupWire) []courseGroupWire {
	if len(snake) > 0 {
		return snake
	}
	return camel
}

func pickSubgroups(snake, camel []courseSubgroupWire) []courseSubgroupWire {
	if len(snake) > 0 {
		return snake
	}
	return camel
}

func pickBookings(snake, camel []bookingUserWire) []bookingUserWire {
	if len(snake) > 0 {
		return snake
	}
	return camel
}

func pickStrings(snake, camel []string) []string {
	if len(snake) > 0 {
		return snake
	}
	return camel
}

func pickRules(snake, camel []discountRuleWire) []discountRuleWire {
	if len(snake) > 0 {
		return snake
	}
	return camel
}
