// Package pricing вычисляет стоимость ночей проживания по ценовому календарю
// категории: переопределения на конкретные даты, праздничные правила
// (солнечные и лунные), цены выходного дня и базовая цена.
package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// Source источник итоговой цены ночи
type Source string

const (
	SourceOverride Source = "override"
	SourceHoliday  Source = "holiday"
	SourceWeekend  Source = "weekend"
	SourceBase     Source = "base"
)

// NightPrice цена одной ночи проживания с указанием источника
type NightPrice struct {
	Date        types.DateString
	Price       int64
	Source      Source
	HolidayName string // Название праздника, если Source == SourceHoliday
}

// Calculator ценовой калькулятор.
//
// Порядок разрешения цены ночи (от высшего приоритета к низшему):
//  1. Переопределение цены на точную дату (DateOverride)
//  2. Активное праздничное правило, совпавшее с датой
//  3. Цена выходного дня (суббота, воскресенье)
//  4. Базовая цена
//
// Все цены целочисленные, суммирование без плавающей точки.
type Calculator struct {
	lunar  LunarResolver
	logger Logger
}

// NewCalculator создает ценовой калькулятор
func NewCalculator(lunar LunarResolver, logger Logger) *Calculator {
	return &Calculator{
		lunar:  lunar,
		logger: logger,
	}
}

// PriceNights вычисляет цену каждой ночи и итоговую стоимость проживания.
// Недоступность лунного календаря деградирует лунные правила до "не совпало",
// а не приводит к ошибке расчета.
func (c *Calculator) PriceNights(
	ctx context.Context,
	category *domain.RoomCategory,
	overrides []*domain.DateOverride,
	rules []*domain.HolidayRule,
	nights []types.DateString,
) ([]NightPrice, int64) {
	overrideByDate := make(map[types.DateString]*domain.DateOverride, len(overrides))
	for _, o := range overrides {
		overrideByDate[o.Date] = o
	}

	// Кэш резолва лунных дат: правило резолвится не чаще одного раза на год проживания
	lunarCache := make(map[string]types.DateString)

	result := make([]NightPrice, 0, len(nights))
	var total int64

	for _, night := range nights {
		np := c.resolveNight(ctx, category, overrideByDate, rules, lunarCache, night)
		result = append(result, np)
		total += np.Price
	}

	return result, total
}

// PriceForDate вычисляет цену одной конкретной ночи
func (c *Calculator) PriceForDate(
	ctx context.Context,
	category *domain.RoomCategory,
	overrides []*domain.DateOverride,
	rules []*domain.HolidayRule,
	date types.DateString,
) NightPrice {
	prices, _ := c.PriceNights(ctx, category, overrides, rules, []types.DateString{date})
	return prices[0]
}

func (c *Calculator) resolveNight(
	ctx context.Context,
	category *domain.RoomCategory,
	overrideByDate map[types.DateString]*domain.DateOverride,
	rules []*domain.HolidayRule,
	lunarCache map[string]types.DateString,
	night types.DateString,
) NightPrice {
	// 1. Переопределение на точную дату побеждает всё остальное
	if override, ok := overrideByDate[night]; ok {
		return NightPrice{
			Date:   night,
			Price:  override.Price,
			Source: SourceOverride,
		}
	}

	weekendOrBase := category.PriceForWeekday(night.IsWeekend())

	// 2. Первое активное праздничное правило, совпавшее с датой
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if c.ruleMatches(ctx, rule, night, lunarCache) {
			return NightPrice{
				Date:        night,
				Price:       rule.EffectivePrice(weekendOrBase),
				Source:      SourceHoliday,
				HolidayName: rule.Name,
			}
		}
	}

	// 3-4. Цена выходного дня либо базовая
	source := SourceBase
	if night.IsWeekend() {
		source = SourceWeekend
	}

	return NightPrice{
		Date:   night,
		Price:  weekendOrBase,
		Source: source,
	}
}

// ruleMatches проверяет, совпадает ли праздничное правило с датой ночи
func (c *Calculator) ruleMatches(
	ctx context.Context,
	rule *domain.HolidayRule,
	night types.DateString,
	lunarCache map[string]types.DateString,
) bool {
	switch rule.CalendarType {
	case domain.CalendarSolar:
		return rule.Month == night.Month() && rule.Day == night.Day()

	case domain.CalendarLunar:
		resolved, ok := c.resolveLunar(ctx, rule, night.Year(), lunarCache)
		if !ok {
			return false
		}
		return resolved == night

	default:
		c.logger.Warn("Pricing: holiday rule id=%d has unknown calendar type %q, rule skipped", rule.ID, rule.CalendarType)
		return false
	}
}

// resolveLunar резолвит лунную дату правила для указанного года с кэшированием.
// Неудачный резолв (недоступность сервиса, несуществующая дата) кэшируется как
// пустая дата, чтобы не ходить во внешний сервис по несколько раз за расчет.
func (c *Calculator) resolveLunar(
	ctx context.Context,
	rule *domain.HolidayRule,
	year int,
	lunarCache map[string]types.DateString,
) (types.DateString, bool) {
	key := fmt.Sprintf("%d:%d", rule.ID, year)
	if cached, ok := lunarCache[key]; ok {
		return cached, !cached.IsZero()
	}

	resolved, err := c.lunar.ResolveLunarDateWithGracefulDegradation(ctx, rule.Month, rule.Day, year)
	if err != nil {
		c.logger.Warn("Pricing: lunar rule id=%d (%s) not applied for year %d: %v", rule.ID, rule.Name, year, err)
		lunarCache[key] = ""
		return "", false
	}

	lunarCache[key] = resolved
	return resolved, true
}
