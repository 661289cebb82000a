package quote_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	"github.com/m04kA/HMS-RoomInventoryService/internal/pricing"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// UseCase use case расчета стоимости проживания.
// Только чтение: повторный вызов без промежуточных изменений календаря
// возвращает идентичный результат.
type UseCase struct {
	categoryRepo CategoryRepository
	calendarRepo CalendarRepository
	calculator   *pricing.Calculator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	categoryRepo CategoryRepository,
	calendarRepo CalendarRepository,
	calculator *pricing.Calculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		categoryRepo: categoryRepo,
		calendarRepo: calendarRepo,
		calculator:   calculator,
		logger:       logger,
	}
}

// Execute рассчитывает стоимость проживания за диапазон [checkIn, checkOut)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: category=%d, checkIn=%s, checkOut=%s",
		req.CategoryID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Разворачиваем диапазон в список ночей
	nights, err := domain.StayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("QuotePrice: invalid range [%s, %s)", req.CheckIn, req.CheckOut)
		return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidRange, req.CheckIn, req.CheckOut)
	}

	// 3. Загружаем категорию и ценовой календарь
	category, overrides, rules, err := uc.loadPricingData(ctx, req.CategoryID, "QuotePrice")
	if err != nil {
		return nil, err
	}

	// 4. Рассчитываем цену каждой ночи и итог
	nightPrices, total := uc.calculator.PriceNights(ctx, category, overrides, rules, nights)

	uc.logger.Info("QuotePrice: category=%d, nights=%d, total=%d", req.CategoryID, len(nights), total)

	return &Response{
		CategoryID: req.CategoryID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		TotalPrice: total,
		Nights:     nightPrices,
	}, nil
}

// PriceForDate рассчитывает цену одной конкретной ночи
func (uc *UseCase) PriceForDate(ctx context.Context, categoryID int64, date types.DateString) (*pricing.NightPrice, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	category, overrides, rules, err := uc.loadPricingData(ctx, categoryID, "PriceForDate")
	if err != nil {
		return nil, err
	}

	np := uc.calculator.PriceForDate(ctx, category, overrides, rules, date)
	return &np, nil
}

// MonthCalendar рассчитывает цены всех дат календарного месяца (для UI календаря)
func (uc *UseCase) MonthCalendar(ctx context.Context, req *CalendarRequest) (*CalendarResponse, error) {
	uc.logger.Info("MonthCalendar: category=%d, year=%d, month=%d", req.CategoryID, req.Year, req.Month)

	if err := validateCalendarRequest(req); err != nil {
		uc.logger.Warn("MonthCalendar: validation failed: %v", err)
		return nil, err
	}

	category, overrides, rules, err := uc.loadPricingData(ctx, req.CategoryID, "MonthCalendar")
	if err != nil {
		return nil, err
	}

	// Все даты месяца: с первого числа до первого числа следующего месяца
	first := types.NewDateString(time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC))
	next := types.NewDateString(time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0))

	days := make([]types.DateString, 0, 31)
	for d := first; d.IsBefore(next); d = d.Next() {
		days = append(days, d)
	}

	dayPrices, _ := uc.calculator.PriceNights(ctx, category, overrides, rules, days)

	return &CalendarResponse{
		CategoryID: req.CategoryID,
		Year:       req.Year,
		Month:      req.Month,
		Days:       dayPrices,
	}, nil
}

// loadPricingData загружает категорию, переопределения цен и праздничные правила
func (uc *UseCase) loadPricingData(ctx context.Context, categoryID int64, op string) (
	*domain.RoomCategory, []*domain.DateOverride, []*domain.HolidayRule, error,
) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			uc.logger.Warn("%s: category id=%d not found", op, categoryID)
			return nil, nil, nil, ErrCategoryNotFound
		}
		uc.logger.Error("%s: failed to get category id=%d: %v", op, categoryID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	overrides, err := uc.calendarRepo.ListDateOverrides(ctx, categoryID)
	if err != nil {
		uc.logger.Error("%s: failed to list date overrides: %v", op, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to list date overrides: %v", ErrInternal, err)
	}

	rules, err := uc.calendarRepo.ListHolidayRules(ctx, categoryID)
	if err != nil {
		uc.logger.Error("%s: failed to list holiday rules: %v", op, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to list holiday rules: %v", ErrInternal, err)
	}

	return category, overrides, rules, nil
}
