package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	calendarRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/calendar"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar/models"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// Service сервис управления ценовым календарем категории:
// переопределения цен на даты и праздничные правила (административный контур)
type Service struct {
	calendarRepo CalendarRepository
	categoryRepo CategoryRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ценового календаря
func NewService(
	calendarRepo CalendarRepository,
	categoryRepo CategoryRepository,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// GetCalendar возвращает полный ценовой календарь категории
func (s *Service) GetCalendar(ctx context.Context, categoryID int64) (*models.CalendarResponse, error) {
	s.logger.Info("GetCalendar: fetching calendar for category=%d", categoryID)

	if err := s.ensureCategoryExists(ctx, categoryID, "GetCalendar"); err != nil {
		return nil, err
	}

	overrides, err := s.calendarRepo.ListDateOverrides(ctx, categoryID)
	if err != nil {
		s.logger.Error("GetCalendar: failed to list overrides for category=%d: %v", categoryID, err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	rules, err := s.calendarRepo.ListHolidayRules(ctx, categoryID)
	if err != nil {
		s.logger.Error("GetCalendar: failed to list holiday rules for category=%d: %v", categoryID, err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCalendar(categoryID, overrides, rules), nil
}

// UpsertOverride создает или обновляет переопределение цены на дату
func (s *Service) UpsertOverride(ctx context.Context, categoryID int64, req *models.UpsertOverrideRequest) (*models.DateOverrideResponse, error) {
	s.logger.Info("UpsertOverride: category=%d, date=%s, price=%d", categoryID, req.Date, req.Price)

	if err := s.ensureCategoryExists(ctx, categoryID, "UpsertOverride"); err != nil {
		return nil, err
	}

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		s.logger.Warn("UpsertOverride: invalid date %q for category=%d", req.Date, categoryID)
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	override, err := s.calendarRepo.UpsertDateOverride(ctx, &domain.DateOverride{
		CategoryID: categoryID,
		Date:       date,
		Price:      req.Price,
	})
	if err != nil {
		s.logger.Error("UpsertOverride: repository error for category=%d: %v", categoryID, err)
		return nil, fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertOverride: successfully saved override id=%d", override.ID)
	resp := models.FromDomainOverride(override)
	return &resp, nil
}

// DeleteOverride удаляет переопределение цены на дату
func (s *Service) DeleteOverride(ctx context.Context, categoryID int64, dateStr string) error {
	s.logger.Info("DeleteOverride: category=%d, date=%s", categoryID, dateStr)

	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if err := s.calendarRepo.DeleteDateOverride(ctx, categoryID, date); err != nil {
		if errors.Is(err, calendarRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: override not found for category=%d, date=%s", categoryID, dateStr)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for category=%d: %v", categoryID, err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateHolidayRule создает праздничное правило
func (s *Service) CreateHolidayRule(ctx context.Context, categoryID int64, req *models.CreateHolidayRuleRequest) (*models.HolidayRuleResponse, error) {
	s.logger.Info("CreateHolidayRule: category=%d, name=%s, type=%s, month=%d, day=%d",
		categoryID, req.Name, req.CalendarType, req.Month, req.Day)

	if err := s.ensureCategoryExists(ctx, categoryID, "CreateHolidayRule"); err != nil {
		return nil, err
	}

	if err := validateHolidayRule(req); err != nil {
		s.logger.Warn("CreateHolidayRule: validation failed for category=%d: %v", categoryID, err)
		return nil, err
	}

	rule, err := s.calendarRepo.CreateHolidayRule(ctx, &domain.HolidayRule{
		CategoryID:   categoryID,
		Name:         strings.TrimSpace(req.Name),
		CalendarType: domain.CalendarType(req.CalendarType),
		Month:        req.Month,
		Day:          req.Day,
		Price:        req.Price,
		Multiplier:   req.Multiplier,
		Active:       req.Active,
	})
	if err != nil {
		s.logger.Error("CreateHolidayRule: repository error for category=%d: %v", categoryID, err)
		return nil, fmt.Errorf("%w: CreateHolidayRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHolidayRule: successfully created rule id=%d", rule.ID)
	resp := models.FromDomainRule(rule)
	return &resp, nil
}

// SetHolidayRuleActive включает или отключает праздничное правило.
// Отключенные правила игнорируются ценовым калькулятором.
func (s *Service) SetHolidayRuleActive(ctx context.Context, ruleID int64, active bool) error {
	s.logger.Info("SetHolidayRuleActive: rule=%d, active=%v", ruleID, active)

	if err := s.calendarRepo.SetHolidayRuleActive(ctx, ruleID, active); err != nil {
		if errors.Is(err, calendarRepo.ErrRuleNotFound) {
			s.logger.Warn("SetHolidayRuleActive: rule id=%d not found", ruleID)
			return ErrRuleNotFound
		}
		s.logger.Error("SetHolidayRuleActive: repository error for rule=%d: %v", ruleID, err)
		return fmt.Errorf("%w: SetHolidayRuleActive - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ensureCategoryExists проверяет существование категории
func (s *Service) ensureCategoryExists(ctx context.Context, categoryID int64, op string) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("%s: category id=%d not found", op, categoryID)
			return ErrCategoryNotFound
		}
		s.logger.Error("%s: failed to get category id=%d: %v", op, categoryID, err)
		return fmt.Errorf("%w: %s - failed to get category: %v", ErrInternal, op, err)
	}
	return nil
}

// validateHolidayRule проверяет корректность праздничного правила
func validateHolidayRule(req *models.CreateHolidayRuleRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxHolidayNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxHolidayNameLength)
	}

	calType := domain.CalendarType(req.CalendarType)
	if calType != domain.CalendarSolar && calType != domain.CalendarLunar {
		return fmt.Errorf("%w: calendarType must be %q or %q", ErrInvalidInput, domain.CalendarSolar, domain.CalendarLunar)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be in range 1-12", ErrInvalidInput)
	}

	switch calType {
	case domain.CalendarSolar:
		// Проверяем существование солнечной даты в невисокосном и високосном году
		if req.Day < 1 || req.Day > daysInMonth(req.Month) {
			return fmt.Errorf("%w: day %d is out of range for month %d", ErrInvalidInput, req.Day, req.Month)
		}
	case domain.CalendarLunar:
		// Лунный месяц содержит 29 или 30 дней; точность проверяет календарный сервис
		if req.Day < 1 || req.Day > 30 {
			return fmt.Errorf("%w: lunar day must be in range 1-30", ErrInvalidInput)
		}
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.Multiplier < 0 {
		return fmt.Errorf("%w: multiplier must not be negative", ErrInvalidInput)
	}
	if req.Price == 0 && req.Multiplier == 0 {
		return fmt.Errorf("%w: either price or multiplier must be set", ErrInvalidInput)
	}

	return nil
}

// daysInMonth возвращает максимальное число дней месяца (февраль - 29, с учетом високосных лет)
func daysInMonth(month int) int {
	// Берем заведомо високосный год, чтобы 29 февраля было допустимым
	return time.Date(2024, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
