package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
)

// UseCase use case проверки доступности категории номеров на диапазон дат
type UseCase struct {
	reservationRepo ReservationRepository
	categoryRepo    CategoryRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	categoryRepo CategoryRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		categoryRepo:    categoryRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности.
//
// Для каждой ночи [checkIn, checkOut) подсчитывается число активных
// бронирований; свободные номера всей поездки определяет самая загруженная
// ночь, а не средняя занятость. Чтение без блокировок - результат справочный.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: category=%d, checkIn=%s, checkOut=%s",
		req.CategoryID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Разворачиваем диапазон в список ночей (проверяет корректность диапазона)
	nights, err := domain.StayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid range [%s, %s)", req.CheckIn, req.CheckOut)
		return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidRange, req.CheckIn, req.CheckOut)
	}

	// 3. Получаем категорию
	category, err := uc.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			uc.logger.Warn("CheckAvailability: category id=%d not found", req.CategoryID)
			return nil, ErrCategoryNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get category id=%d: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования, пересекающиеся с диапазоном
	filter := domain.ReservationFilter{
		CategoryID:      req.CategoryID,
		From:            &req.CheckIn,
		To:              &req.CheckOut,
		IncludeInactive: false, // Отменённые не занимают номерной фонд
	}

	reservations, err := uc.reservationRepo.GetByCategoryWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Считаем занятость по каждой ночи
	nightOccupancies := make([]NightOccupancy, 0, len(nights))
	maxOccupied := 0

	for _, night := range nights {
		occupied := domain.CountOccupied(night, reservations)
		if occupied > maxOccupied {
			maxOccupied = occupied
		}

		remaining := category.TotalUnits - occupied
		if remaining < 0 {
			remaining = 0
		}

		nightOccupancies = append(nightOccupancies, NightOccupancy{
			Date:      night,
			Occupied:  occupied,
			Remaining: remaining,
		})
	}

	remainingUnits := category.TotalUnits - maxOccupied
	if remainingUnits < 0 {
		remainingUnits = 0
	}

	uc.logger.Info("CheckAvailability: category=%d, nights=%d, remaining=%d/%d",
		req.CategoryID, len(nights), remainingUnits, category.TotalUnits)

	return &Response{
		CategoryID:     req.CategoryID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Available:      remainingUnits > 0,
		RemainingUnits: remainingUnits,
		TotalUnits:     category.TotalUnits,
		Nights:         nightOccupancies,
	}, nil
}
