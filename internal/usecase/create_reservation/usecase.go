package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	"github.com/m04kA/HMS-RoomInventoryService/internal/integrations/notifyservice"
	"github.com/m04kA/HMS-RoomInventoryService/internal/pricing"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/txmanager"
)

// UseCase use case создания бронирования.
//
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции:
// ранее полученный результат CheckAvailability никогда не используется для
// решения о коммите. Это закрывает гонку "проверил, потом вставил", при которой
// два одновременных бронирования последнего номера могли бы оба пройти проверку.
type UseCase struct {
	reservationRepo ReservationRepository
	categoryRepo    CategoryRepository
	calendarRepo    CalendarRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	calculator      *pricing.Calculator
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	categoryRepo CategoryRepository,
	calendarRepo CalendarRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	calculator *pricing.Calculator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		categoryRepo:    categoryRepo,
		calendarRepo:    calendarRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		calculator:      calculator,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: category=%d, checkIn=%s, checkOut=%s, guest=%s",
		req.CategoryID, req.CheckIn, req.CheckOut, req.GuestEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Разворачиваем диапазон в список ночей
	nights, err := domain.StayNights(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid range [%s, %s)", req.CheckIn, req.CheckOut)
		return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidRange, req.CheckIn, req.CheckOut)
	}

	if err := validateStayLength(len(nights)); err != nil {
		uc.logger.Warn("CreateReservation: stay length validation failed: %v", err)
		return nil, err
	}

	// Переменные для передачи результата из транзакции
	var result *domain.Reservation
	var category *domain.RoomCategory

	// 3. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем категорию внутри транзакции
		cat, err := uc.categoryRepo.GetByID(txCtx, req.CategoryID)
		if err != nil {
			if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
		}
		category = cat

		// 3.2. Получаем пересекающиеся активные бронирования с блокировкой (FOR UPDATE)
		filter := domain.ReservationFilter{
			CategoryID:      req.CategoryID,
			From:            &req.CheckIn,
			To:              &req.CheckOut,
			IncludeInactive: false, // Только занимающие номерной фонд
		}

		reservations, err := uc.reservationRepo.GetByCategoryWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.3. Авторитетный пересчет занятости каждой ночи.
		// Связывает всю поездку самая загруженная ночь.
		maxOccupied := domain.MaxOccupied(nights, reservations)
		minRemaining := cat.TotalUnits - maxOccupied
		if minRemaining < 0 {
			minRemaining = 0
		}

		if maxOccupied >= cat.TotalUnits {
			uc.logger.Warn("CreateReservation: category=%d full for [%s, %s), remaining=%d",
				req.CategoryID, req.CheckIn, req.CheckOut, minRemaining)
			return &RoomUnavailableError{MinRemaining: minRemaining}
		}

		uc.logger.Info("CreateReservation: category=%d available, %d/%d units taken on busiest night",
			req.CategoryID, maxOccupied, cat.TotalUnits)

		// 3.4. Фиксируем стоимость проживания по ценовому календарю
		overrides, err := uc.calendarRepo.ListDateOverrides(txCtx, req.CategoryID)
		if err != nil {
			return fmt.Errorf("%w: failed to list date overrides: %v", ErrInternal, err)
		}

		rules, err := uc.calendarRepo.ListHolidayRules(txCtx, req.CategoryID)
		if err != nil {
			return fmt.Errorf("%w: failed to list holiday rules: %v", ErrInternal, err)
		}

		_, totalPrice := uc.calculator.PriceNights(txCtx, cat, overrides, rules, nights)

		// 3.5. Вставляем бронирование в статусе pending
		reservation := &domain.Reservation{
			Reference:  uuid.New(),
			CategoryID: req.CategoryID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Status:     domain.StatusPending,
			GuestName:  req.GuestName,
			GuestEmail: req.GuestEmail,
			Notes:      req.Notes,
			TotalPrice: totalPrice,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapTxError(err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, reference=%s, total=%d",
		result.ID, result.Reference, result.TotalPrice)
	uc.metrics.IncReservationCreated(category.Code)

	// 4. Уведомление отправляется после фиксации транзакции; неудача отправки
	// логируется и не отменяет созданное бронирование
	uc.sendNotification(ctx, category, result)

	return fromDomain(result), nil
}

// mapTxError транслирует транспортные ошибки транзакции в ошибки usecase
func (uc *UseCase) mapTxError(err error) error {
	switch {
	case errors.Is(err, ErrRoomUnavailable):
		uc.metrics.IncReservationConflict()
		return err

	case errors.Is(err, txmanager.ErrTxTimeout):
		uc.logger.Warn("CreateReservation: transaction timed out: %v", err)
		return fmt.Errorf("%w: %v", ErrTimeout, err)

	case errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("CreateReservation: serialization conflict, retries exhausted: %v", err)
		return fmt.Errorf("%w: %v", ErrTxConflict, err)

	default:
		return err
	}
}

// sendNotification отправляет уведомление о созданном бронировании
func (uc *UseCase) sendNotification(ctx context.Context, category *domain.RoomCategory, res *domain.Reservation) {
	if uc.notifyClient == nil {
		return
	}

	event := &notifyservice.ReservationCreatedEvent{
		Reference:    res.Reference.String(),
		CategoryCode: category.Code,
		CheckIn:      res.CheckIn.String(),
		CheckOut:     res.CheckOut.String(),
		GuestName:    res.GuestName,
		GuestEmail:   res.GuestEmail,
		TotalPrice:   res.TotalPrice,
	}

	if err := uc.notifyClient.SendReservationCreated(ctx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to send notification for reservation id=%d: %v", res.ID, err)
	}
}
