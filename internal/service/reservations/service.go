package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	reservationRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations/models"
)

// Service сервис жизненного цикла бронирований.
// Создание выполняет usecase create_reservation; здесь - чтение, отмена и
// переходы статуса, выполняемые внешним административным workflow.
type Service struct {
	reservationRepo ReservationRepository
	categoryRepo    CategoryRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	categoryRepo CategoryRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		categoryRepo:    categoryRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по внутреннему ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetByReference получает бронирование по внешнему идентификатору
func (s *Service) GetByReference(ctx context.Context, reference uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByReference: fetching reservation reference=%s", reference)

	reservation, err := s.reservationRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByReference: reservation reference=%s not found", reference)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetGuestReservations получает историю бронирований гостя.
// Опционально фильтрует по статусу.
func (s *Service) GetGuestReservations(ctx context.Context, email string, status *string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetGuestReservations: fetching reservations for guest=%s, status=%v", email, status)

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if status != nil {
		st, err := models.ToDomainReservationStatus(*status)
		if err != nil {
			s.logger.Warn("GetGuestReservations: invalid status=%s for guest=%s", *status, email)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	reservations, err := s.reservationRepo.GetByGuestEmail(ctx, email, domainStatus)
	if err != nil {
		s.logger.Error("GetGuestReservations: repository error for guest=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetGuestReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestReservations: successfully fetched %d reservations for guest=%s", len(reservations), email)
	return models.FromDomainReservationList(reservations), nil
}

// GetCategoryReservations получает бронирования категории с гибкой фильтрацией
// по периоду, статусу и включению отменённых бронирований
func (s *Service) GetCategoryReservations(ctx context.Context, req *models.GetCategoryReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetCategoryReservations: fetching reservations for category=%d", req.CategoryID)

	// Проверяем, что категория существует
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("GetCategoryReservations: category id=%d not found", req.CategoryID)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("GetCategoryReservations: failed to get category id=%d: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: GetCategoryReservations - failed to get category: %v", ErrInternal, err)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCategoryReservations: invalid filter for category=%d: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByCategoryWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCategoryReservations: repository error for category=%d: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: GetCategoryReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCategoryReservations: successfully fetched %d reservations for category=%d",
		len(reservations), req.CategoryID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование с указанием причины.
// Отменить можно бронирование в статусе pending или confirmed.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", reservationID)

	if len(req.Reason) > domain.MaxCancelReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование; освободившиеся ночи сразу видны подсчету занятости
	if err := s.reservationRepo.Cancel(ctx, reservationID, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus выполняет переход статуса бронирования (административный workflow).
// Допустимые переходы: pending -> confirmed, pending/confirmed -> cancelled.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", reservationID, req.Status)

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// Проверяем допустимость перехода
	if err := validateTransition(reservation, newStatus); err != nil {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for reservation id=%d",
			reservation.Status, newStatus, reservationID)
		return err
	}

	// Обновляем статус
	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// validateTransition проверяет допустимость перехода статуса
func validateTransition(reservation *domain.Reservation, newStatus domain.ReservationStatus) error {
	switch newStatus {
	case domain.StatusConfirmed:
		if !reservation.CanBeConfirmed() {
			return ErrInvalidTransition
		}
	case domain.StatusCancelled:
		if !reservation.CanBeCancelled() {
			return ErrInvalidTransition
		}
	case domain.StatusPending:
		// Возврат в pending не поддерживается
		return ErrInvalidTransition
	}
	return nil
}
