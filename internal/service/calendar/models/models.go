package models

import (
	"time"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
)

// Request модели

// UpsertOverrideRequest запрос на установку цены на конкретную дату
type UpsertOverrideRequest struct {
	Date  string `json:"date"` // "2025-12-31"
	Price int64  `json:"price"`
}

// CreateHolidayRuleRequest запрос на создание праздничного правила
type CreateHolidayRuleRequest struct {
	Name         string  `json:"name"`
	CalendarType string  `json:"calendarType"` // solar | lunar
	Month        int     `json:"month"`
	Day          int     `json:"day"`
	Price        int64   `json:"price"`      // Фиксированная цена ночи (0 = использовать множитель)
	Multiplier   float64 `json:"multiplier"` // Множитель к цене базового/выходного дня
	Active       bool    `json:"active"`
}

// Response модели

// DateOverrideResponse ответ с переопределением цены
type DateOverrideResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HolidayRuleResponse ответ с праздничным правилом
type HolidayRuleResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CalendarType string    `json:"calendarType"`
	Month        int       `json:"month"`
	Day          int       `json:"day"`
	Price        int64     `json:"price"`
	Multiplier   float64   `json:"multiplier"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CalendarResponse ценовой календарь категории: переопределения и правила
type CalendarResponse struct {
	CategoryID   int64                  `json:"categoryId"`
	Overrides    []DateOverrideResponse `json:"overrides"`
	HolidayRules []HolidayRuleResponse  `json:"holidayRules"`
}

// Методы конвертации

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.DateOverride) DateOverrideResponse {
	return DateOverrideResponse{
		ID:        o.ID,
		Date:      o.Date.String(),
		Price:     o.Price,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(h *domain.HolidayRule) HolidayRuleResponse {
	return HolidayRuleResponse{
		ID:           h.ID,
		Name:         h.Name,
		CalendarType: string(h.CalendarType),
		Month:        h.Month,
		Day:          h.Day,
		Price:        h.Price,
		Multiplier:   h.Multiplier,
		Active:       h.Active,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

// FromDomainCalendar собирает полный ответ ценового календаря
func FromDomainCalendar(categoryID int64, overrides []*domain.DateOverride, rules []*domain.HolidayRule) *CalendarResponse {
	resp := &CalendarResponse{
		CategoryID:   categoryID,
		Overrides:    make([]DateOverrideResponse, 0, len(overrides)),
		HolidayRules: make([]HolidayRuleResponse, 0, len(rules)),
	}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, FromDomainOverride(o))
	}
	for _, h := range rules {
		resp.HolidayRules = append(resp.HolidayRules, FromDomainRule(h))
	}
	return resp
}
