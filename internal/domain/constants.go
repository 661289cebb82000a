package domain

// Business validation constants
const (
	MaxStayNights         = 90 // Максимальная длительность проживания
	MaxNotesLength        = 500
	MaxCancelReasonLength = 500
	MaxGuestNameLength    = 200
	MaxHolidayNameLength  = 100
)

// Date format constant
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих номерной фонд.
// Используется при подсчёте занятости ночей.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, не занимающих номерной фонд
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
