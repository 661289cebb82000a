package notifyservice

// ReservationCreatedEvent уведомление о созданном бронировании.
// Отправка письма гостю и постановка брони в очередь на подтверждение
// выполняются внешним сервисом уведомлений.
type ReservationCreatedEvent struct {
	Reference    string `json:"reference"`
	CategoryCode string `json:"categoryCode"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	GuestName    string `json:"guestName"`
	GuestEmail   string `json:"guestEmail"`
	TotalPrice   int64  `json:"totalPrice"`
}
