package lunarcalendar

// SolarDate ответ календарного сервиса: солнечная (григорианская) дата,
// соответствующая лунной дате в запрошенном году
type SolarDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ErrorResponse модель ошибки от календарного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
