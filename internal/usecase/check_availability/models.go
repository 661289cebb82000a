package check_availability

import "github.com/m04kA/HMS-RoomInventoryService/pkg/types"

// Request модель запроса на проверку доступности
type Request struct {
	CategoryID int64            // ID категории номеров
	CheckIn    types.DateString // Дата заезда
	CheckOut   types.DateString // Дата выезда (исключительно)
}

// Response модель ответа с результатом проверки доступности.
//
// Результат носит справочный характер: авторитетная проверка выполняется
// повторно внутри транзакции создания бронирования.
type Response struct {
	CategoryID     int64
	CheckIn        types.DateString
	CheckOut       types.DateString
	Available      bool             // Остался ли хотя бы один свободный номер на все ночи
	RemainingUnits int              // Свободные номера в самую загруженную ночь
	TotalUnits     int              // Номерной фонд категории
	Nights         []NightOccupancy // Занятость по каждой ночи проживания
}

// NightOccupancy занятость одной ночи
type NightOccupancy struct {
	Date      types.DateString
	Occupied  int
	Remaining int
}
