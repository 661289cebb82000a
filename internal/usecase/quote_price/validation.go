package quote_price

import "fmt"

// validateRequest валидирует входные данные запроса расчета стоимости
func validateRequest(req *Request) error {
	if req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	return nil
}

// validateCalendarRequest валидирует входные данные запроса месячного календаря
func validateCalendarRequest(req *CalendarRequest) error {
	if req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}

	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be in range 1-12", ErrInvalidInput)
	}

	return nil
}
