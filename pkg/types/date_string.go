package types

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout формат календарной даты (YYYY-MM-DD)
const dateLayout = "2006-01-02"

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString календарная дата без компонента времени в формате "YYYY-MM-DD".
// Используется везде, где важна именно дата ночи проживания, а не момент времени.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит строку "YYYY-MM-DD" в DateString
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	// Нормализуем (например "2024-6-3" не пройдет парсинг, а ведущие нули сохранятся)
	return DateString(t.Format(dateLayout)), nil
}

// Validate проверяет, что значение является корректной датой
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (d DateString) IsZero() bool {
	return d == ""
}

// Time возвращает дату как time.Time (00:00:00 UTC)
func (d DateString) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsBefore возвращает true, если d строго раньше other
func (d DateString) IsBefore(other DateString) bool {
	return d.Time().Before(other.Time())
}

// IsAfter возвращает true, если d строго позже other
func (d DateString) IsAfter(other DateString) bool {
	return d.Time().After(other.Time())
}

// AddDays возвращает дату через n дней (n может быть отрицательным)
func (d DateString) AddDays(n int) DateString {
	return NewDateString(d.Time().AddDate(0, 0, n))
}

// Next возвращает следующий календарный день
func (d DateString) Next() DateString {
	return d.AddDays(1)
}

// Weekday возвращает день недели даты
func (d DateString) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend возвращает true для субботы и воскресенья
func (d DateString) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Month возвращает номер месяца (1-12)
func (d DateString) Month() int {
	return int(d.Time().Month())
}

// Day возвращает день месяца (1-31)
func (d DateString) Day() int {
	return d.Time().Day()
}

// Year возвращает год даты
func (d DateString) Year() int {
	return d.Time().Year()
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}
