package lunarcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним сервисом лунного календаря.
// Конвертация лунной даты в солнечную требует астрономических таблиц,
// поэтому она вынесена во внешний сервис, а не встроена в ценовое ядро.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента лунного календаря
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ResolveLunarDate конвертирует лунную дату (месяц, день) в солнечную дату указанного года
func (c *Client) ResolveLunarDate(ctx context.Context, month, day, year int) (types.DateString, error) {
	url := fmt.Sprintf("%s/internal/lunar/%d/%02d-%02d", c.baseURL, year, month, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return "", fmt.Errorf("%w: invalid lunar date format", ErrInvalidResponse)
	case http.StatusNotFound:
		return "", ErrDateNotResolvable
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var solar SolarDate
	if err := json.NewDecoder(resp.Body).Decode(&solar); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	date, err := types.NewDateStringFromString(
		fmt.Sprintf("%04d-%02d-%02d", solar.Year, solar.Month, solar.Day),
	)
	if err != nil {
		return "", fmt.Errorf("%w: service returned invalid date: %v", ErrInvalidResponse, err)
	}

	return date, nil
}

// ResolveLunarDateWithGracefulDegradation конвертирует лунную дату с graceful degradation.
// При недоступности календарного сервиса возвращает ErrServiceDegraded — ценовой
// калькулятор в этом случае считает лунное правило несработавшим, а не падает.
func (c *Client) ResolveLunarDateWithGracefulDegradation(ctx context.Context, month, day, year int) (types.DateString, error) {
	date, err := c.ResolveLunarDate(ctx, month, day, year)
	if err != nil {
		// Если лунная дата в этом году не существует - это бизнес-результат,
		// пробрасываем его дальше
		if err == ErrDateNotResolvable {
			c.log.Info("Lunar date %02d-%02d does not exist in year %d", month, day, year)
			return "", err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation
		c.log.Error("Lunar calendar service unavailable, applying graceful degradation for %02d-%02d year=%d: %v",
			month, day, year, err)
		return "", fmt.Errorf("%w: month=%d, day=%d, year=%d, error=%v", ErrServiceDegraded, month, day, year, err)
	}

	return date, nil
}
