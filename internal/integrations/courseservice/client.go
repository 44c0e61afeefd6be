package courseservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с persistence API курсов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCourse получает агрегат курса (интервалы, даты, группы, подгруппы,
// записи участников) и нормализует его в каноническую доменную схему
func (c *Client) GetCourse(ctx context.Context, courseID types.NumericID) (*domain.Course, error) {
	url := fmt.Sprintf("%s/internal/courses/%s", c.baseURL, courseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCourseNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var wire courseWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	course, err := normalizeCourse(&wire)
	if err != nil {
		return nil, err
	}

	c.log.Info("GetCourse: fetched course id=%s (%d intervals, %d dates)",
		course.ID, len(course.Intervals), len(course.Dates))

	return course, nil
}

// CheckAvailability выполняет authoritative-проверку пересечений на backend.
// Возвращает список конфликтующих слотов для показа пользователю.
func (c *Client) CheckAvailability(ctx context.Context, request *AvailabilityRequest) (*AvailabilityResult, error) {
	url := fmt.Sprintf("%s/internal/availability-check", c.baseURL)

	resp, err := c.postJSON(ctx, url, request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusConflict:
		// 200 - свободно, 409 - есть пересечения; в обоих случаях тело одно
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result AvailabilityResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// GenerateDates запускает серверную генерацию дат интервала.
// Возвращает количество сгенерированных дат - клиентский preview (§ usecase
// generate_dates) обязан давать тот же результат.
func (c *Client) GenerateDates(ctx context.Context, intervalID types.NumericID) (int, error) {
	url := fmt.Sprintf("%s/internal/intervals/%s/generate-dates", c.baseURL, intervalID)

	resp, err := c.postJSON(ctx, url, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return 0, ErrIntervalNotFound
	case http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: %s", ErrValidation, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result generateDatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.Count, nil
}

// GetIntervalDiscounts получает правила скидок интервала
func (c *Client) GetIntervalDiscounts(ctx context.Context, intervalID types.NumericID) ([]domain.DiscountRule, error) {
	url := fmt.Sprintf("%s/internal/intervals/%s/discounts", c.baseURL, intervalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrIntervalNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var wires []discountRuleWire
	if err := json.NewDecoder(resp.Body).Decode(&wires); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return normalizeRules(wires), nil
}

// PutIntervalDiscounts полностью заменяет правила скидок интервала
func (c *Client) PutIntervalDiscounts(ctx context.Context, intervalID types.NumericID, rules []domain.DiscountRule) error {
	url := fmt.Sprintf("%s/internal/intervals/%s/discounts", c.baseURL, intervalID)

	wires := make([]discountRuleWire, 0, len(rules))
	for _, r := range rules {
		wires = append(wires, discountRuleWire{Days: r.Days, Type: string(r.Type), Value: r.Value})
	}

	body, err := json.Marshal(wires)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal rules: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrIntervalNotFound
	case http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrValidation, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// CreateBooking фиксирует staged-активность на backend.
// 409 с кодом capacity_changed означает, что вместимость изменилась после
// последнего чтения агрегата - ошибка retryable (ErrCapacityStale).
func (c *Client) CreateBooking(ctx context.Context, commit *BookingCommit) (*BookingResult, error) {
	url := fmt.Sprintf("%s/internal/bookings", c.baseURL)

	resp, err := c.postJSON(ctx, url, commit)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// Продолжаем обработку
	case http.StatusConflict:
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Code == "capacity_changed" {
			c.log.Warn("CreateBooking: stale capacity for course=%s: %s", commit.CourseID, errResp.Message)
			return nil, fmt.Errorf("%w: %s", ErrCapacityStale, errResp.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrBookingConflict, errResp.Message)
	case http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrValidation, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result BookingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// postJSON выполняет POST с JSON-телом (nil body допустим)
func (c *Client) postJSON(ctx context.Context, url string, payload interface{}) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return resp, nil
}
