package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP-клиент сервиса рассылки (email/SMS).
//
// Все вызовы выполняются по принципу fire-and-forget: воркфлоу
// бронирования не зависит от успеха доставки, ошибки только логируются
// на стороне вызывающего.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger
}

// NewClient создает новый экземпляр клиента рассылки
func NewClient(baseURL string, timeout time.Duration, logger Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BookingCreated уведомляет о созданном бронировании
func (c *Client) BookingCreated(ctx context.Context, b *domain.Booking) error {
	return c.send(ctx, Notification{Event: EventBookingCreated, Booking: FromBooking(b)})
}

// BookingApproved уведомляет о подтвержденном бронировании
func (c *Client) BookingApproved(ctx context.Context, b *domain.Booking) error {
	return c.send(ctx, Notification{Event: EventBookingApproved, Booking: FromBooking(b)})
}

// BookingCanceled уведомляет об отмененном бронировании
func (c *Client) BookingCanceled(ctx context.Context, b *domain.Booking) error {
	return c.send(ctx, Notification{Event: EventBookingCanceled, Booking: FromBooking(b)})
}

// BookingPaid уведомляет об отметке оплаты
func (c *Client) BookingPaid(ctx context.Context, b *domain.Booking) error {
	return c.send(ctx, Notification{Event: EventBookingPaid, Booking: FromBooking(b)})
}

func (c *Client) send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: send - marshal notification: %v", ErrBadResponse, err)
	}

	url := c.baseURL + "/api/v1/notifications"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: send - build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: send - do request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: send - status %d", ErrBadResponse, resp.StatusCode)
	}

	c.logger.Info("Notifier: sent %s for booking id=%s", n.Event, n.Booking.ID)
	return nil
}
