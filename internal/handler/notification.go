package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/simontuck/gdc2025-website-sub001/internal/mailer"
	"github.com/simontuck/gdc2025-website-sub001/internal/queue"
	"github.com/simontuck/gdc2025-website-sub001/internal/receipt"
	queue_publisher "github.com/simontuck/gdc2025-website-sub001/internal/service"
)

// NotificationHandler resolves a receipt and dispatches the booking
// confirmation email for it. The mail provider's failure taxonomy is
// mapped onto distinct status codes so the website can tell the
// customer whether the email failed for good (configuration, provider
// rejection) or transiently (provider unreachable). A failed email
// never invalidates the receipt itself.
type NotificationHandler struct {
	Resolver *receipt.Resolver
	Mailer   *mailer.Client
	// Publish emits the post-send audit event. Overridable in tests;
	// defaults to the RabbitMQ publisher. Publish failures are logged
	// and ignored because the email has already gone out.
	Publish func(ctx context.Context, ev queue.ReceiptEmailedEvent) error
}

// NewNotificationHandler constructs a NotificationHandler. Resolver and
// mailer must be non-nil.
func NewNotificationHandler(resolver *receipt.Resolver, mail *mailer.Client) *NotificationHandler {
	if resolver == nil || mail == nil {
		panic("nil dependency passed to NewNotificationHandler")
	}
	return &NotificationHandler{
		Resolver: resolver,
		Mailer:   mail,
		Publish:  queue_publisher.PublishReceiptEmailed,
	}
}

// SendConfirmation handles POST /v1/notifications/confirmation (and the
// JWT-guarded admin resend route). The body supplies the identifiers to
// reconcile plus an optional explicit recipient; when absent, the
// booking's customer email is used. Exactly one provider send is
// attempted per request — duplicate-send protection is the caller's
// concern.
func (h *NotificationHandler) SendConfirmation(c echo.Context) error {
	var body struct {
		SessionID string `json:"session_id"`
		BookingID string `json:"booking_id"`
		Recipient string `json:"recipient"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sessionID := strings.TrimSpace(body.SessionID)
	bookingID := strings.TrimSpace(body.BookingID)
	if sessionID == "" && bookingID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id or booking_id is required"})
	}

	ctx := c.Request().Context()
	rcpt, err := h.Resolver.Resolve(ctx, sessionID, bookingID)
	if err != nil {
		if errors.Is(err, receipt.ErrReceiptNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Payment details not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve receipt"})
	}

	recipient := strings.TrimSpace(body.Recipient)
	if recipient == "" {
		recipient = rcpt.CustomerEmail
	}
	if recipient == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no recipient available for this receipt"})
	}

	subject, html, err := mailer.RenderConfirmation(rcpt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to render confirmation email"})
	}

	res, err := h.Mailer.Send(ctx, mailer.SendRequest{To: []string{recipient}, Subject: subject, HTML: html})
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			log.Printf("notification: mail service not configured")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "mail service is not configured"})
		}
		var de *mailer.DeliveryError
		if errors.As(err, &de) {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error":           "mail provider rejected the message",
				"provider_status": de.StatusCode,
			})
		}
		return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "mail provider unreachable"})
	}

	if h.Publish != nil {
		ev := queue.ReceiptEmailedEvent{
			SessionID:   rcpt.SessionID,
			BookingID:   rcpt.BookingID,
			OrderNumber: rcpt.OrderNumber,
			ProductName: rcpt.ProductName,
			Amount:      rcpt.Amount,
			Currency:    rcpt.Currency,
			Recipient:   recipient,
			MessageID:   res.ID,
			SentAt:      res.SentAt.Format(time.RFC3339),
		}
		if err := h.Publish(ctx, ev); err != nil {
			log.Printf("notification: audit publish failed: %v", err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message_id": res.ID,
		"sent_at":    res.SentAt.Format(time.RFC3339),
	})
}
