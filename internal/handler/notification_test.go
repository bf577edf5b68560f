package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simontuck/gdc2025-website-sub001/internal/config"
	"github.com/simontuck/gdc2025-website-sub001/internal/mailer"
	"github.com/simontuck/gdc2025-website-sub001/internal/model"
	"github.com/simontuck/gdc2025-website-sub001/internal/queue"
)

func strPtr(s string) *string { return &s }

func confirmationBookings() map[string]*model.Booking {
	return map[string]*model.Booking{
		"bk_900001": {
			ID:            "bk_900001",
			RoomName:      strPtr("Executive Boardroom"),
			BookingDate:   "2025-03-07",
			StartTime:     "09:00",
			EndTime:       "11:00",
			DurationHours: 2,
			CustomerEmail: strPtr("ada@example.org"),
			TotalAmount:   30500,
		},
	}
}

func doSendConfirmation(t *testing.T, h *NotificationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications/confirmation", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.SendConfirmation(c))
	return rec
}

func TestSendConfirmationSuccessPublishesAuditEvent(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer provider.Close()

	h := NewNotificationHandler(
		stubResolver(nil, confirmationBookings()),
		mailer.NewClient(config.MailConfig{APIKey: "re_test", BaseURL: provider.URL}),
	)
	var published []queue.ReceiptEmailedEvent
	h.Publish = func(_ context.Context, ev queue.ReceiptEmailedEvent) error {
		published = append(published, ev)
		return nil
	}

	rec := doSendConfirmation(t, h, `{"booking_id":"bk_900001"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "msg_123", body["message_id"])
	assert.NotEmpty(t, body["sent_at"])

	// The booking's own email was used as recipient.
	require.Len(t, published, 1)
	assert.Equal(t, "ada@example.org", published[0].Recipient)
	assert.Equal(t, "msg_123", published[0].MessageID)
	assert.Equal(t, "bk_900001", published[0].BookingID)
}

func TestSendConfirmationExplicitRecipientWins(t *testing.T) {
	var gotTo []any
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		gotTo, _ = payload["to"].([]any)
		_, _ = w.Write([]byte(`{"id":"msg_456"}`))
	}))
	defer provider.Close()

	h := NewNotificationHandler(
		stubResolver(nil, confirmationBookings()),
		mailer.NewClient(config.MailConfig{APIKey: "re_test", BaseURL: provider.URL}),
	)
	h.Publish = nil

	rec := doSendConfirmation(t, h, `{"booking_id":"bk_900001","recipient":"support@gdc2025.ch"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"support@gdc2025.ch"}, gotTo)
}

func TestSendConfirmationNotFound(t *testing.T) {
	h := NewNotificationHandler(
		stubResolver(nil, nil),
		mailer.NewClient(config.MailConfig{APIKey: "re_test"}),
	)
	rec := doSendConfirmation(t, h, `{"booking_id":"bk_none"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendConfirmationMissingIdentifiers(t *testing.T) {
	h := NewNotificationHandler(
		stubResolver(nil, nil),
		mailer.NewClient(config.MailConfig{APIKey: "re_test"}),
	)
	rec := doSendConfirmation(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendConfirmationNoRecipientAvailable(t *testing.T) {
	bookings := confirmationBookings()
	bookings["bk_900001"].CustomerEmail = nil
	h := NewNotificationHandler(
		stubResolver(nil, bookings),
		mailer.NewClient(config.MailConfig{APIKey: "re_test"}),
	)
	rec := doSendConfirmation(t, h, `{"booking_id":"bk_900001"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendConfirmationMailNotConfigured(t *testing.T) {
	h := NewNotificationHandler(
		stubResolver(nil, confirmationBookings()),
		mailer.NewClient(config.MailConfig{APIKey: ""}),
	)
	h.Publish = nil

	rec := doSendConfirmation(t, h, `{"booking_id":"bk_900001"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "mail service is not configured", body["error"])
}

func TestSendConfirmationProviderRejection(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"domain not verified"}`))
	}))
	defer provider.Close()

	h := NewNotificationHandler(
		stubResolver(nil, confirmationBookings()),
		mailer.NewClient(config.MailConfig{APIKey: "re_test", BaseURL: provider.URL}),
	)
	h.Publish = nil

	rec := doSendConfirmation(t, h, `{"booking_id":"bk_900001"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, http.StatusForbidden, body["provider_status"])
}

func TestSendConfirmationProviderUnreachable(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	provider.Close() // nothing listening

	h := NewNotificationHandler(
		stubResolver(nil, confirmationBookings()),
		mailer.NewClient(config.MailConfig{APIKey: "re_test", BaseURL: provider.URL}),
	)
	h.Publish = nil

	rec := doSendConfirmation(t, h, `{"booking_id":"bk_900001"}`)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
