package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simontuck/gdc2025-website-sub001/internal/model"
)

func TestRenderConfirmationWithRoomDetails(t *testing.T) {
	rcpt := &model.PaymentReceipt{
		SessionID:   "cs_live_1",
		OrderNumber: "GDC25-20250307-123456",
		ProductName: "Executive Boardroom",
		Amount:      "CHF 305.00",
		Currency:    "CHF",
		PaymentDate: "March 7, 2025",
		Status:      "completed",
		RoomDetails: &model.RoomDetails{
			RoomName:  "Executive Boardroom",
			Date:      "March 7, 2025",
			TimeRange: "09:00 - 11:00",
			Duration:  "2 hours",
		},
	}

	subject, html, err := RenderConfirmation(rcpt)
	require.NoError(t, err)

	assert.Equal(t, "Your GDC 2025 booking confirmation - GDC25-20250307-123456", subject)
	assert.Contains(t, html, "GDC25-20250307-123456")
	assert.Contains(t, html, "Executive Boardroom")
	assert.Contains(t, html, "CHF 305.00")
	assert.Contains(t, html, "Room reservation")
	assert.Contains(t, html, "09:00 - 11:00")
}

func TestRenderConfirmationWithoutRoomDetails(t *testing.T) {
	rcpt := &model.PaymentReceipt{
		OrderNumber: "GDC25-20250307-123456",
		ProductName: "Conference Room",
		Amount:      "CHF 305.00",
		PaymentDate: "March 7, 2025",
		Status:      "completed",
	}

	subject, html, err := RenderConfirmation(rcpt)
	require.NoError(t, err)
	assert.Contains(t, subject, rcpt.OrderNumber)
	assert.NotContains(t, html, "Room reservation")
}

func TestRenderConfirmationNilReceipt(t *testing.T) {
	_, _, err := RenderConfirmation(nil)
	assert.Error(t, err)
}
