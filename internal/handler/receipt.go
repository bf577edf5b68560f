package handler

import (
	"errors"   // for errors.Is comparisons
	"net/http" // HTTP status codes
	"strings"  // trimming query parameters

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/simontuck/gdc2025-website-sub001/internal/receipt" // reconciliation engine
)

// ReceiptHandler serves the booking-success page's data: the canonical
// payment receipt reconciled from the order and booking stores. The
// checkout session id acts as the access capability — whoever was
// redirected back from the payment processor holds it — so no further
// authentication is applied here.
type ReceiptHandler struct {
	Resolver *receipt.Resolver
}

// NewReceiptHandler constructs a ReceiptHandler. The resolver must be
// non-nil.
func NewReceiptHandler(resolver *receipt.Resolver) *ReceiptHandler {
	if resolver == nil {
		panic("nil resolver passed to NewReceiptHandler")
	}
	return &ReceiptHandler{Resolver: resolver}
}

// GetReceipt handles GET /v1/receipts?session_id=&booking_id=. At least
// one identifier must be supplied. It returns 200 with the merged
// receipt, 404 when neither record source yields anything, and 400 when
// the caller supplied no identifiers at all. Partial backend failures
// are absorbed by the resolver and never surface here.
func (h *ReceiptHandler) GetReceipt(c echo.Context) error {
	sessionID := strings.TrimSpace(c.QueryParam("session_id"))
	bookingID := strings.TrimSpace(c.QueryParam("booking_id"))
	if sessionID == "" && bookingID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id or booking_id is required"})
	}

	rcpt, err := h.Resolver.Resolve(c.Request().Context(), sessionID, bookingID)
	if err != nil {
		if errors.Is(err, receipt.ErrReceiptNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Payment details not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve receipt"})
	}
	return c.JSON(http.StatusOK, rcpt)
}
