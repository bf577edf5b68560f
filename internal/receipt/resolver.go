// Package receipt reconciles payment-processor orders and room
// bookings into the canonical receipt shown on the booking-success
// page and in confirmation emails. The two record sources are only
// loosely linked (a booking may carry the order's checkout session,
// or not), so resolution walks several fallback lookup paths and
// merges whatever it finds.
package receipt

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/simontuck/gdc2025-website-sub001/internal/model"
	"github.com/simontuck/gdc2025-website-sub001/internal/repository"
)

// ErrReceiptNotFound is returned when neither an order nor a booking
// could be resolved for the supplied identifiers. It is the only
// error Resolve surfaces; handlers translate it into the user-visible
// "Payment details not found" response.
var ErrReceiptNotFound = errors.New("payment details not found")

// defaultRoomName is used when a booking's room record is missing or
// has no display name.
const defaultRoomName = "Conference Room"

// OrderStore is the lookup surface the resolver needs over the orders
// table. Satisfied by *repository.OrderRepo.
type OrderStore interface {
	GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error)
}

// BookingStore is the lookup surface the resolver needs over the
// bookings table. Satisfied by *repository.BookingRepo.
type BookingStore interface {
	GetByID(ctx context.Context, bookingID string) (*model.Booking, error)
}

// Resolver merges order and booking records into payment receipts.
// It is stateless between calls; a Resolver is safe for concurrent
// use as long as its stores are.
type Resolver struct {
	orders   OrderStore
	bookings BookingStore
	cache    *Cache
}

// NewResolver constructs a Resolver. Both stores must be non-nil;
// cache may be nil to disable receipt caching.
func NewResolver(orders OrderStore, bookings BookingStore, cache *Cache) *Resolver {
	if orders == nil || bookings == nil {
		panic("nil store passed to NewResolver")
	}
	return &Resolver{orders: orders, bookings: bookings, cache: cache}
}

// Resolve produces the canonical receipt for up to two identifiers.
//
// Lookup order:
//  1. sessionID, when given, is matched against orders by checkout
//     session.
//  2. bookingID, when given, is matched against bookings by primary
//     key (with the room name joined in).
//  3. When step 1 found nothing but the booking carries a checkout
//     session back-reference, the order lookup is retried with that
//     session. This recovers the payment for callers that only know
//     their booking id.
//
// Individual lookup failures — store errors included — are logged and
// treated as "that record is absent": a paying customer should still
// see a receipt from whichever source survives. Only when nothing at
// all resolves does Resolve fail, with ErrReceiptNotFound. Both
// identifiers empty is not an error; it returns (nil, nil) so callers
// can distinguish "nothing requested" from "nothing found".
func (r *Resolver) Resolve(ctx context.Context, sessionID, bookingID string) (*model.PaymentReceipt, error) {
	sessionID = strings.TrimSpace(sessionID)
	bookingID = strings.TrimSpace(bookingID)
	if sessionID == "" && bookingID == "" {
		return nil, nil
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx, sessionID, bookingID); ok {
			return cached, nil
		}
	}

	var order *model.Order
	if sessionID != "" {
		order = r.lookupOrder(ctx, sessionID)
	}

	var booking *model.Booking
	if bookingID != "" {
		booking = r.lookupBooking(ctx, bookingID)
	}

	// Fallback path: recover the order through the booking's
	// back-reference when the direct session lookup came up empty.
	if order == nil && booking != nil && booking.StripeSessionID != nil {
		order = r.lookupOrder(ctx, *booking.StripeSessionID)
	}

	if order == nil && booking == nil {
		return nil, ErrReceiptNotFound
	}

	rcpt := buildReceipt(sessionID, order, booking)
	if r.cache != nil {
		r.cache.Set(ctx, sessionID, bookingID, rcpt)
	}
	return rcpt, nil
}

func (r *Resolver) lookupOrder(ctx context.Context, sessionID string) *model.Order {
	o, err := r.orders.GetBySessionID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrOrderNotFound) {
			log.Printf("receipt: order lookup failed for session %s: %v", sessionID, err)
		}
		return nil
	}
	return o
}

func (r *Resolver) lookupBooking(ctx context.Context, bookingID string) *model.Booking {
	b, err := r.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, repository.ErrBookingNotFound) {
			log.Printf("receipt: booking lookup failed for id %s: %v", bookingID, err)
		}
		return nil
	}
	return b
}

// buildReceipt merges the resolved records. Order fields win for
// payment attributes (amount, currency, payment date, status), booking
// fields win for room attributes; whatever is genuinely absent falls
// back to a safe default rather than leaving a hole in the receipt.
func buildReceipt(requestedSessionID string, order *model.Order, booking *model.Booking) *model.PaymentReceipt {
	now := time.Now().UTC()

	sourceCreated := now
	sourceID := ""
	if order != nil {
		sourceCreated = order.CreatedAt
		sourceID = order.ID
	} else if booking != nil {
		sourceID = booking.ID
	}

	sessionID := requestedSessionID
	if sessionID == "" && order != nil {
		sessionID = order.CheckoutSessionID
	}
	if sessionID == "" && booking != nil && booking.StripeSessionID != nil {
		sessionID = *booking.StripeSessionID
	}

	var amountMinor int64
	currency := "CHF"
	if order != nil {
		amountMinor = order.AmountTotal
		if order.Currency != "" {
			currency = strings.ToUpper(order.Currency)
		}
	} else if booking != nil {
		amountMinor = booking.TotalAmount
	}

	status := ""
	if order != nil {
		status = order.Status
	}
	if status == "" && booking != nil {
		status = booking.Status
	}
	if status == "" {
		status = "completed"
	}

	rcpt := &model.PaymentReceipt{
		SessionID:   sessionID,
		OrderNumber: OrderNumber(sourceCreated, sourceID),
		ProductName: defaultRoomName,
		Amount:      FormatAmount(amountMinor, currency),
		Currency:    currency,
		PaymentDate: FormatDate(sourceCreated),
		Status:      status,
	}

	if booking != nil {
		roomName := defaultRoomName
		if booking.RoomName != nil && *booking.RoomName != "" {
			roomName = *booking.RoomName
		}
		rcpt.BookingID = booking.ID
		rcpt.ProductName = roomName
		if booking.CustomerName != nil {
			rcpt.CustomerName = *booking.CustomerName
		}
		if booking.CustomerEmail != nil {
			rcpt.CustomerEmail = *booking.CustomerEmail
		}
		rcpt.RoomDetails = &model.RoomDetails{
			RoomName:  roomName,
			Date:      FormatBookingDate(booking.BookingDate),
			TimeRange: FormatTimeRange(booking.StartTime, booking.EndTime),
			Duration:  FormatDuration(booking.DurationHours),
		}
	}

	return rcpt
}
