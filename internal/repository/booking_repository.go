package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/simontuck/gdc2025-website-sub001/internal/model"
)

// BookingRepo provides read access to confirmed room reservations in
// the bookings table. Each booking references a row in rooms for its
// display name; the reference may dangle, so the join is a LEFT JOIN
// and a missing room leaves RoomName nil rather than failing the
// lookup.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// GetByID returns a booking by primary key together with the display
// name of its room. ErrBookingNotFound is returned when the booking
// does not exist. Date and time columns are returned as stored: the
// site writes venue-local wall-clock strings and the receipt layer
// renders them verbatim.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*model.Booking, error) {
	const q = `SELECT b.id, b.stripe_session_id, rm.name,
	                  b.booking_date, b.start_time, b.end_time, b.duration_hours,
	                  b.customer_name, b.customer_email, b.total_amount, b.status
	           FROM bookings b
	           LEFT JOIN rooms rm ON rm.id = b.room_id
	           WHERE b.id = ?`
	var bk model.Booking
	var sessionID, roomName, bookingDate, startTime, endTime sql.NullString
	var customerName, customerEmail, status sql.NullString
	var duration sql.NullFloat64
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx, q, bookingID).Scan(
		&bk.ID, &sessionID, &roomName,
		&bookingDate, &startTime, &endTime, &duration,
		&customerName, &customerEmail, &total, &status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if sessionID.Valid && sessionID.String != "" {
		s := sessionID.String
		bk.StripeSessionID = &s
	}
	if roomName.Valid && roomName.String != "" {
		n := roomName.String
		bk.RoomName = &n
	}
	bk.BookingDate = bookingDate.String
	bk.StartTime = startTime.String
	bk.EndTime = endTime.String
	if duration.Valid {
		bk.DurationHours = duration.Float64
	}
	if customerName.Valid && customerName.String != "" {
		n := customerName.String
		bk.CustomerName = &n
	}
	if customerEmail.Valid && customerEmail.String != "" {
		e := customerEmail.String
		bk.CustomerEmail = &e
	}
	if total.Valid {
		bk.TotalAmount = total.Int64
	}
	bk.Status = status.String
	return &bk, nil
}
