package model

// Booking mirrors a confirmed room reservation in the bookings table.
// A booking is loosely linked to an Order through StripeSessionID;
// either side of the link may be missing, which is why receipt
// resolution has to tolerate partial data. Rows are read-only from
// this service's perspective.
//
// Fields:
//  ID              – primary key identifier.
//  StripeSessionID – optional back-reference to an order's checkout
//                    session.
//  RoomName        – display name of the reserved room, resolved via
//                    the rooms table; nil when the room record is
//                    missing.
//  BookingDate     – reservation date as stored (venue-local).
//  StartTime       – wall-clock start, stored as text (e.g. "09:00").
//  EndTime         – wall-clock end, stored as text.
//  DurationHours   – booked duration; may be fractional.
//  CustomerName    – optional contact name.
//  CustomerEmail   – optional contact email.
//  TotalAmount     – total price in minor currency units.
//  Status          – booking state; empty means confirmed/completed.
type Booking struct {
	ID              string  // bookings.id
	StripeSessionID *string // bookings.stripe_session_id (nullable)
	RoomName        *string // rooms.name via join (nullable)
	BookingDate     string  // bookings.booking_date
	StartTime       string  // bookings.start_time
	EndTime         string  // bookings.end_time
	DurationHours   float64 // bookings.duration_hours
	CustomerName    *string // bookings.customer_name (nullable)
	CustomerEmail   *string // bookings.customer_email (nullable)
	TotalAmount     int64   // bookings.total_amount
	Status          string  // bookings.status
}
