package model

// RoomDetails carries the display-ready room portion of a receipt.
// It is present only when a booking was resolved. All fields are
// preformatted strings; TimeRange keeps the stored wall-clock values
// verbatim because the store already holds venue-local time.
type RoomDetails struct {
	RoomName  string `json:"room_name"`
	Date      string `json:"date"`
	TimeRange string `json:"time_range"`
	Duration  string `json:"duration"`
}

// PaymentReceipt is the canonical merged view of a payment and its
// optional room booking. It is derived on demand and never persisted.
// Amount and PaymentDate are display strings produced by the
// formatter; OrderNumber is a human-readable reference and is not
// guaranteed unique (see the resolver documentation).
type PaymentReceipt struct {
	SessionID     string       `json:"session_id"`
	BookingID     string       `json:"booking_id,omitempty"`
	OrderNumber   string       `json:"order_number"`
	ProductName   string       `json:"product_name"`
	Amount        string       `json:"amount"`
	Currency      string       `json:"currency"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	PaymentDate   string       `json:"payment_date"`
	Status        string       `json:"status"`
	RoomDetails   *RoomDetails `json:"room_details,omitempty"`
}
