// Package queue defines message payloads exchanged over the message broker.
package queue

// ReceiptEmailedEvent is published after a booking confirmation email
// has been accepted by the mail provider. It carries enough context
// for downstream consumers to audit, notify, or feed analytics without
// querying the primary database.
type ReceiptEmailedEvent struct {
	SessionID   string `json:"session_id"`
	BookingID   string `json:"booking_id,omitempty"`
	OrderNumber string `json:"order_number"`
	ProductName string `json:"product_name"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Recipient   string `json:"recipient"`
	MessageID   string `json:"message_id"`
	SentAt      string `json:"sent_at"`
}
