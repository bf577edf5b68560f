package model

import "time"

// Order mirrors a payment-processor transaction written into the
// orders table by the checkout webhook. The reconciliation layer
// treats these rows as read-only: they are created externally and
// never modified by this service.
//
// Fields:
//  ID                – primary key identifier assigned by the processor.
//  CheckoutSessionID – checkout session the payment belongs to; not
//                      unique across checkout retries.
//  AmountTotal       – charged amount in minor currency units (cents).
//  Currency          – ISO 4217 code; stored lowercase by the processor
//                      and normalized to uppercase on output.
//  Status            – processor-supplied state (pending, completed,
//                      failed, refunded, ...); passed through opaquely.
//  CreatedAt         – when the processor recorded the transaction.
type Order struct {
	ID                string    // orders.id
	CheckoutSessionID string    // orders.checkout_session_id
	AmountTotal       int64     // orders.amount_total
	Currency          string    // orders.currency
	Status            string    // orders.status
	CreatedAt         time.Time // orders.created_at
}
