package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/simontuck/gdc2025-website-sub001/internal/model"
)

// OrderRepo provides read access to payment-processor transactions in
// the orders table. Rows are written by the payment processor's
// webhook and are never modified here, so the repository exposes only
// lookups. All timestamp fields are assumed to be stored in UTC.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo returns a new OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// GetBySessionID returns the order recorded for a checkout session.
// checkout_session_id is not unique across checkout retries; the
// newest row wins because it is the one the processor wrote for the
// attempt that actually settled. ErrOrderNotFound is returned when no
// row matches.
func (r *OrderRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	const q = `SELECT id, checkout_session_id, amount_total, currency, status, created_at
	           FROM orders
	           WHERE checkout_session_id = ?
	           ORDER BY created_at DESC
	           LIMIT 1`
	var o model.Order
	var currency, status sql.NullString
	err := r.db.QueryRowContext(ctx, q, sessionID).Scan(
		&o.ID, &o.CheckoutSessionID, &o.AmountTotal, &currency, &status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if currency.Valid {
		o.Currency = currency.String
	}
	if status.Valid {
		o.Status = status.String
	}
	return &o, nil
}
