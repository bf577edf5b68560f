package handler

import (
	"context"

	"github.com/simontuck/gdc2025-website-sub001/internal/model"
	"github.com/simontuck/gdc2025-website-sub001/internal/receipt"
	"github.com/simontuck/gdc2025-website-sub001/internal/repository"
)

// In-memory store fakes backing the resolver in handler tests.

type stubOrderStore struct {
	orders map[string]*model.Order
}

func (s *stubOrderStore) GetBySessionID(_ context.Context, sessionID string) (*model.Order, error) {
	if o, ok := s.orders[sessionID]; ok {
		return o, nil
	}
	return nil, repository.ErrOrderNotFound
}

type stubBookingStore struct {
	bookings map[string]*model.Booking
}

func (s *stubBookingStore) GetByID(_ context.Context, bookingID string) (*model.Booking, error) {
	if b, ok := s.bookings[bookingID]; ok {
		return b, nil
	}
	return nil, repository.ErrBookingNotFound
}

func stubResolver(orders map[string]*model.Order, bookings map[string]*model.Booking) *receipt.Resolver {
	return receipt.NewResolver(&stubOrderStore{orders: orders}, &stubBookingStore{bookings: bookings}, nil)
}
