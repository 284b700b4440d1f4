package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
	domain.SeatRepository
}

func (m *MockSeatRepo) ListByShow(ctx context.Context, showID int, filter domain.SeatFilter) ([]domain.Seat, error) {
	args := m.Called(ctx, showID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) GetAvailableByIDs(ctx context.Context, showID int, seatIDs []int) ([]domain.Seat, error) {
	args := m.Called(ctx, showID, seatIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}
