package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) CreateWithSeats(ctx context.Context, booking *domain.Booking, seatIDs []int) error {
	args := m.Called(ctx, booking, seatIDs)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByUserID(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
