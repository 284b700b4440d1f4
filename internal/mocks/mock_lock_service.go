package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLockService struct {
	mock.Mock
	domain.LockService
}

func (m *MockLockService) TryAcquire(ctx context.Context, key string, lease time.Duration) (string, bool, error) {
	args := m.Called(ctx, key, lease)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockLockService) Release(ctx context.Context, key, token string) error {
	args := m.Called(ctx, key, token)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
	domain.EventPublisher
}

func (m *MockEventPublisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking, show *domain.Show) error {
	args := m.Called(ctx, booking, show)
	return args.Error(0)
}
