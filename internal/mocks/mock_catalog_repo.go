package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepo struct {
	mock.Mock
	domain.CatalogRepository
}

func (m *MockCatalogRepo) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockCatalogRepo) GetMovie(ctx context.Context, id int) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockCatalogRepo) CreateTheater(ctx context.Context, theater *domain.Theater) error {
	args := m.Called(ctx, theater)
	return args.Error(0)
}

func (m *MockCatalogRepo) GetTheater(ctx context.Context, id int) (*domain.Theater, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theater), args.Error(1)
}

func (m *MockCatalogRepo) CreateHall(ctx context.Context, hall *domain.Hall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockCatalogRepo) GetHall(ctx context.Context, id int) (*domain.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

func (m *MockCatalogRepo) CreateShowWithSeats(
	ctx context.Context,
	show *domain.Show,
	seatsFn func(*domain.Show) []domain.Seat) error {

	args := m.Called(ctx, show, seatsFn)
	return args.Error(0)
}

func (m *MockCatalogRepo) GetShow(ctx context.Context, id int) (*domain.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func (m *MockCatalogRepo) GetShowsByMovie(ctx context.Context, movieID int) ([]domain.ShowListing, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowListing), args.Error(1)
}
