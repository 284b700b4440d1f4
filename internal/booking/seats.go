package booking

import (
	"context"
	"fmt"

	"github.com/metinatakli/seat-booking/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CreateShow stores the show together with its seat inventory, materialized
// from the layout of the hall it plays in.
func (s *Service) CreateShow(ctx context.Context, show *domain.Show) error {
	hall, err := s.catalog.GetHall(ctx, show.HallID)
	if err != nil {
		return err
	}

	if hall.TheaterID != show.TheaterID {
		return fmt.Errorf("hall %d does not belong to theater %d: %w", hall.ID, show.TheaterID, domain.ErrHallNotFound)
	}

	if err := hall.Layout.Validate(); err != nil {
		return fmt.Errorf("hall %d: %w", hall.ID, err)
	}

	err = s.catalog.CreateShowWithSeats(ctx, show, func(stored *domain.Show) []domain.Seat {
		return domain.NewShowSeats(stored, hall)
	})
	if err != nil {
		return err
	}

	s.logger.Info("show created", "show_id", show.ID, "hall_id", hall.ID, "seats", hall.Layout.Capacity())

	return nil
}

// FindConsecutiveSeats returns the first block of count adjacent available seats
// of the show, scanning rows in ascending order. An empty result means no such
// block exists.
func (s *Service) FindConsecutiveSeats(ctx context.Context, showID, count int) ([]domain.Seat, error) {
	ctx, span := s.tracer.Start(ctx, "FindConsecutiveSeats", trace.WithAttributes(
		attribute.Int("show.id", showID),
		attribute.Int("seats.count", count),
	))
	defer span.End()

	if _, err := s.catalog.GetShow(ctx, showID); err != nil {
		return nil, err
	}

	return s.findBlock(ctx, showID, count)
}

func (s *Service) findBlock(ctx context.Context, showID, count int) ([]domain.Seat, error) {
	available, err := s.seats.ListByShow(ctx, showID, domain.SeatFilterAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to list available seats of show %d: %w", showID, err)
	}

	return domain.FindConsecutiveBlock(available, count), nil
}

func (s *Service) GetHallLayout(ctx context.Context, hallID, showID int) (*domain.HallLayoutView, error) {
	hall, err := s.catalog.GetHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	show, err := s.catalog.GetShow(ctx, showID)
	if err != nil {
		return nil, err
	}

	if show.HallID != hall.ID {
		return nil, fmt.Errorf("show %d is not played in hall %d: %w", showID, hallID, domain.ErrShowNotFound)
	}

	seats, err := s.seats.ListByShow(ctx, showID, domain.SeatFilterAll)
	if err != nil {
		return nil, err
	}

	view := &domain.HallLayoutView{
		HallID:         hall.ID,
		ShowID:         show.ID,
		TotalRows:      hall.TotalRows(),
		Layout:         hall.Layout,
		BookedSeats:    make([]domain.Seat, 0),
		AvailableSeats: make([]domain.Seat, 0, len(seats)),
	}

	for _, seat := range seats {
		if seat.IsBooked {
			view.BookedSeats = append(view.BookedSeats, seat)
		} else {
			view.AvailableSeats = append(view.AvailableSeats, seat)
		}
	}

	return view, nil
}
