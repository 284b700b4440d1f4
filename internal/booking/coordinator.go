package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/metinatakli/seat-booking/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type CreateBookingInput struct {
	UserID  int
	ShowID  int
	SeatIDs []int
}

type GroupBookingInput struct {
	UserID int
	ShowID int
	Count  int
}

// GroupBookingResult carries either the booking made for the group or, when
// the show has no block large enough, suggestions for other shows of the movie.
type GroupBookingResult struct {
	Success     bool
	Booking     *domain.Booking
	Seats       []domain.Seat
	Suggestions []domain.Suggestion
}

// CreateBooking books exactly the requested seats for the user or nothing at
// all. Contenders for the same seat set are turned away with ErrLockDenied;
// a seat taken by any other booking yields ErrSeatsUnavailable. Both are
// retryable and never retried here.
func (s *Service) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "CreateBooking", trace.WithAttributes(
		attribute.Int("show.id", input.ShowID),
		attribute.Int("user.id", input.UserID),
		attribute.Int("seats.count", len(input.SeatIDs)),
	))
	defer span.End()

	booking, show, err := s.createBooking(ctx, input)
	s.recordAttempt(ctx, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("booking.id", booking.ID))

	s.publishConfirmed(ctx, booking, show)

	return booking, nil
}

// createBooking claims the seats under the seat set lock. The lock is released
// when it returns, before anything is published.
func (s *Service) createBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, *domain.Show, error) {
	show, err := s.catalog.GetShow(ctx, input.ShowID)
	if err != nil {
		return nil, nil, err
	}

	seatIDs, err := normalizeSeatIDs(input.SeatIDs)
	if err != nil {
		return nil, nil, err
	}

	logger := s.logger.With("show_id", show.ID, "user_id", input.UserID)

	key := lockKey(show.ID, seatIDs)

	token, acquired, err := s.locks.TryAcquire(ctx, key, s.lockLease)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	if !acquired {
		logger.Warn("booking rejected: seat set is locked by another request", "lock_key", key)
		return nil, nil, domain.ErrLockDenied
	}

	defer s.releaseLock(ctx, key, token)

	available, err := s.seats.GetAvailableByIDs(ctx, show.ID, seatIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read requested seats: %w", err)
	}

	if len(available) != len(seatIDs) {
		logger.Warn("booking rejected: requested seats are not available",
			"requested", len(seatIDs), "available", len(available))
		return nil, nil, domain.ErrSeatsUnavailable
	}

	for _, seat := range available {
		if seat.ShowID != show.ID {
			return nil, nil, fmt.Errorf("seat %d belongs to show %d: %w", seat.ID, seat.ShowID, domain.ErrInvariantViolation)
		}
	}

	booking := &domain.Booking{
		UserID:      input.UserID,
		ShowID:      show.ID,
		Reference:   domain.NewBookingReference(s.now()),
		TotalAmount: domain.TotalAmount(show.Price, len(seatIDs)),
		Status:      domain.BookingStatusConfirmed,
	}

	err = s.bookings.CreateWithSeats(ctx, booking, seatIDs)
	if err != nil {
		if errors.Is(err, domain.ErrSeatsUnavailable) {
			logger.Warn("booking rejected: seats were claimed concurrently")
		}

		return nil, nil, err
	}

	logger.Info("booking confirmed", "booking_id", booking.ID, "reference", booking.Reference)

	return booking, show, nil
}

// publishConfirmed announces a committed booking. Failures are only logged.
func (s *Service) publishConfirmed(ctx context.Context, booking *domain.Booking, show *domain.Show) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	err := s.events.PublishBookingConfirmed(publishCtx, booking, show)
	if err != nil {
		s.logger.Error("failed to publish booking confirmed event", "booking_id", booking.ID, "error", err)
	}
}

// releaseLock runs even when the request context is already cancelled; a lock
// left behind only lingers until its lease runs out.
func (s *Service) releaseLock(ctx context.Context, key, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
	defer cancel()

	if err := s.locks.Release(releaseCtx, key, token); err != nil {
		s.logger.Error("failed to release booking lock", "lock_key", key, "error", err)
	}
}

// CreateGroupBooking picks the first block of Count adjacent seats of the show
// and books it. If there is no such block nothing is booked and other shows of
// the same movie are suggested, closest start time first.
func (s *Service) CreateGroupBooking(ctx context.Context, input GroupBookingInput) (*GroupBookingResult, error) {
	show, err := s.catalog.GetShow(ctx, input.ShowID)
	if err != nil {
		return nil, err
	}

	block, err := s.findBlock(ctx, show.ID, input.Count)
	if err != nil {
		return nil, err
	}

	if len(block) == 0 {
		suggestions, err := s.SuggestAlternativeShows(ctx, SuggestionQuery{
			MovieID:       show.MovieID,
			Count:         input.Count,
			PreferredTime: &show.StartTime,
		})
		if err != nil {
			return nil, err
		}

		return &GroupBookingResult{Suggestions: suggestions}, nil
	}

	seatIDs := make([]int, len(block))
	for i, seat := range block {
		seatIDs[i] = seat.ID
	}

	booking, err := s.CreateBooking(ctx, CreateBookingInput{
		UserID:  input.UserID,
		ShowID:  show.ID,
		SeatIDs: seatIDs,
	})
	if err != nil {
		return nil, err
	}

	return &GroupBookingResult{
		Success: true,
		Booking: booking,
		Seats:   booking.Seats,
	}, nil
}

func (s *Service) GetBooking(ctx context.Context, id int) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListUserBookings(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	return s.bookings.GetByUserID(ctx, userID, pagination)
}

// CancelBooking flags a confirmed booking as cancelled and frees its seats.
func (s *Service) CancelBooking(ctx context.Context, id int) (*domain.Booking, error) {
	if err := s.bookings.Cancel(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled", "booking_id", id)

	return s.bookings.GetByID(ctx, id)
}

func (s *Service) recordAttempt(ctx context.Context, err error) {
	if s.bookingAttempts == nil {
		return
	}

	outcome := "confirmed"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrLockDenied):
		outcome = "lock_denied"
	case errors.Is(err, domain.ErrSeatsUnavailable):
		outcome = "seats_unavailable"
	case domain.IsNotFound(err):
		outcome = "not_found"
	default:
		outcome = "error"
	}

	s.bookingAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// normalizeSeatIDs returns a sorted copy of ids, rejecting empty and repeated selections.
func normalizeSeatIDs(ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, domain.ErrInvalidSeatSelection
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, domain.ErrInvalidSeatSelection
		}
	}

	return sorted, nil
}

// lockKey names the lock guarding one seat set of a show. Sorting makes the
// key independent of the order in which seats were picked.
func lockKey(showID int, sortedSeatIDs []int) string {
	ids := make([]string, len(sortedSeatIDs))
	for i, id := range sortedSeatIDs {
		ids[i] = strconv.Itoa(id)
	}

	return fmt.Sprintf("booking_lock:%d:%s", showID, strings.Join(ids, ","))
}
