// Package booking coordinates seat allocation for shows: it finds consecutive
// seat blocks, suggests alternative shows and turns a seat selection into a
// confirmed booking without ever handing the same seat to two bookings.
package booking

import (
	"io"
	"log/slog"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultLockLease = 30 * time.Second

	lockReleaseTimeout       = 3 * time.Second
	defaultPublishTimeout    = 5 * time.Second
	defaultSuggestionWorkers = 8
	instrumentationName      = "github.com/metinatakli/seat-booking/internal/booking"
)

type Service struct {
	catalog  domain.CatalogRepository
	seats    domain.SeatRepository
	bookings domain.BookingRepository
	locks    domain.LockService
	events   domain.EventPublisher

	logger            *slog.Logger
	lockLease         time.Duration
	suggestionWorkers int
	publishTimeout    time.Duration
	now               func() time.Time

	tracer          trace.Tracer
	bookingAttempts metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithLockLease sets how long a seat set lock is held before it expires on its own.
func WithLockLease(lease time.Duration) Option {
	return func(s *Service) {
		if lease > 0 {
			s.lockLease = lease
		}
	}
}

func WithSuggestionWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.suggestionWorkers = n
		}
	}
}

// WithPublishTimeout bounds how long a confirmed booking waits on the event broker.
func WithPublishTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	catalog domain.CatalogRepository,
	seats domain.SeatRepository,
	bookings domain.BookingRepository,
	locks domain.LockService,
	events domain.EventPublisher,
	opts ...Option) *Service {

	s := &Service{
		catalog:           catalog,
		seats:             seats,
		bookings:          bookings,
		locks:             locks,
		events:            events,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		lockLease:         DefaultLockLease,
		suggestionWorkers: defaultSuggestionWorkers,
		publishTimeout:    defaultPublishTimeout,
		now:               time.Now,
		tracer:            otel.Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(s)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"booking.attempts",
		metric.WithDescription("Booking attempts by outcome"),
	)
	if err != nil {
		s.logger.Warn("failed to create booking attempts counter", "error", err)
	}
	s.bookingAttempts = counter

	return s
}
