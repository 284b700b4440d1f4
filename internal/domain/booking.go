package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID          int
	UserID      int
	ShowID      int
	Reference   string
	TotalAmount decimal.Decimal
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Seats       []Seat
}

// NewBookingReference returns a display and URL safe reference such as
// BK20250101183000A1B2C3D4: a second-resolution timestamp and eight random hex digits.
func NewBookingReference(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return "BK" + now.UTC().Format("20060102150405") + strings.ToUpper(suffix)
}

// TotalAmount applies flat per-seat pricing.
func TotalAmount(pricePerSeat decimal.Decimal, seatCount int) decimal.Decimal {
	return pricePerSeat.Mul(decimal.NewFromInt(int64(seatCount)))
}

type BookingRepository interface {
	// CreateWithSeats persists the booking and claims the given seats for it in a
	// single transaction. It returns ErrSeatsUnavailable without persisting
	// anything if any of the seats was claimed in the meantime.
	CreateWithSeats(ctx context.Context, booking *Booking, seatIDs []int) error
	GetByID(ctx context.Context, id int) (*Booking, error)
	GetByUserID(ctx context.Context, userID int, pagination Pagination) ([]Booking, *Metadata, error)
	// Cancel flags a confirmed booking as cancelled and releases its seats.
	Cancel(ctx context.Context, id int) error
}

// LockService grants time-bounded mutual exclusion over a key. Acquisition
// never waits: a held key is reported as not acquired.
type LockService interface {
	TryAcquire(ctx context.Context, key string, lease time.Duration) (token string, acquired bool, err error)
	// Release frees the key only if it is still held under token.
	Release(ctx context.Context, key, token string) error
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *Booking, show *Show) error
}
