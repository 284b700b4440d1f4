// Package events publishes booking lifecycle events to the message broker.
// Publishing is best effort: callers log failures and carry on.
package events

import (
	"context"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
)

const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent carries enough of the booking for downstream consumers
// to notify the customer without querying the booking database.
type BookingConfirmedEvent struct {
	BookingID   int       `json:"bookingId"`
	Reference   string    `json:"reference"`
	UserID      int       `json:"userId"`
	ShowID      int       `json:"showId"`
	MovieID     int       `json:"movieId"`
	TheaterID   int       `json:"theaterId"`
	HallID      int       `json:"hallId"`
	StartsAt    time.Time `json:"startsAt"`
	Seats       []string  `json:"seats"`
	TotalAmount string    `json:"totalAmount"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

func NewBookingConfirmedEvent(booking *domain.Booking, show *domain.Show) BookingConfirmedEvent {
	seats := make([]string, len(booking.Seats))
	for i, seat := range booking.Seats {
		seats[i] = seat.Label()
	}

	return BookingConfirmedEvent{
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		UserID:      booking.UserID,
		ShowID:      show.ID,
		MovieID:     show.MovieID,
		TheaterID:   show.TheaterID,
		HallID:      show.HallID,
		StartsAt:    show.StartTime.UTC(),
		Seats:       seats,
		TotalAmount: booking.TotalAmount.StringFixed(2),
		ConfirmedAt: booking.CreatedAt.UTC(),
	}
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingConfirmed(context.Context, *domain.Booking, *domain.Show) error {
	return nil
}
