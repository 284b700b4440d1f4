package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingConfirmedEvent(t *testing.T) {
	show := &domain.Show{
		ID:        4,
		MovieID:   1,
		TheaterID: 2,
		HallID:    3,
		StartTime: time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC),
	}

	booking := &domain.Booking{
		ID:          11,
		UserID:      7,
		ShowID:      4,
		Reference:   "BK20250501120000ABCDEF12",
		TotalAmount: decimal.RequireFromString("38.97"),
		CreatedAt:   time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		Seats: []domain.Seat{
			{Row: 2, Number: 4},
			{Row: 2, Number: 5},
		},
	}

	event := NewBookingConfirmedEvent(booking, show)

	body, err := json.Marshal(event)
	require.NoError(t, err)

	want := `{
		"bookingId": 11,
		"reference": "BK20250501120000ABCDEF12",
		"userId": 7,
		"showId": 4,
		"movieId": 1,
		"theaterId": 2,
		"hallId": 3,
		"startsAt": "2025-05-01T20:00:00Z",
		"seats": ["2-4", "2-5"],
		"totalAmount": "38.97",
		"confirmedAt": "2025-05-01T12:00:00Z"
	}`

	assert.JSONEq(t, want, string(body))
}

func TestNoopPublisher(t *testing.T) {
	var p domain.EventPublisher = NoopPublisher{}

	assert.NoError(t, p.PublishBookingConfirmed(context.Background(), &domain.Booking{}, &domain.Show{}))
}

func TestAMQPPublisherGivesUpWhenChannelIsBusy(t *testing.T) {
	p := &AMQPPublisher{slot: make(chan struct{}, 1)}
	p.slot <- struct{}{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.PublishBookingConfirmed(ctx, &domain.Booking{ID: 1}, &domain.Show{ID: 1})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
