package booking

import (
	"context"
	"slices"
	"sync"

	"github.com/metinatakli/seat-booking/internal/domain"
)

// inventory is an in-memory seat and booking store whose claim is atomic in
// the same way the conditional update of the Postgres repository is.
type inventory struct {
	mu       sync.Mutex
	seats    map[int]*domain.Seat
	bookings map[int]*domain.Booking
	nextID   int
}

func newInventory(seats []domain.Seat) *inventory {
	inv := &inventory{
		seats:    make(map[int]*domain.Seat, len(seats)),
		bookings: make(map[int]*domain.Booking),
	}

	for i := range seats {
		seat := seats[i]
		if seat.ID == 0 {
			seat.ID = i + 1
		}
		inv.seats[seat.ID] = &seat
	}

	return inv
}

func (inv *inventory) ListByShow(_ context.Context, showID int, filter domain.SeatFilter) ([]domain.Seat, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	out := make([]domain.Seat, 0)
	for _, seat := range inv.seats {
		if seat.ShowID != showID {
			continue
		}
		if filter == domain.SeatFilterAvailable && seat.IsBooked {
			continue
		}
		if filter == domain.SeatFilterBooked && !seat.IsBooked {
			continue
		}
		out = append(out, *seat)
	}

	sortByPosition(out)

	return out, nil
}

func (inv *inventory) GetAvailableByIDs(_ context.Context, showID int, seatIDs []int) ([]domain.Seat, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	out := make([]domain.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		seat, ok := inv.seats[id]
		if ok && seat.ShowID == showID && !seat.IsBooked {
			out = append(out, *seat)
		}
	}

	sortByPosition(out)

	return out, nil
}

func (inv *inventory) CreateWithSeats(_ context.Context, booking *domain.Booking, seatIDs []int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, id := range seatIDs {
		seat, ok := inv.seats[id]
		if !ok || seat.ShowID != booking.ShowID || seat.IsBooked {
			return domain.ErrSeatsUnavailable
		}
	}

	inv.nextID++
	booking.ID = inv.nextID
	booking.Seats = nil
	bookingID := booking.ID

	for _, id := range seatIDs {
		seat := inv.seats[id]
		seat.IsBooked = true
		seat.BookingID = &bookingID
		booking.Seats = append(booking.Seats, *seat)
	}

	stored := *booking
	inv.bookings[booking.ID] = &stored

	return nil
}

func (inv *inventory) GetByID(_ context.Context, id int) (*domain.Booking, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	b, ok := inv.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	out := *b
	return &out, nil
}

func (inv *inventory) GetByUserID(
	_ context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	inv.mu.Lock()
	defer inv.mu.Unlock()

	all := make([]domain.Booking, 0)
	for _, b := range inv.bookings {
		if b.UserID == userID {
			all = append(all, *b)
		}
	}

	slices.SortFunc(all, func(a, b domain.Booking) int { return b.ID - a.ID })

	start := min(pagination.Offset(), len(all))
	end := min(start+pagination.Limit(), len(all))

	return all[start:end], domain.NewMetadata(len(all), pagination), nil
}

func (inv *inventory) Cancel(_ context.Context, id int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	b, ok := inv.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusConfirmed {
		return domain.ErrBookingNotCancellable
	}

	b.Status = domain.BookingStatusCancelled
	b.Seats = nil

	for _, seat := range inv.seats {
		if seat.BookingID != nil && *seat.BookingID == id {
			seat.IsBooked = false
			seat.BookingID = nil
		}
	}

	return nil
}

// owners maps every booked seat of the show to its booking.
func (inv *inventory) owners(showID int) map[int]int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	out := make(map[int]int)
	for _, seat := range inv.seats {
		if seat.ShowID == showID && seat.IsBooked {
			out[seat.ID] = *seat.BookingID
		}
	}

	return out
}

func sortByPosition(seats []domain.Seat) {
	slices.SortFunc(seats, func(a, b domain.Seat) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Number - b.Number
	})
}

type noopPublisher struct{}

func (noopPublisher) PublishBookingConfirmed(context.Context, *domain.Booking, *domain.Show) error {
	return nil
}
