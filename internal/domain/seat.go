package domain

import (
	"context"
	"fmt"
)

// Seats numbered up to aisleSeatsPerRow in every row are aisle seats.
const aisleSeatsPerRow = 3

type SeatFilter string

const (
	SeatFilterAll       SeatFilter = "all"
	SeatFilterAvailable SeatFilter = "available"
	SeatFilterBooked    SeatFilter = "booked"
)

type Seat struct {
	ID        int
	ShowID    int
	HallID    int
	Row       int
	Number    int
	IsAisle   bool
	IsBooked  bool
	BookingID *int
}

func (s Seat) Label() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Number)
}

// NewShowSeats materializes the seat inventory of a show from its hall layout,
// ordered by row and seat number.
func NewShowSeats(show *Show, hall *Hall) []Seat {
	seats := make([]Seat, 0, hall.Layout.Capacity())

	for _, row := range hall.Layout.Rows() {
		for number := 1; number <= hall.Layout[row]; number++ {
			seats = append(seats, Seat{
				ShowID:  show.ID,
				HallID:  hall.ID,
				Row:     row,
				Number:  number,
				IsAisle: number <= aisleSeatsPerRow,
			})
		}
	}

	return seats
}

type HallLayoutView struct {
	HallID         int
	ShowID         int
	TotalRows      int
	Layout         HallLayout
	BookedSeats    []Seat
	AvailableSeats []Seat
}

type SeatRepository interface {
	// ListByShow returns the seats of a show ordered by row and seat number.
	ListByShow(ctx context.Context, showID int, filter SeatFilter) ([]Seat, error)
	GetAvailableByIDs(ctx context.Context, showID int, seatIDs []int) ([]Seat, error)
}
