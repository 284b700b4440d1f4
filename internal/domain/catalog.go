package domain

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID        int
	Title     string
	CreatedAt time.Time
}

type Theater struct {
	ID        int
	Name      string
	City      string
	CreatedAt time.Time
}

// Bounds of a hall layout. Seat inventory is materialized in memory per show.
const (
	MaxHallRows     = 100
	MaxSeatsPerRow  = 100
	MaxHallCapacity = 2000
)

// HallLayout maps a 1-based row number to the number of seats in that row.
type HallLayout map[int]int

func (l HallLayout) Validate() error {
	if len(l) == 0 {
		return ErrInvalidSeatLayout
	}

	total := 0
	for row, count := range l {
		if row < 1 || row > MaxHallRows || count < 1 || count > MaxSeatsPerRow {
			return ErrInvalidSeatLayout
		}

		total += count
	}

	if total > MaxHallCapacity {
		return ErrInvalidSeatLayout
	}

	return nil
}

// Rows returns the row numbers in ascending order.
func (l HallLayout) Rows() []int {
	rows := make([]int, 0, len(l))
	for row := range l {
		rows = append(rows, row)
	}

	slices.Sort(rows)

	return rows
}

func (l HallLayout) Capacity() int {
	total := 0
	for _, count := range l {
		total += count
	}

	return total
}

type Hall struct {
	ID        int
	TheaterID int
	Name      string
	Layout    HallLayout
	CreatedAt time.Time
}

func (h *Hall) TotalRows() int {
	return len(h.Layout)
}

type Show struct {
	ID        int
	MovieID   int
	TheaterID int
	HallID    int
	StartTime time.Time
	Price     decimal.Decimal
	CreatedAt time.Time
}

// ShowListing is a show joined with the names a customer needs to pick it.
type ShowListing struct {
	Show
	MovieTitle  string
	TheaterName string
	HallName    string
}

type CatalogRepository interface {
	CreateMovie(ctx context.Context, movie *Movie) error
	GetMovie(ctx context.Context, id int) (*Movie, error)
	CreateTheater(ctx context.Context, theater *Theater) error
	GetTheater(ctx context.Context, id int) (*Theater, error)
	CreateHall(ctx context.Context, hall *Hall) error
	GetHall(ctx context.Context, id int) (*Hall, error)
	CreateShowWithSeats(ctx context.Context, show *Show, seatsFn func(*Show) []Seat) error
	GetShow(ctx context.Context, id int) (*Show, error)
	GetShowsByMovie(ctx context.Context, movieID int) ([]ShowListing, error)
}
