package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Suggestion struct {
	ShowID         int
	MovieTitle     string
	TheaterName    string
	HallName       string
	StartTime      time.Time
	PricePerSeat   decimal.Decimal
	Seats          []Seat
	TotalAvailable int
}

func NewSuggestion(listing ShowListing, seats []Seat) Suggestion {
	return Suggestion{
		ShowID:         listing.ID,
		MovieTitle:     listing.MovieTitle,
		TheaterName:    listing.TheaterName,
		HallName:       listing.HallName,
		StartTime:      listing.StartTime,
		PricePerSeat:   listing.Price,
		Seats:          seats,
		TotalAvailable: len(seats),
	}
}

// SortSuggestions orders suggestions by distance from preferredTime when given,
// and by show id otherwise. Show id also breaks distance ties.
func SortSuggestions(suggestions []Suggestion, preferredTime *time.Time) {
	slices.SortStableFunc(suggestions, func(a, b Suggestion) int {
		if preferredTime != nil {
			c := cmp.Compare(distance(a.StartTime, *preferredTime), distance(b.StartTime, *preferredTime))
			if c != 0 {
				return c
			}
		}

		return cmp.Compare(a.ShowID, b.ShowID)
	})
}

func distance(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}

	return d
}
