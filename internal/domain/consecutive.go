package domain

import "slices"

// FindConsecutiveBlock returns the first run of count available seats in a single
// row whose seat numbers are strictly sequential, scanning rows in ascending order
// and each row leftmost first. It returns nil when no such run exists.
//
// seats must be the available seats of one show ordered by row and seat number.
func FindConsecutiveBlock(seats []Seat, count int) []Seat {
	if count < 1 || len(seats) < count {
		return nil
	}

	// Seats are pre-sorted by (row, number), so a row is a contiguous run of the
	// slice and a gap left by a booked seat breaks the sequence.
	run := 0

	for i, seat := range seats {
		if i > 0 && seat.Row == seats[i-1].Row && seat.Number == seats[i-1].Number+1 {
			run++
		} else {
			run = 1
		}

		if run == count {
			return slices.Clone(seats[i-count+1 : i+1])
		}
	}

	return nil
}
