package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRows(layout HallLayout) []Seat {
	return NewShowSeats(&Show{ID: 1}, &Hall{ID: 1, Layout: layout})
}

func without(seats []Seat, labels ...string) []Seat {
	booked := make(map[string]bool, len(labels))
	for _, l := range labels {
		booked[l] = true
	}

	available := make([]Seat, 0, len(seats))
	for _, s := range seats {
		if !booked[s.Label()] {
			available = append(available, s)
		}
	}

	return available
}

func labels(seats []Seat) []string {
	out := make([]string, len(seats))
	for i, s := range seats {
		out[i] = s.Label()
	}

	return out
}

func TestFindConsecutiveBlock(t *testing.T) {
	tests := []struct {
		name  string
		seats []Seat
		count int
		want  []string
	}{
		{
			name:  "lowest row and leftmost window when everything is free",
			seats: newRows(HallLayout{1: 8, 2: 8}),
			count: 3,
			want:  []string{"1-1", "1-2", "1-3"},
		},
		{
			name:  "skips the gap left by a booked seat",
			seats: without(newRows(HallLayout{1: 8, 2: 8}), "1-2"),
			count: 3,
			want:  []string{"1-4", "1-5", "1-6"},
		},
		{
			name:  "count larger than any row",
			seats: newRows(HallLayout{1: 8, 2: 8}),
			count: 9,
			want:  nil,
		},
		{
			name:  "count exactly fills a row",
			seats: newRows(HallLayout{1: 8}),
			count: 8,
			want:  []string{"1-1", "1-2", "1-3", "1-4", "1-5", "1-6", "1-7", "1-8"},
		},
		{
			name:  "no available seats",
			seats: nil,
			count: 2,
			want:  nil,
		},
		{
			name:  "falls through to the next row",
			seats: without(newRows(HallLayout{1: 4, 2: 4}), "1-2", "1-4"),
			count: 2,
			want:  []string{"2-1", "2-2"},
		},
		{
			name:  "run does not continue across rows",
			seats: without(newRows(HallLayout{1: 3, 2: 3}), "1-1", "2-2", "2-3"),
			count: 3,
			want:  nil,
		},
		{
			name:  "enough free seats but none adjacent",
			seats: without(newRows(HallLayout{1: 6}), "1-2", "1-4", "1-6"),
			count: 2,
			want:  nil,
		},
		{
			name:  "non-positive count",
			seats: newRows(HallLayout{1: 4}),
			count: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConsecutiveBlock(tt.seats, tt.count)

			if tt.want == nil {
				assert.Empty(t, got)
				return
			}

			assert.Equal(t, tt.want, labels(got))
		})
	}
}

func TestFindConsecutiveBlockIsDeterministic(t *testing.T) {
	seats := without(newRows(HallLayout{1: 10, 2: 10, 3: 10}), "1-5", "2-1")

	first := FindConsecutiveBlock(seats, 4)
	for range 10 {
		assert.Equal(t, first, FindConsecutiveBlock(seats, 4))
	}
}

func TestFindConsecutiveBlockReturnsCopy(t *testing.T) {
	seats := newRows(HallLayout{1: 4})

	block := FindConsecutiveBlock(seats, 2)
	block[0].IsBooked = true

	assert.False(t, seats[0].IsBooked)
}
