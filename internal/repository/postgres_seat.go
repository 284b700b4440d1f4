package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

const seatColumns = `id, show_id, hall_id, row_number, seat_number, is_aisle, is_booked, booking_id`

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) ListByShow(
	ctx context.Context,
	showID int,
	filter domain.SeatFilter) ([]domain.Seat, error) {

	var condition string

	switch filter {
	case domain.SeatFilterAll, "":
	case domain.SeatFilterAvailable:
		condition = "AND NOT is_booked"
	case domain.SeatFilterBooked:
		condition = "AND is_booked"
	default:
		return nil, fmt.Errorf("unknown seat filter %q", filter)
	}

	// The (row, seat) ordering is relied upon by the consecutive seat search.
	query := fmt.Sprintf(`
		SELECT %s
		FROM seats
		WHERE show_id = $1 %s
		ORDER BY row_number, seat_number
	`, seatColumns, condition)

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}

	return scanSeats(rows)
}

func (p *PostgresSeatRepository) GetAvailableByIDs(
	ctx context.Context,
	showID int,
	seatIDs []int) ([]domain.Seat, error) {

	query := fmt.Sprintf(`
		SELECT %s
		FROM seats
		WHERE id = ANY($1) AND show_id = $2 AND NOT is_booked
		ORDER BY row_number, seat_number
	`, seatColumns)

	rows, err := p.db.Query(ctx, query, seatIDs, showID)
	if err != nil {
		return nil, err
	}

	return scanSeats(rows)
}

// createSeats bulk inserts the seat inventory of a show inside tx. A show gets its
// seats exactly once; a second attempt fails with ErrDuplicateSeats.
func createSeats(ctx context.Context, tx pgx.Tx, seats []domain.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	showID := seats[0].ShowID

	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM seats WHERE show_id = $1)`, showID).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("show %d: %w", showID, domain.ErrDuplicateSeats)
	}

	rows := make([][]any, 0, len(seats))
	for _, seat := range seats {
		if seat.ShowID != showID {
			return fmt.Errorf("seat %s belongs to show %d, expected %d: %w",
				seat.Label(), seat.ShowID, showID, domain.ErrInvariantViolation)
		}

		rows = append(rows, []any{
			seat.ShowID,
			seat.HallID,
			seat.Row,
			seat.Number,
			seat.IsAisle,
		})
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"seats"},
		[]string{"show_id", "hall_id", "row_number", "seat_number", "is_aisle"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("show %d: %w", showID, domain.ErrDuplicateSeats)
		}

		return err
	}

	return nil
}

func scanSeats(rows pgx.Rows) ([]domain.Seat, error) {
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(
			&seat.ID,
			&seat.ShowID,
			&seat.HallID,
			&seat.Row,
			&seat.Number,
			&seat.IsAisle,
			&seat.IsBooked,
			&seat.BookingID,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
