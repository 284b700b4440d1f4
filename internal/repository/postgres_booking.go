package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) CreateWithSeats(ctx context.Context, booking *domain.Booking, seatIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (user_id, show_id, reference, total_amount, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.ShowID,
			booking.Reference,
			booking.TotalAmount,
			string(booking.Status)).Scan(&booking.ID, &booking.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		// Claiming only seats that are still free makes a racing claim on an
		// overlapping seat set lose here even when it holds a different lock key.
		query = fmt.Sprintf(`
			UPDATE seats
			SET is_booked = TRUE, booking_id = $1
			WHERE show_id = $2 AND id = ANY($3) AND NOT is_booked
			RETURNING %s
		`, seatColumns)

		rows, err := tx.Query(ctx, query, booking.ID, booking.ShowID, seatIDs)
		if err != nil {
			return fmt.Errorf("failed to claim seats: %w", err)
		}

		seats, err := scanSeats(rows)
		if err != nil {
			return fmt.Errorf("failed to claim seats: %w", err)
		}

		if len(seats) != len(seatIDs) {
			return domain.ErrSeatsUnavailable
		}

		sortSeats(seats)
		booking.Seats = seats

		return nil
	})
}

func (p *PostgresBookingRepository) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, show_id, reference, total_amount, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking
	var status string

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowID,
		&booking.Reference,
		&booking.TotalAmount,
		&status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}

		return nil, err
	}

	booking.Status = domain.BookingStatus(status)

	query = fmt.Sprintf(`
		SELECT %s
		FROM seats
		WHERE booking_id = $1
		ORDER BY row_number, seat_number
	`, seatColumns)

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}

	booking.Seats, err = scanSeats(rows)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetByUserID(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			id,
			user_id,
			show_id,
			reference,
			total_amount,
			status,
			created_at,
			updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.Booking
		var status string

		err := rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.UserID,
			&booking.ShowID,
			&booking.Reference,
			&booking.TotalAmount,
			&status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		booking.Status = domain.BookingStatus(status)
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return bookings, domain.NewMetadata(totalRecords, pagination), nil
}

func (p *PostgresBookingRepository) Cancel(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var status string

		err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrBookingNotFound
			}

			return err
		}

		if domain.BookingStatus(status) != domain.BookingStatusConfirmed {
			return domain.ErrBookingNotCancellable
		}

		_, err = tx.Exec(ctx, `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`,
			string(domain.BookingStatusCancelled), id)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE seats SET is_booked = FALSE, booking_id = NULL WHERE booking_id = $1`, id)

		return err
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func sortSeats(seats []domain.Seat) {
	slices.SortFunc(seats, func(a, b domain.Seat) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}

		return a.Number - b.Number
	})
}
