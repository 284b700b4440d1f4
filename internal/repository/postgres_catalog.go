package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

type PostgresCatalogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogRepository(db *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

func (p *PostgresCatalogRepository) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title)
		VALUES ($1)
		RETURNING id, created_at
	`

	return p.db.QueryRow(ctx, query, movie.Title).Scan(&movie.ID, &movie.CreatedAt)
}

func (p *PostgresCatalogRepository) GetMovie(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, created_at FROM movies WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresCatalogRepository) CreateTheater(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (name, city)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return p.db.QueryRow(ctx, query, theater.Name, theater.City).Scan(&theater.ID, &theater.CreatedAt)
}

func (p *PostgresCatalogRepository) GetTheater(ctx context.Context, id int) (*domain.Theater, error) {
	query := `SELECT id, name, city, created_at FROM theaters WHERE id = $1`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(&theater.ID, &theater.Name, &theater.City, &theater.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTheaterNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresCatalogRepository) CreateHall(ctx context.Context, hall *domain.Hall) error {
	layout, err := json.Marshal(hall.Layout)
	if err != nil {
		return fmt.Errorf("failed to encode hall layout: %w", err)
	}

	query := `
		INSERT INTO halls (theater_id, name, layout)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err = p.db.QueryRow(ctx, query, hall.TheaterID, hall.Name, layout).Scan(&hall.ID, &hall.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTheaterNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresCatalogRepository) GetHall(ctx context.Context, id int) (*domain.Hall, error) {
	query := `SELECT id, theater_id, name, layout, created_at FROM halls WHERE id = $1`

	var hall domain.Hall
	var layout []byte

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.TheaterID, &hall.Name, &layout, &hall.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHallNotFound
		}

		return nil, err
	}

	if err := json.Unmarshal(layout, &hall.Layout); err != nil {
		return nil, fmt.Errorf("failed to decode layout of hall %d: %w", id, err)
	}

	return &hall, nil
}

// CreateShowWithSeats inserts the show and the seats built by seatsFn from the
// stored show in one transaction, so a show never exists without its inventory.
func (p *PostgresCatalogRepository) CreateShowWithSeats(
	ctx context.Context,
	show *domain.Show,
	seatsFn func(*domain.Show) []domain.Seat) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO shows (movie_id, theater_id, hall_id, start_time, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			show.MovieID,
			show.TheaterID,
			show.HallID,
			show.StartTime,
			show.Price).Scan(&show.ID, &show.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("show references a missing movie, theater or hall: %w", domain.ErrRecordNotFound)
			}

			return err
		}

		return createSeats(ctx, tx, seatsFn(show))
	})
}

func (p *PostgresCatalogRepository) GetShow(ctx context.Context, id int) (*domain.Show, error) {
	query := `
		SELECT id, movie_id, theater_id, hall_id, start_time, price, created_at
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.TheaterID,
		&show.HallID,
		&show.StartTime,
		&show.Price,
		&show.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowNotFound
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresCatalogRepository) GetShowsByMovie(ctx context.Context, movieID int) ([]domain.ShowListing, error) {
	query := `
		SELECT
			s.id,
			s.movie_id,
			s.theater_id,
			s.hall_id,
			s.start_time,
			s.price,
			s.created_at,
			m.title,
			t.name,
			h.name
		FROM shows s
		JOIN movies m ON m.id = s.movie_id
		JOIN theaters t ON t.id = s.theater_id
		JOIN halls h ON h.id = s.hall_id
		WHERE s.movie_id = $1
		ORDER BY s.id
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]domain.ShowListing, 0)

	for rows.Next() {
		var l domain.ShowListing

		err := rows.Scan(
			&l.ID,
			&l.MovieID,
			&l.TheaterID,
			&l.HallID,
			&l.StartTime,
			&l.Price,
			&l.CreatedAt,
			&l.MovieTitle,
			&l.TheaterName,
			&l.HallName,
		)
		if err != nil {
			return nil, err
		}

		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
