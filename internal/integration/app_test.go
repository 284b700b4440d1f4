package integration_test

import (
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/app"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/events"
	"github.com/metinatakli/seat-booking/internal/lock"
	"github.com/metinatakli/seat-booking/internal/repository"
	appvalidator "github.com/metinatakli/seat-booking/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App     *app.Application
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Booking *booking.Service
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	var out io.Writer = io.Discard
	if os.Getenv("INTEGRATION_VERBOSE") != "" {
		out = os.Stderr
	}

	logger := slog.New(slog.NewTextHandler(out, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	catalogRepo := repository.NewPostgresCatalogRepository(db)
	seatRepo := repository.NewPostgresSeatRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	bookingService := booking.NewService(
		catalogRepo,
		seatRepo,
		bookingRepo,
		lock.NewRedisLockService(redisClient),
		events.NoopPublisher{},
		booking.WithLogger(logger),
		booking.WithLockLease(cfg.Booking.LockLease),
		booking.WithSuggestionWorkers(cfg.Booking.SuggestionWorkers),
	)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		catalogRepo,
		bookingRepo,
		bookingService,
	)

	return &TestApp{
		App:     application,
		DB:      db,
		Redis:   redisClient,
		Booking: bookingService,
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
}
