package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/metinatakli/seat-booking/internal/events"
	"github.com/metinatakli/seat-booking/internal/lock"
	"github.com/metinatakli/seat-booking/internal/repository"
	appvalidator "github.com/metinatakli/seat-booking/internal/validator"
	"github.com/metinatakli/seat-booking/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "seat-booking-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate

	catalogRepo domain.CatalogRepository
	bookingRepo domain.BookingRepository
	booking     *booking.Service
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	AMQP             AMQPConfig
	Booking          BookingConfig
	OtelCollectorUrl string
	OtelSampleRatio  float64
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type AMQPConfig struct {
	URL string
}

type BookingConfig struct {
	LockLease         time.Duration
	PublishTimeout    time.Duration
	SuggestionWorkers int
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	catalogRepo domain.CatalogRepository,
	bookingRepo domain.BookingRepository,
	bookingService *booking.Service) *Application {

	return &Application{
		config:      cfg,
		logger:      logger,
		db:          db,
		redis:       redisClient,
		validator:   validator,
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		booking:     bookingService,
	}
}

func Run() error {
	// A missing .env file is fine: every setting can come from the environment or flags.
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("APP_ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", os.Getenv("AMQP_URL"), "RabbitMQ URL, booking events are not published when empty")

	flag.DurationVar(&cfg.Booking.LockLease, "booking-lock-lease", booking.DefaultLockLease, "Lease of a seat set lock")
	flag.DurationVar(&cfg.Booking.PublishTimeout, "booking-publish-timeout", 5*time.Second, "How long a confirmed booking waits on the event broker")
	flag.IntVar(&cfg.Booking.SuggestionWorkers, "booking-suggestion-workers", 8, "Shows searched concurrently for suggestions")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")
	flag.Float64Var(&cfg.OtelSampleRatio, "otel-sample-ratio", 1, "Fraction of root traces sampled")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	shutdownTelemetry, err := initTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(textHandler, otelslog.NewHandler(serviceName)))
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher domain.EventPublisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL)
		if err != nil {
			return err
		}
		defer amqpPublisher.Close()

		publisher = amqpPublisher
	}

	catalogRepo := repository.NewPostgresCatalogRepository(db)
	seatRepo := repository.NewPostgresSeatRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	bookingService := booking.NewService(
		catalogRepo,
		seatRepo,
		bookingRepo,
		lock.NewRedisLockService(redisClient),
		publisher,
		booking.WithLogger(logger),
		booking.WithLockLease(cfg.Booking.LockLease),
		booking.WithPublishTimeout(cfg.Booking.PublishTimeout),
		booking.WithSuggestionWorkers(cfg.Booking.SuggestionWorkers),
	)

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		catalogRepo,
		bookingRepo,
		bookingService,
	)

	return app.serve()
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}
