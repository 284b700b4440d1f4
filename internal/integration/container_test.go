package integration_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	migrationsPath   = "file://../../migrations"
	containerTimeout = 60 * time.Second
)

type PostgresContainer struct {
	Container        *postgres.PostgresContainer
	ConnectionString string
}

type RedisContainer struct {
	Container *tcredis.RedisContainer
	Addr      string
}

func getDbContainer(ctx context.Context) (*PostgresContainer, error) {
	container, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategyAndDeadline(containerTimeout,
			// Postgres restarts once after init scripts, so the second ready log counts.
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return postgresURL(host, port.Port())
			}),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start DB container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	if err := runMigrations(connStr); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresContainer{
		Container:        container,
		ConnectionString: connStr,
	}, nil
}

func postgresURL(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port, dbName)
}

func runMigrations(dsn string) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("pgx migration driver error: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migrate.New error: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func getCacheContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := tcredis.Run(ctx, cacheImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to start cache container: %w", err)
	}

	// host:port, as the application dials Redis by address.
	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache endpoint: %w", err)
	}

	return &RedisContainer{
		Container: container,
		Addr:      addr,
	}, nil
}
