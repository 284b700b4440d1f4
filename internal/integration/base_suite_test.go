package integration_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/seat-booking/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName         = "seat_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

// BaseSuite runs the application against real Postgres and Redis containers.
// Every test starts from the seeded catalog of testdata/catalog_up.sql.
type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
	server         *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	var err error

	s.dbContainer, err = getDbContainer(ctx)
	s.Require().NoError(err)

	s.cacheContainer, err = getCacheContainer(ctx)
	s.Require().NoError(err)

	s.app, err = newTestApp(testConfig(s.dbContainer, s.cacheContainer))
	s.Require().NoError(err, "cannot initialize app")

	s.server = httptest.NewServer(s.app.App.Routes())
}

func testConfig(db *PostgresContainer, cache *RedisContainer) app.Config {
	return app.Config{
		Port: 3000,
		Env:  "test",
		DB: app.DBConfig{
			DSN:          db.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          cache.Addr,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		Booking: app.BookingConfig{
			LockLease:         5 * time.Second,
			SuggestionWorkers: 4,
		},
	}
}

func (s *BaseSuite) SetupTest() {
	resetState(s.T(), s.app)
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}

	if s.app != nil {
		s.app.Close()
	}

	for _, c := range []testcontainers.Container{s.dbContainerOrNil(), s.cacheContainerOrNil()} {
		if c == nil {
			continue
		}

		if err := testcontainers.TerminateContainer(c); err != nil {
			s.T().Logf("failed to terminate container: %s", err)
		}
	}
}

func (s *BaseSuite) dbContainerOrNil() testcontainers.Container {
	if s.dbContainer == nil {
		return nil
	}
	return s.dbContainer.Container
}

func (s *BaseSuite) cacheContainerOrNil() testcontainers.Container {
	if s.cacheContainer == nil {
		return nil
	}
	return s.cacheContainer.Container
}

// Scenario is a single request against the application and the response it
// must produce. ExpectedResponse is compared as JSON, ignoring fields that
// change between runs; AfterTestFunc can inspect the rest.
type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		res := recordRequest(testApp, req).Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
