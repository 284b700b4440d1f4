package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/mocks"
	"github.com/metinatakli/seat-booking/internal/validator"
)

type testDeps struct {
	catalog   *mocks.MockCatalogRepo
	seats     *mocks.MockSeatRepo
	bookings  *mocks.MockBookingRepo
	locks     *mocks.MockLockService
	publisher *mocks.MockEventPublisher
}

func newTestDeps() *testDeps {
	return &testDeps{
		catalog:   new(mocks.MockCatalogRepo),
		seats:     new(mocks.MockSeatRepo),
		bookings:  new(mocks.MockBookingRepo),
		locks:     new(mocks.MockLockService),
		publisher: new(mocks.MockEventPublisher),
	}
}

func (d *testDeps) assertExpectations(t *testing.T) {
	d.catalog.AssertExpectations(t)
	d.seats.AssertExpectations(t)
	d.bookings.AssertExpectations(t)
	d.locks.AssertExpectations(t)
	d.publisher.AssertExpectations(t)
}

func newTestApplication(deps *testDeps) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := booking.NewService(
		deps.catalog,
		deps.seats,
		deps.bookings,
		deps.locks,
		deps.publisher,
		booking.WithLogger(logger),
	)

	return NewApp(
		Config{Env: "test"},
		logger,
		nil,
		nil,
		validator.NewValidator(),
		deps.catalog,
		deps.bookings,
		service,
	)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if len(validationResp.ValidationErrors) == 0 {
			if validationResp.Message != tt.wantErrMessage {
				t.Errorf("Error message = %v, want %v", validationResp.Message, tt.wantErrMessage)
			}
			return
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}
