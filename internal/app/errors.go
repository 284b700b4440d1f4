package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
	appvalidator "github.com/metinatakli/seat-booking/internal/validator"
)

const (
	ErrInternalServer = "The server encountered a problem and could not process your request"
	ErrNotFound       = "The requested resource not found"
	ErrInvalidFields  = "One or more fields have invalid values"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) notFoundResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, capitalize(err.Error()))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, capitalize(err.Error()))
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrInvalidFields,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, len(validationErrors)),
	}

	for i, v := range validationErrors {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: v.Field(),
			Issue: appvalidator.ValidationMessage(v),
		}
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// domainErrorResponse maps the failure taxonomy of the booking core onto HTTP:
// missing records are 404, contention and state conflicts are 409 and invalid
// seat selections are 422. Anything else is an internal error.
func (app *Application) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logger := app.contextGetLogger(r)

	switch {
	case domain.IsNotFound(err):
		app.notFoundResponseWithErr(w, r, err)
	case domain.IsRetryable(err),
		errors.Is(err, domain.ErrBookingNotCancellable),
		errors.Is(err, domain.ErrDuplicateSeats):
		logger.Warn("request rejected with conflict", "error", err)
		app.editConflictResponseWithErr(w, r, err)
	case errors.Is(err, domain.ErrInvalidSeatSelection), errors.Is(err, domain.ErrInvalidSeatLayout):
		app.errorResponse(w, r, http.StatusUnprocessableEntity, capitalize(err.Error()))
	default:
		app.serverErrorResponse(w, r, err)
	}
}
