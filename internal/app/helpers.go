package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/seat-booking/internal/jsonutil"
	appmiddleware "github.com/metinatakli/seat-booking/internal/middleware"
)

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return appmiddleware.LoggerFromContext(r.Context(), app.logger)
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

// readIDParam reads a positive integer path parameter.
func readIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}

	return id, nil
}

// readIntQuery returns nil when the query parameter is absent.
func readIntQuery(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}

	return &v, nil
}

func readTimeQuery(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC 3339 timestamp", name)
	}

	return &t, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return strings.TrimSpace(string(r))
}
