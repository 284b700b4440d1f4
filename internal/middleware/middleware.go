package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/jsonutil"
)

type contextKey string

const loggerContextKey = contextKey("logger")

// RequestLogger stores a logger carrying the request id, method and uri in the
// request context. It must run after chi's RequestID middleware.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base.With(
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"uri", r.URL.RequestURI(),
			)

			ctx := context.WithValue(r.Context(), loggerContextKey, logger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerFromContext returns the request scoped logger, or fallback if the
// request did not pass through RequestLogger.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return fallback
	}

	return logger
}

func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				LoggerFromContext(r.Context(), slog.Default()).Error("recovered from panic", "error", fmt.Sprintf("%v", err))

				resp := api.ErrorResponse{
					Message:   "The server encountered a problem and could not process your request",
					RequestId: middleware.GetReqID(r.Context()),
					Timestamp: time.Now(),
				}

				jsonutil.WriteJSON(w, http.StatusInternalServerError, resp, http.Header{
					"Connection": []string{"close"},
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	resp := api.ErrorResponse{
		Message:   "The requested resource not found",
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	jsonutil.WriteJSON(w, http.StatusNotFound, resp, nil)
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	resp := api.ErrorResponse{
		Message:   fmt.Sprintf("The %s method is not supported for this resource", r.Method),
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	jsonutil.WriteJSON(w, http.StatusMethodNotAllowed, resp, nil)
}
