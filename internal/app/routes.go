package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/seat-booking/internal/handler"
	appmiddleware "github.com/metinatakli/seat-booking/internal/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowedHandler)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(appmiddleware.RequestLogger(app.logger))
	r.Use(appmiddleware.RecoverPanic)

	health := handler.NewHealthcheckHandler(app.config.Env, app.healthChecks())
	r.Get("/healthcheck", health.GetHealth)

	r.Post("/movies", app.CreateMovieHandler)
	r.Get("/movies/{movieId}/suggestions", app.GetSuggestionsHandler)

	r.Post("/theaters", app.CreateTheaterHandler)

	r.Post("/halls", app.CreateHallHandler)
	r.Get("/halls/{hallId}/layout", app.GetHallLayoutHandler)

	r.Route("/shows", func(r chi.Router) {
		r.Post("/", app.CreateShowHandler)
		r.Get("/{showId}", app.GetShowHandler)
		r.Get("/{showId}/consecutive-seats", app.FindConsecutiveSeatsHandler)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBookingHandler)
		r.Post("/group", app.CreateGroupBookingHandler)
		r.Get("/{bookingId}", app.GetBookingHandler)
		r.Post("/{bookingId}/cancel", app.CancelBookingHandler)
	})

	r.Get("/users/{userId}/bookings", app.GetUserBookingsHandler)

	return r
}

func (app *Application) healthChecks() map[string]handler.Check {
	checks := make(map[string]handler.Check)

	if app.db != nil {
		checks["postgres"] = app.db.Ping
	}

	if app.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return app.redis.Ping(ctx).Err()
		}
	}

	return checks
}
