package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/jsonutil"
	"github.com/metinatakli/seat-booking/internal/vcs"
)

const checkTimeout = 2 * time.Second

// Check reports whether a dependency of the service is reachable.
type Check func(ctx context.Context) error

type HealthcheckHandler struct {
	env    string
	checks map[string]Check
}

func NewHealthcheckHandler(env string, checks map[string]Check) *HealthcheckHandler {
	return &HealthcheckHandler{
		env:    env,
		checks: checks,
	}
}

func (h *HealthcheckHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	httpStatus := http.StatusOK

	var dependencies map[string]string
	if len(h.checks) > 0 {
		dependencies = make(map[string]string, len(h.checks))

		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		for name, check := range h.checks {
			dependencies[name] = "UP"

			if err := check(ctx); err != nil {
				dependencies[name] = "DOWN"
				status = "DOWN"
				httpStatus = http.StatusServiceUnavailable
			}
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: h.env,
		},
		Dependencies: dependencies,
	}

	jsonutil.WriteJSON(w, httpStatus, resp, nil)
}
