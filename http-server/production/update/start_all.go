package update

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"shopfloor/http-server/response"
)

type Starter interface {
	StartAll(workOrderID string) (int, error)
}

type StartAllResponse struct {
	Started int `json:"started"`
}

// StartAll запускает все операции в PENDING/PAUSED без активного перерыва.
// Без work_order: по всем нарядам.
func StartAll(log *slog.Logger, starter Starter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.update.StartAll"

		workOrder := r.URL.Query().Get("work_order")
		started, err := starter.StartAll(workOrder)
		if err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		log.Info("operations started", slog.String("op", op), slog.String("work_order", workOrder), slog.Int("started", started))
		render.JSON(w, r, StartAllResponse{Started: started})
	}
}
