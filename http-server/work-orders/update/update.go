package update

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"shopfloor/http-server/response"
	"shopfloor/internal/storage"
)

type WorkOrderUpdater interface {
	SetProduced(workOrderID string, produced int) (storage.WorkOrder, error)
	SetStatus(workOrderID string, status storage.WorkOrderStatus) (storage.WorkOrder, error)
}

type ProducedRequest struct {
	Produced *int `json:"produced"`
}

type StatusRequest struct {
	Status storage.WorkOrderStatus `json:"status"`
}

// UpdateProduced задаёт выпущенное количество, прогресс пересчитывается.
func UpdateProduced(log *slog.Logger, updater WorkOrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-orders.update.UpdateProduced"

		var req ProducedRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}
		if req.Produced == nil {
			response.BadRequest(w, r, "produced обязателен")
			return
		}

		wo, err := updater.SetProduced(chi.URLParam(r, "id"), *req.Produced)
		if err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		render.JSON(w, r, wo)
	}
}

func UpdateStatus(log *slog.Logger, updater WorkOrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-orders.update.UpdateStatus"

		var req StatusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		wo, err := updater.SetStatus(chi.URLParam(r, "id"), req.Status)
		if err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		render.JSON(w, r, wo)
	}
}
