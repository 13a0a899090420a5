package save

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"shopfloor/http-server/response"
	"shopfloor/internal/storage"
)

type WorkOrderCreator interface {
	Create(wo storage.WorkOrder) (storage.WorkOrder, error)
}

// SaveWorkOrder создаёт наряд. Без операций они строятся по маршруту routing_id.
func SaveWorkOrder(log *slog.Logger, creator WorkOrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-orders.save.SaveWorkOrder"

		var req storage.WorkOrder
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		wo, err := creator.Create(req)
		if err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		log.Info("work order saved", slog.String("op", op), slog.String("id", wo.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, wo)
	}
}
