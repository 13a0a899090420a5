package remove

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"shopfloor/http-server/response"
)

type WorkOrderRemover interface {
	Remove(workOrderID string) error
}

// DeleteWorkOrder удаляет наряд вместе с операциями.
func DeleteWorkOrder(log *slog.Logger, remover WorkOrderRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-orders.delete.DeleteWorkOrder"

		id := chi.URLParam(r, "id")
		if err := remover.Remove(id); err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		log.Info("work order deleted", slog.String("op", op), slog.String("id", id))
		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
