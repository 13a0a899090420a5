package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"shopfloor/http-server/response"
	"shopfloor/internal/filter"
	"shopfloor/internal/storage"
)

type WorkOrderReader interface {
	WorkOrders() []storage.WorkOrder
	WorkOrder(id string) (storage.WorkOrder, error)
}

// GetWorkOrders: список нарядов с фильтрами status, site, from, to, search.
func GetWorkOrders(log *slog.Logger, reader WorkOrderReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-orders.get.GetWorkOrders"

		criteria, err := filter.FromQuery(r.URL.Query())
		if err != nil {
			log.Debug("invalid filter", slog.String("op", op), slog.String("error", err.Error()))
			response.BadRequest(w, r, err.Error())
			return
		}

		render.JSON(w, r, filter.List(reader.WorkOrders(), criteria, filter.WorkOrderFields))
	}
}

func GetWorkOrder(log *slog.Logger, reader WorkOrderReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work-orders.get.GetWorkOrder"

		wo, err := reader.WorkOrder(chi.URLParam(r, "id"))
		if err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		render.JSON(w, r, wo)
	}
}
