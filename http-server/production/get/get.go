package get

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"shopfloor/http-server/response"
	"shopfloor/internal/storage"
)

type ProductionReader interface {
	Summary(workOrderID string) (storage.Summary, error)
	Activity() []storage.Activity
}

// GetSummary: счётчики по статусам и общее время; work_order сужает выборку до одного наряда.
func GetSummary(log *slog.Logger, reader ProductionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetSummary"

		summary, err := reader.Summary(r.URL.Query().Get("work_order"))
		if err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		render.JSON(w, r, summary)
	}
}

// GetActivity: последние события доски, новые сверху.
func GetActivity(log *slog.Logger, reader ProductionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit := 0
		if s := q.Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				response.BadRequest(w, r, "limit должен быть неотрицательным числом")
				return
			}
			limit = n
		}

		workOrder := q.Get("work_order")
		all := reader.Activity()

		out := make([]storage.Activity, 0, len(all))
		for i := len(all) - 1; i >= 0; i-- {
			if workOrder != "" && all[i].WorkOrderID != workOrder {
				continue
			}
			out = append(out, all[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}

		render.JSON(w, r, out)
	}
}
