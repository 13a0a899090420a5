package generate_excel

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"shopfloor/http-server/response"
	"shopfloor/internal/filter"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, criteria filter.Criteria) ([]byte, error)
	FileName() string
}

// GenerateReportExcel: xlsx по нарядам с теми же фильтрами, что и список.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		criteria, err := filter.FromQuery(r.URL.Query())
		if err != nil {
			response.BadRequest(w, r, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second) // На Excel можно побольше времени
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, criteria)
		if err != nil {
			response.Fail(w, r, log, op, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+gen.FileName())
		w.Write(excelBytes)
	}
}
