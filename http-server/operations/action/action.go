package action

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"shopfloor/http-server/response"
	"shopfloor/internal/storage"
)

type OperationCommander interface {
	Play(workOrderID, operationID string) (storage.Operation, error)
	Pause(workOrderID, operationID string) (storage.Operation, error)
	Complete(workOrderID, operationID string) (storage.Operation, error)
	StartBreak(workOrderID, operationID string, minutes int) (storage.Operation, error)
	StartIndirect(workOrderID, operationID string, minutes int, reason string) (storage.Operation, error)
	RecordManualTime(workOrderID, operationID string, hours, minutes, seconds int) (storage.Operation, error)
}

type BreakRequest struct {
	Minutes int `json:"minutes"`
}

type IndirectRequest struct {
	Minutes int    `json:"minutes"`
	Reason  string `json:"reason"`
}

type ManualTimeRequest struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func Play(log *slog.Logger, cmd OperationCommander) http.HandlerFunc {
	return simple(log, "handlers.operations.Play", cmd.Play)
}

func Pause(log *slog.Logger, cmd OperationCommander) http.HandlerFunc {
	return simple(log, "handlers.operations.Pause", cmd.Pause)
}

func Complete(log *slog.Logger, cmd OperationCommander) http.HandlerFunc {
	return simple(log, "handlers.operations.Complete", cmd.Complete)
}

func StartBreak(log *slog.Logger, cmd OperationCommander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.operations.StartBreak"

		var req BreakRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		res, err := cmd.StartBreak(chi.URLParam(r, "id"), chi.URLParam(r, "opID"), req.Minutes)
		respond(w, r, log, op, res, err)
	}
}

func StartIndirect(log *slog.Logger, cmd OperationCommander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.operations.StartIndirect"

		var req IndirectRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		res, err := cmd.StartIndirect(chi.URLParam(r, "id"), chi.URLParam(r, "opID"), req.Minutes, req.Reason)
		respond(w, r, log, op, res, err)
	}
}

func RecordManualTime(log *slog.Logger, cmd OperationCommander) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.operations.RecordManualTime"

		var req ManualTimeRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		res, err := cmd.RecordManualTime(chi.URLParam(r, "id"), chi.URLParam(r, "opID"), req.Hours, req.Minutes, req.Seconds)
		respond(w, r, log, op, res, err)
	}
}

func simple(log *slog.Logger, op string, fn func(workOrderID, operationID string) (storage.Operation, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := fn(chi.URLParam(r, "id"), chi.URLParam(r, "opID"))
		respond(w, r, log, op, res, err)
	}
}

func respond(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, res storage.Operation, err error) {
	if err != nil {
		response.Fail(w, r, log, op, err)
		return
	}
	render.JSON(w, r, res)
}
