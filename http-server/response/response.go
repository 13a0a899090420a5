package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"shopfloor/internal/production"
	"shopfloor/internal/service/board"
)

type Error struct {
	Error string `json:"error"`
}

// Status сопоставляет ошибку доски с HTTP-кодом.
func Status(err error) int {
	switch {
	case errors.Is(err, board.ErrWorkOrderNotFound), errors.Is(err, board.ErrOperationNotFound):
		return http.StatusNotFound
	case errors.Is(err, production.ErrRejected), errors.Is(err, board.ErrWorkOrderExists):
		return http.StatusConflict
	case errors.Is(err, production.ErrInvalidDuration),
		errors.Is(err, production.ErrReasonRequired),
		errors.Is(err, production.ErrNegativeTime),
		errors.Is(err, production.ErrUnknownStatus),
		errors.Is(err, production.ErrTimeOverflow),
		errors.Is(err, production.ErrOutOfRange),
		errors.Is(err, production.ErrInvalidState),
		errors.Is(err, board.ErrInvalidWorkOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Fail пишет ошибку в лог и отвечает JSON-ом. Внутренние ошибки наружу не отдаются.
func Fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	status := Status(err)

	log = log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("error", err.Error()),
	)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed")
		msg = "внутренняя ошибка"
	} else {
		log.Debug("request rejected", slog.Int("status", status))
	}

	render.Status(r, status)
	render.JSON(w, r, Error{Error: msg})
}

// BadRequest: ответ на невалидный ввод, который не дошёл до доски.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, Error{Error: msg})
}
