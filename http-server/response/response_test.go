package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/production"
	"shopfloor/internal/service/board"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("board.play: WO-1: %w", board.ErrWorkOrderNotFound), http.StatusNotFound},
		{fmt.Errorf("board.play: WO-1/10: %w", board.ErrOperationNotFound), http.StatusNotFound},
		{production.ErrCompleted, http.StatusConflict},
		{production.ErrSuspended, http.StatusConflict},
		{board.ErrWorkOrderExists, http.StatusConflict},
		{production.ErrInvalidDuration, http.StatusBadRequest},
		{production.ErrReasonRequired, http.StatusBadRequest},
		{production.ErrNegativeTime, http.StatusBadRequest},
		{production.ErrUnknownStatus, http.StatusBadRequest},
		{fmt.Errorf("production.RecordManualTime: %w", production.ErrTimeOverflow), http.StatusBadRequest},
		{fmt.Errorf("production.Progress: %w", production.ErrOutOfRange), http.StatusBadRequest},
		{board.ErrInvalidWorkOrder, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

// Тест: внутренняя ошибка не раскрывается клиенту
func TestFail_HidesInternalError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Fail(rr, req, slog.Default(), "test", errors.New("dsn password=secret"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")
}

func TestFail_Conflict(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	Fail(rr, req, slog.Default(), "test", production.ErrCompleted)

	assert.Equal(t, http.StatusConflict, rr.Code)
	var resp Error
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, production.ErrCompleted.Error(), resp.Error)
}
