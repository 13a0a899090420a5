package update

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/production"
	"shopfloor/internal/service/board"
	"shopfloor/internal/storage"
)

type MockWorkOrderUpdater struct {
	mock.Mock
}

func (m *MockWorkOrderUpdater) SetProduced(id string, produced int) (storage.WorkOrder, error) {
	args := m.Called(id, produced)
	return args.Get(0).(storage.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderUpdater) SetStatus(id string, status storage.WorkOrderStatus) (storage.WorkOrder, error) {
	args := m.Called(id, status)
	return args.Get(0).(storage.WorkOrder), args.Error(1)
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/work-orders/"+id, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// Тест: 250 из 200: прогресс 125, без ограничения сверху
func TestUpdateProduced_Success(t *testing.T) {
	updater := new(MockWorkOrderUpdater)
	updater.On("SetProduced", "WO-1", 250).Return(storage.WorkOrder{ID: "WO-1", Produced: 250, Target: 200, Progress: 125}, nil)

	rr := httptest.NewRecorder()
	UpdateProduced(slog.Default(), updater).ServeHTTP(rr, newRequest("WO-1", `{"produced":250}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got storage.WorkOrder
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &got))
	assert.Equal(t, 125, got.Progress)
}

// Тест: ноль: допустимое значение, отсутствие поля: нет
func TestUpdateProduced_Validation(t *testing.T) {
	updater := new(MockWorkOrderUpdater)
	updater.On("SetProduced", "WO-1", 0).Return(storage.WorkOrder{ID: "WO-1"}, nil)

	rr := httptest.NewRecorder()
	UpdateProduced(slog.Default(), updater).ServeHTTP(rr, newRequest("WO-1", `{"produced":0}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	UpdateProduced(slog.Default(), updater).ServeHTTP(rr, newRequest("WO-1", `{}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	updater.AssertNumberOfCalls(t, "SetProduced", 1)
}

func TestUpdateProduced_NotFound(t *testing.T) {
	updater := new(MockWorkOrderUpdater)
	updater.On("SetProduced", "WO-9", 5).Return(storage.WorkOrder{}, board.ErrWorkOrderNotFound)

	rr := httptest.NewRecorder()
	UpdateProduced(slog.Default(), updater).ServeHTTP(rr, newRequest("WO-9", `{"produced":5}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateStatus(t *testing.T) {
	updater := new(MockWorkOrderUpdater)
	updater.On("SetStatus", "WO-1", storage.WorkOrderOnHold).Return(storage.WorkOrder{ID: "WO-1", Status: storage.WorkOrderOnHold}, nil)
	updater.On("SetStatus", "WO-1", storage.WorkOrderStatus("archived")).Return(storage.WorkOrder{}, production.ErrUnknownStatus)

	rr := httptest.NewRecorder()
	UpdateStatus(slog.Default(), updater).ServeHTTP(rr, newRequest("WO-1", `{"status":"on-hold"}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	UpdateStatus(slog.Default(), updater).ServeHTTP(rr, newRequest("WO-1", `{"status":"archived"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	updater.AssertExpectations(t)
}
