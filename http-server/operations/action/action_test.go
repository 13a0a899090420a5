package action

import (
	"context"
	"fmt"
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

type MockOperationCommander struct {
	mock.Mock
}

func (m *MockOperationCommander) Play(wo, op string) (storage.Operation, error) {
	args := m.Called(wo, op)
	return args.Get(0).(storage.Operation), args.Error(1)
}

func (m *MockOperationCommander) Pause(wo, op string) (storage.Operation, error) {
	args := m.Called(wo, op)
	return args.Get(0).(storage.Operation), args.Error(1)
}

func (m *MockOperationCommander) Complete(wo, op string) (storage.Operation, error) {
	args := m.Called(wo, op)
	return args.Get(0).(storage.Operation), args.Error(1)
}

func (m *MockOperationCommander) StartBreak(wo, op string, minutes int) (storage.Operation, error) {
	args := m.Called(wo, op, minutes)
	return args.Get(0).(storage.Operation), args.Error(1)
}

func (m *MockOperationCommander) StartIndirect(wo, op string, minutes int, reason string) (storage.Operation, error) {
	args := m.Called(wo, op, minutes, reason)
	return args.Get(0).(storage.Operation), args.Error(1)
}

func (m *MockOperationCommander) RecordManualTime(wo, op string, h, min, s int) (storage.Operation, error) {
	args := m.Called(wo, op, h, min, s)
	return args.Get(0).(storage.Operation), args.Error(1)
}

func newRequest(method, body string) *http.Request {
	req := httptest.NewRequest(method, "/api/work-orders/WO-1/operations/10/x", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "WO-1")
	rctx.URLParams.Add("opID", "10")
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// Тест: запуск операции возвращает её новое состояние
func TestPlay_Success(t *testing.T) {
	cmd := new(MockOperationCommander)
	cmd.On("Play", "WO-1", "10").Return(storage.Operation{ID: "10", Status: storage.OperationRunning}, nil)

	rr := httptest.NewRecorder()
	Play(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got storage.Operation
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &got))
	assert.Equal(t, storage.OperationRunning, got.Status)
	cmd.AssertExpectations(t)
}

// Тест: отклонённый переход: 409
func TestPlay_Rejected(t *testing.T) {
	cmd := new(MockOperationCommander)
	cmd.On("Play", "WO-1", "10").Return(storage.Operation{ID: "10", Status: storage.OperationCompleted}, production.ErrCompleted)

	rr := httptest.NewRecorder()
	Play(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, ""))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

// Тест: неизвестная операция: 404
func TestPause_NotFound(t *testing.T) {
	cmd := new(MockOperationCommander)
	cmd.On("Pause", "WO-1", "10").Return(storage.Operation{}, fmt.Errorf("board.pause: %w", board.ErrOperationNotFound))

	rr := httptest.NewRecorder()
	Pause(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestComplete_Success(t *testing.T) {
	cmd := new(MockOperationCommander)
	cmd.On("Complete", "WO-1", "10").Return(storage.Operation{ID: "10", Status: storage.OperationCompleted}, nil)

	rr := httptest.NewRecorder()
	Complete(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	cmd.AssertExpectations(t)
}

func TestStartBreak(t *testing.T) {
	cmd := new(MockOperationCommander)
	cmd.On("StartBreak", "WO-1", "10", 15).Return(storage.Operation{ID: "10", Status: storage.OperationBreak}, nil)
	cmd.On("StartBreak", "WO-1", "10", 7).Return(storage.Operation{ID: "10"}, production.ErrInvalidDuration)

	rr := httptest.NewRecorder()
	StartBreak(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, `{"minutes":15}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	StartBreak(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, `{"minutes":7}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	StartBreak(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, `{`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	cmd.AssertExpectations(t)
}

func TestStartIndirect(t *testing.T) {
	cmd := new(MockOperationCommander)
	cmd.On("StartIndirect", "WO-1", "10", 30, "Наладка").Return(storage.Operation{ID: "10", Status: storage.OperationIndirect, IndirectReason: "Наладка"}, nil)
	cmd.On("StartIndirect", "WO-1", "10", 30, "").Return(storage.Operation{ID: "10"}, production.ErrReasonRequired)

	rr := httptest.NewRecorder()
	StartIndirect(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, `{"minutes":30,"reason":"Наладка"}`))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Наладка")

	rr = httptest.NewRecorder()
	StartIndirect(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, `{"minutes":30}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Тест: ручной ввод времени 1:30:00
func TestRecordManualTime(t *testing.T) {
	cmd := new(MockOperationCommander)
	cmd.On("RecordManualTime", "WO-1", "10", 1, 30, 0).Return(storage.Operation{ID: "10", TimerSeconds: 5400}, nil)

	rr := httptest.NewRecorder()
	RecordManualTime(slog.Default(), cmd).ServeHTTP(rr, newRequest(http.MethodPost, `{"hours":1,"minutes":30}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got storage.Operation
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &got))
	assert.Equal(t, int64(5400), got.TimerSeconds)
}
