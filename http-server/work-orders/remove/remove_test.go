package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopfloor/internal/service/board"
)

type MockWorkOrderRemover struct {
	mock.Mock
}

func (m *MockWorkOrderRemover) Remove(id string) error {
	return m.Called(id).Error(0)
}

func newRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/work-orders/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteWorkOrder(t *testing.T) {
	remover := new(MockWorkOrderRemover)
	remover.On("Remove", "WO-1").Return(nil)
	remover.On("Remove", "WO-9").Return(board.ErrWorkOrderNotFound)

	rr := httptest.NewRecorder()
	DeleteWorkOrder(slog.Default(), remover).ServeHTTP(rr, newRequest("WO-1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "deleted")

	rr = httptest.NewRecorder()
	DeleteWorkOrder(slog.Default(), remover).ServeHTTP(rr, newRequest("WO-9"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	remover.AssertExpectations(t)
}
