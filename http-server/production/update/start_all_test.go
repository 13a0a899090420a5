package update

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/service/board"
)

type MockStarter struct {
	mock.Mock
}

func (m *MockStarter) StartAll(id string) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

func TestStartAll(t *testing.T) {
	starter := new(MockStarter)
	starter.On("StartAll", "").Return(4, nil)
	starter.On("StartAll", "WO-1").Return(2, nil)
	starter.On("StartAll", "WO-9").Return(0, board.ErrWorkOrderNotFound)

	rr := httptest.NewRecorder()
	StartAll(slog.Default(), starter).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/production/start-all", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp StartAllResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, 4, resp.Started)

	rr = httptest.NewRecorder()
	StartAll(slog.Default(), starter).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/production/start-all?work_order=WO-1", nil))
	assert.Contains(t, rr.Body.String(), `"started":2`)

	rr = httptest.NewRecorder()
	StartAll(slog.Default(), starter).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/production/start-all?work_order=WO-9", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	starter.AssertExpectations(t)
}
