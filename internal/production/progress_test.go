package production

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/storage"
)

func TestProgress(t *testing.T) {
	cases := []struct {
		name     string
		produced int
		target   int
		want     int
	}{
		{"quarter", 50, 200, 25},
		{"over target", 250, 200, 125},
		{"zero target", 10, 0, 0},
		{"negative target", 10, -5, 0},
		{"half rounds up", 1, 8, 13},
		{"rounds down", 1, 3, 33},
		{"done", 200, 200, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Progress(tc.produced, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Тест: огромное количество не превращается в мусорный отрицательный прогресс
func TestProgress_OutOfRange(t *testing.T) {
	_, err := Progress(1<<60, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Progress(math.MaxInt, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// граница: ровно помещается
	got, err := Progress(math.MaxInt/1000, 10)
	require.NoError(t, err)
	assert.Positive(t, got)
}

func TestSetProduced(t *testing.T) {
	wo := storage.WorkOrder{ID: "WO-1", Target: 200}

	wo, err := SetProduced(wo, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, wo.Produced)
	assert.Equal(t, 25, wo.Progress)

	wo, err = SetProduced(wo, 250)
	require.NoError(t, err)
	assert.Equal(t, 125, wo.Progress)

	got, err := SetProduced(wo, 1<<60)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, wo, got)
}

func TestSetStatus(t *testing.T) {
	wo := storage.WorkOrder{ID: "WO-1", Status: storage.WorkOrderNotStarted, Target: 10}

	// completed при progress < 100 допускается
	got, err := SetStatus(wo, storage.WorkOrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, storage.WorkOrderCompleted, got.Status)

	got, err = SetStatus(wo, "archived")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, wo, got)
}

func TestOperationsFromRouting(t *testing.T) {
	ops := OperationsFromRouting(storage.Routing{
		ID: "R-1",
		Steps: []storage.RoutingStep{
			{Sequence: 10, Name: "резка", WorkCenter: "CUT", PlannedMinutes: 12},
			{Sequence: 20, Name: "сварка", WorkCenter: "WELD", PlannedMinutes: 30},
		},
	})

	require.Len(t, ops, 2)
	assert.Equal(t, "10", ops[0].ID)
	assert.Equal(t, "сварка", ops[1].Name)
	assert.Equal(t, storage.OperationPending, ops[1].Status)
	assert.Equal(t, float64(30), ops[1].PlannedMinutes)
}
