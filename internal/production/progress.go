package production

import (
	"fmt"
	"math"
	"strconv"

	"shopfloor/internal/storage"
)

// Progress = round(produced/target*100), 0 при target <= 0. Без ограничения сверху.
// Половина округляется вверх. Если результат не помещается в int, возвращается ErrOutOfRange.
func Progress(produced, target int) (int, error) {
	if target <= 0 {
		return 0, nil
	}
	v := math.Floor(float64(produced)/float64(target)*100 + 0.5)
	// -MinInt как float точно равен 2^63 (2^31), MaxInt так не представить
	if v >= -float64(math.MinInt) || v < float64(math.MinInt) {
		return 0, fmt.Errorf("production.Progress: %d/%d: %w", produced, target, ErrOutOfRange)
	}
	return int(v), nil
}

// SetProduced при ошибке возвращает наряд без изменений.
func SetProduced(wo storage.WorkOrder, produced int) (storage.WorkOrder, error) {
	progress, err := Progress(produced, wo.Target)
	if err != nil {
		return wo, err
	}
	wo.Produced = produced
	wo.Progress = progress
	return wo, nil
}

// SetStatus присваивает статус наряда напрямую, из статусов операций он не выводится.
func SetStatus(wo storage.WorkOrder, status storage.WorkOrderStatus) (storage.WorkOrder, error) {
	if !status.Valid() {
		return wo, fmt.Errorf("production.SetStatus: %q: %w", status, ErrUnknownStatus)
	}
	wo.Status = status
	return wo, nil
}

// OperationsFromRouting строит список операций наряда по шагам маршрута.
func OperationsFromRouting(r storage.Routing) []storage.Operation {
	ops := make([]storage.Operation, 0, len(r.Steps))
	for _, step := range r.Steps {
		ops = append(ops, storage.Operation{
			ID:             strconv.Itoa(step.Sequence),
			Name:           step.Name,
			Sequence:       step.Sequence,
			WorkCenter:     step.WorkCenter,
			PlannedMinutes: step.PlannedMinutes,
			Status:         storage.OperationPending,
		})
	}
	return ops
}
