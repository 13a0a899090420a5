package production

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"shopfloor/internal/storage"
)

// Меню длительностей в минутах.
var (
	BreakMinutes    = []int{5, 10, 15, 30}
	IndirectMinutes = []int{15, 30, 45, 60}
)

// suspended сообщает, есть ли незакончившийся перерыв или косвенное время.
func suspended(op storage.Operation, now time.Time) bool {
	if op.BreakEndsAt != nil && now.Before(*op.BreakEndsAt) {
		return true
	}
	if op.IndirectEndsAt != nil && now.Before(*op.IndirectEndsAt) {
		return true
	}
	return false
}

// Expire переводит BREAK/INDIRECT в PAUSED, как только наступило время окончания.
// Метка очищается, поэтому повторный вызов ничего не меняет.
func Expire(op storage.Operation, now time.Time) (storage.Operation, bool) {
	switch {
	case op.BreakEndsAt != nil && !now.Before(*op.BreakEndsAt):
		op.BreakEndsAt = nil
	case op.IndirectEndsAt != nil && !now.Before(*op.IndirectEndsAt):
		op.IndirectEndsAt = nil
		op.IndirectReason = ""
	default:
		return op, false
	}
	op.Status = storage.OperationPaused
	return op, true
}

func Play(op storage.Operation, now time.Time) (storage.Operation, error) {
	const fn = "production.Play"

	if op.Status == storage.OperationCompleted {
		return op, fmt.Errorf("%s: %w", fn, ErrCompleted)
	}
	if suspended(op, now) {
		return op, fmt.Errorf("%s: %w", fn, ErrSuspended)
	}
	next, _ := Expire(op, now)
	if next.Status == storage.OperationRunning {
		return op, fmt.Errorf("%s: %w", fn, ErrAlreadyRunning)
	}

	next.Status = storage.OperationRunning
	return next, nil
}

func Pause(op storage.Operation) (storage.Operation, error) {
	if op.Status != storage.OperationRunning {
		return op, fmt.Errorf("production.Pause: %w", ErrNotRunning)
	}
	op.Status = storage.OperationPaused
	return op, nil
}

func StartBreak(op storage.Operation, minutes int, now time.Time) (storage.Operation, error) {
	const fn = "production.StartBreak"

	if !slices.Contains(BreakMinutes, minutes) {
		return op, fmt.Errorf("%s: %d min: %w", fn, minutes, ErrInvalidDuration)
	}
	next, err := suspendable(op, now)
	if err != nil {
		return op, fmt.Errorf("%s: %w", fn, err)
	}

	endsAt := now.Add(time.Duration(minutes) * time.Minute)
	next.Status = storage.OperationBreak
	next.BreakEndsAt = &endsAt
	return next, nil
}

func StartIndirect(op storage.Operation, minutes int, reason string, now time.Time) (storage.Operation, error) {
	const fn = "production.StartIndirect"

	if !slices.Contains(IndirectMinutes, minutes) {
		return op, fmt.Errorf("%s: %d min: %w", fn, minutes, ErrInvalidDuration)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return op, fmt.Errorf("%s: %w", fn, ErrReasonRequired)
	}
	next, err := suspendable(op, now)
	if err != nil {
		return op, fmt.Errorf("%s: %w", fn, err)
	}

	endsAt := now.Add(time.Duration(minutes) * time.Minute)
	next.Status = storage.OperationIndirect
	next.IndirectEndsAt = &endsAt
	next.IndirectReason = reason
	return next, nil
}

// suspendable: общий guard для перерыва и косвенного времени.
func suspendable(op storage.Operation, now time.Time) (storage.Operation, error) {
	if op.Status == storage.OperationCompleted {
		return op, ErrCompleted
	}
	if suspended(op, now) {
		return op, ErrSuspended
	}
	next, _ := Expire(op, now)
	return next, nil
}

// Complete идемпотентен: повторное завершение ничего не меняет и не считается ошибкой.
func Complete(op storage.Operation, now time.Time) (storage.Operation, error) {
	if op.Status == storage.OperationCompleted {
		return op, nil
	}
	if op.BreakEndsAt != nil || op.IndirectEndsAt != nil {
		return op, fmt.Errorf("production.Complete: %w", ErrSuspended)
	}

	completedAt := now
	op.Status = storage.OperationCompleted
	op.CompletedAt = &completedAt
	return op, nil
}

// Tick делает один проход таймера: сначала истечение перерыва, затем +1 секунда для RUNNING.
func Tick(op storage.Operation, now time.Time) (storage.Operation, bool) {
	op, expired := Expire(op, now)
	if op.Status == storage.OperationRunning {
		if op.TimerSeconds < math.MaxInt64 {
			op.TimerSeconds++
		}
		return op, true
	}
	return op, expired
}

// ManualSeconds переводит ручной ввод в секунды.
func ManualSeconds(hours, minutes, seconds int) (int64, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return 0, ErrNegativeTime
	}

	total := int64(seconds)
	for _, part := range []struct{ n, unit int64 }{{int64(minutes), 60}, {int64(hours), 3600}} {
		if part.n > (math.MaxInt64-total)/part.unit {
			return 0, ErrTimeOverflow
		}
		total += part.n * part.unit
	}
	return total, nil
}

// RecordManualTime добавляет время задним числом независимо от статуса.
func RecordManualTime(op storage.Operation, hours, minutes, seconds int) (storage.Operation, error) {
	offset, err := ManualSeconds(hours, minutes, seconds)
	if err != nil {
		return op, fmt.Errorf("production.RecordManualTime: %w", err)
	}
	if offset > math.MaxInt64-op.TimerSeconds {
		return op, fmt.Errorf("production.RecordManualTime: %w", ErrTimeOverflow)
	}
	op.TimerSeconds += offset
	return op, nil
}

// Validate проверяет согласованность операции, пришедшей извне (seed, БД, API):
// известный статус, неотрицательный таймер, метка окончания только у своего статуса.
// Завершённая операция из набора данных может не иметь CompletedAt.
func Validate(op storage.Operation) error {
	const fn = "production.Validate"

	if !slices.Contains(storage.OperationStatuses, op.Status) {
		return fmt.Errorf("%s: status %q: %w", fn, op.Status, ErrInvalidState)
	}
	if op.TimerSeconds < 0 {
		return fmt.Errorf("%s: negative timer %d: %w", fn, op.TimerSeconds, ErrInvalidState)
	}
	if (op.BreakEndsAt != nil) != (op.Status == storage.OperationBreak) {
		return fmt.Errorf("%s: break end time does not match status %s: %w", fn, op.Status, ErrInvalidState)
	}
	if (op.IndirectEndsAt != nil) != (op.Status == storage.OperationIndirect) {
		return fmt.Errorf("%s: indirect end time does not match status %s: %w", fn, op.Status, ErrInvalidState)
	}
	if op.Status == storage.OperationIndirect && strings.TrimSpace(op.IndirectReason) == "" {
		return fmt.Errorf("%s: indirect time without reason: %w", fn, ErrInvalidState)
	}
	if op.CompletedAt != nil && op.Status != storage.OperationCompleted {
		return fmt.Errorf("%s: completed_at on %s operation: %w", fn, op.Status, ErrInvalidState)
	}
	return nil
}

// Startable: операция попадает под «запустить всё».
func Startable(op storage.Operation) bool {
	if op.Status != storage.OperationPending && op.Status != storage.OperationPaused {
		return false
	}
	return op.BreakEndsAt == nil && op.IndirectEndsAt == nil
}

// StartAll возвращает новый срез, в котором все подходящие операции запущены.
// Остальные операции копируются как есть.
func StartAll(ops []storage.Operation) ([]storage.Operation, int) {
	next := make([]storage.Operation, len(ops))
	started := 0
	for i, op := range ops {
		if Startable(op) {
			op.Status = storage.OperationRunning
			started++
		}
		next[i] = op
	}
	return next, started
}

func Summarize(ops []storage.Operation) storage.Summary {
	sum := storage.Summary{Counts: make(map[storage.OperationStatus]int, len(storage.OperationStatuses))}
	for _, s := range storage.OperationStatuses {
		sum.Counts[s] = 0
	}
	for _, op := range ops {
		sum.Counts[op.Status]++
		sum.TotalSeconds += op.TimerSeconds
		sum.Operations++
	}
	return sum
}
