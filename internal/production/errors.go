package production

import (
	"errors"
	"fmt"
)

// ErrRejected: переход недопустим из текущего состояния. Операция возвращается без изменений.
var ErrRejected = errors.New("transition rejected")

var (
	ErrCompleted      = fmt.Errorf("%w: operation is completed", ErrRejected)
	ErrSuspended      = fmt.Errorf("%w: break or indirect time is active", ErrRejected)
	ErrNotRunning     = fmt.Errorf("%w: operation is not running", ErrRejected)
	ErrAlreadyRunning = fmt.Errorf("%w: operation is already running", ErrRejected)
)

// Ошибки входных данных, не связанные с состоянием.
var (
	ErrInvalidDuration = errors.New("duration is not in the allowed menu")
	ErrReasonRequired  = errors.New("indirect time requires a reason")
	ErrNegativeTime    = errors.New("manual time must not be negative")
	ErrUnknownStatus   = errors.New("unknown work order status")
	ErrTimeOverflow    = errors.New("manual time overflows the operation timer")
	ErrOutOfRange      = errors.New("produced quantity is out of range")
	ErrInvalidState    = errors.New("inconsistent operation state")
)
