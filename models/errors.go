package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrLockNotFound           = errors.New("lock not found")
	ErrLockNotOwned           = errors.New("lock not owned")
	ErrLockUnavailable        = errors.New("lock unavailable")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict")
	ErrUnsupportedTriggerType = errors.New("unsupported trigger type")
	ErrSuspended              = errors.New("user is suspended")
	ErrInvalidJson            = errors.New("invalid json")
)

// InvalidArgumentf returns an error wrapping ErrInvalidArgument with a formatted reason.
func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsRetryable reports whether err came from losing a race on a versioned row.
// Callers may re-read and try again; every other error is final.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrOptimisticLockConflict)
}

type SuspendedErr struct {
	UserName       string
	SubSystem      SubSystem
	SuspendedUntil int64
}

func (e *SuspendedErr) Error() string {
	if e.SuspendedUntil == IndefiniteTimestamp {
		return fmt.Sprintf("user %s is suspended indefinitely from %s", e.UserName, e.SubSystem)
	}
	return fmt.Sprintf("user %s is suspended from %s until %d", e.UserName, e.SubSystem, e.SuspendedUntil)
}

func (e *SuspendedErr) Unwrap() error {
	return ErrSuspended
}
