package punch

import "errors"

// Punch domain errors
var (
	ErrPunchNotFound     = errors.New("punch record not found")
	ErrAlreadyReconciled = errors.New("punch record has already been reconciled")
	ErrMissingClockIn    = errors.New("punch record has no clock-in timestamp")
)
