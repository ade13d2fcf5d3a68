package shift

import "errors"

// Shift catalog domain errors
var (
	ErrShiftNotFound      = errors.New("shift definition not found")
	ErrAssignmentNotFound = errors.New("schedule assignment not found")
	ErrAssignmentExists   = errors.New("employee already has an assignment for this date")
)
