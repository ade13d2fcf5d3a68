package rounding

import "errors"

// Rounding rule domain errors
var (
	ErrRuleNotFound = errors.New("rounding rule not found")
)
