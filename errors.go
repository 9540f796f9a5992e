package ftracker

import "errors"

var (
	// ErrUnknownActivity is returned for a tag other than SWM, RUN or WLK
	ErrUnknownActivity = errors.New("unknown activity")
	// ErrArityMismatch is returned when a package carries the wrong number of fields
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrDivisionByZero is returned when a formula would divide by zero
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidField is returned when a field cannot hold the value it carries
	ErrInvalidField = errors.New("invalid field")
)
