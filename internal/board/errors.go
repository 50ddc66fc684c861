package board

import "errors"

// Validation errors. These indicate a malformed request from the caller and
// always leave board and history state untouched.
var (
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrUnknownColumn   = errors.New("no column matches the given status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrInvalidIndex    = errors.New("reorder index out of range")
	ErrInvalidPeriod   = errors.New("invalid period bounds")
)
