package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftExists        = errors.New("shift already exists for this date and branch")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrInvalidLocation    = errors.New("invalid shift location")
	ErrUserNotFound       = errors.New("assigned user not found")
)
