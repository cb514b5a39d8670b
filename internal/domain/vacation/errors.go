package vacation

import "errors"

var (
	ErrVacationNotFound = errors.New("vacation not found")
	ErrUserNotFound     = errors.New("vacation user not found")
)
