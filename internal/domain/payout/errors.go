package payout

import "errors"

var (
	ErrPayoutNotFound = errors.New("payout not found")
	ErrUserNotFound   = errors.New("payout user not found")
)
