package order

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrSplitSumMismatch   = errors.New("split amounts do not sum to order amount")
	ErrDuplicateSplitType = errors.New("order type appears more than once in splits")
	ErrInvalidOrderTypes  = errors.New("some order types are invalid or inactive")
	ErrExactDuplicate     = errors.New("an identical order already exists")
)
