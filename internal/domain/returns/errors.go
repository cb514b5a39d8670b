package returns

import "errors"

var (
	ErrReturnNotFound  = errors.New("return not found")
	ErrOrderNotFound   = errors.New("linked order not found")
	ErrPenaltyMismatch = errors.New("penalty distribution does not sum to penalty amount")
)
