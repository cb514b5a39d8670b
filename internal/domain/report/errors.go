package report

import "errors"

var (
	ErrInvalidDateRange  = errors.New("start date is after end date")
	ErrInvalidPeriodMode = errors.New("invalid period mode")
)
