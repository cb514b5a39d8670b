package ordertype

import "errors"

var (
	ErrOrderTypeNotFound   = errors.New("order type not found")
	ErrOrderTypeNameExists = errors.New("order type name already exists")
	ErrOrderTypeInactive   = errors.New("order type is inactive")
	ErrSettingNotFound     = errors.New("user order type setting not found")
)
