package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already registered")
	ErrUserInactive   = errors.New("user is deactivated")
	ErrInvalidRole    = errors.New("invalid role")
	ErrSelfDeactivate = errors.New("cannot deactivate own account")

	ErrAdminPrivilegeRequired   = errors.New("admin privilege required")
	ErrManagerPrivilegeRequired = errors.New("manager privilege required")
)
