package branch

import "errors"

var (
	ErrBranchNotFound     = errors.New("branch not found")
	ErrBranchNameExists   = errors.New("branch name already exists")
	ErrAssignmentNotFound = errors.New("branch assignment not found")
	ErrBranchNotAllowed   = errors.New("user is not allowed on this branch")
)
