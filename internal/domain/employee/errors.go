package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
)
