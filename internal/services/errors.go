package services

import "errors"

var (
	// ErrInvalidCredentials covers unknown e-mail and wrong password alike so
	// a login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid e-mail or password")

	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
