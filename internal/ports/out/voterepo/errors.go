package voterepo

import "errors"

var (
	ErrNotFound      = errors.New("vote not found")
	ErrAlreadyExists = errors.New("vote already exists")
)
