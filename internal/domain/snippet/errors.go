package snippet

import "errors"

var (
	ErrNotFound     = errors.New("snippet not found")
	ErrInvalidInput = errors.New("invalid snippet input")
)
