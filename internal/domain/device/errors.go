package device

import "errors"

var (
	ErrNotFound     = errors.New("device not found")
	ErrNameTaken    = errors.New("device name already exists")
	ErrInvalidInput = errors.New("invalid device input")
)
