package source

import "errors"

var ErrNotFound = errors.New("source not found")
