package repository

import "errors"

// ErrDuplicate reports a unique constraint violation
var ErrDuplicate = errors.New("duplicate record")
