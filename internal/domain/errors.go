package domain

import "errors"

// ErrValidation is the class every field validation error wraps, so callers
// can classify failures with errors.Is without enumerating each sentinel.
var ErrValidation = errors.New("validation error")
