package credential

import (
	"errors"
)

var (
	ErrValidation   = errors.New("invalid credential data")
	ErrNotFound     = errors.New("credential not found")
	ErrAccessDenied = errors.New("access denied")
	ErrStore        = errors.New("credential store failure")
)
