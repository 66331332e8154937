package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrSettingsNotFound = errors.New("global pricing settings not found")
)
