package profile

import "errors"

var (
	ErrMissingClientID = errors.New("missing client id")
	ErrEmptyCondition  = errors.New("condition is required")
)
