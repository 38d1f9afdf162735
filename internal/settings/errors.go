package settings

import "errors"

var (
	ErrUnknownKey      = errors.New("unknown setting key")
	ErrInvalidValue    = errors.New("invalid setting value")
	ErrUnknownTarget   = errors.New("unknown validation target")
	ErrMissingClientID = errors.New("missing client id")
)
