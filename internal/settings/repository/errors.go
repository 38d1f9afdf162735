package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list settings")
	ErrFailedToUpsert = errors.New("failed to upsert settings")
)
