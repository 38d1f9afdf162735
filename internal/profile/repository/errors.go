package repository

import "errors"

var (
	ErrNotFound      = errors.New("profile not found")
	ErrFailedToGet   = errors.New("failed to get profile")
	ErrFailedToSave  = errors.New("failed to save profile")
	ErrCorruptRecord = errors.New("stored profile is not valid JSON")
)
