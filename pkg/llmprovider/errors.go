package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientQuota marks an OpenAI rejection for exhausted billing quota.
	ErrInsufficientQuota = errors.New("insufficient quota")

	// ErrLinkSkipped means a fallback link is not configured.
	ErrLinkSkipped = errors.New("fallback link not configured")

	// ErrUnknownProvider is returned for a config variant the factory does not build.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ErrorKind classifies provider failures.
type ErrorKind string

const (
	ErrKindConfiguration ErrorKind = "configuration"
	ErrKindTransport     ErrorKind = "transport"
	ErrKindRejection     ErrorKind = "rejection"
)

// ProviderError wraps provider-specific errors. Status, Body and Hint are
// set for rejections.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Status   int
	Body     string
	Hint     string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Kind == ErrKindConfiguration {
		return e.Err.Error()
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsConfiguration reports whether err is a missing-configuration failure.
func IsConfiguration(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Kind == ErrKindConfiguration
}
