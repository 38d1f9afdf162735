package http

import (
	"errors"
	"net/http"

	"nutricoach/internal/profile"
	pkgErrors "nutricoach/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrMissingClientID), errors.Is(err, profile.ErrEmptyCondition):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
