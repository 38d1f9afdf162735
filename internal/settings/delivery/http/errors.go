package http

import (
	"errors"
	"net/http"

	"nutricoach/internal/settings"
	pkgErrors "nutricoach/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrUnknownKey):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, settings.ErrInvalidValue):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, settings.ErrUnknownTarget):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, settings.ErrMissingClientID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
