package http

import (
	"errors"
	"net/http"

	"nutricoach/internal/conversation"
	pkgErrors "nutricoach/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrEmptyPrompt),
		errors.Is(err, conversation.ErrMissingClientID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, conversation.ErrConversationBusy):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, conversation.ErrNothingToContinue):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
