package conversation

import "errors"

var (
	ErrMissingClientID   = errors.New("missing client id")
	ErrEmptyPrompt       = errors.New("prompt is required")
	ErrConversationBusy  = errors.New("conversation is busy with another turn")
	ErrNothingToContinue = errors.New("last assistant message is not truncated")
	ErrNoPlaceholder     = errors.New("no message to replace")
)
