package openai

import "time"

const (
	// DefaultBaseURL is the public OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 120 * time.Second

	// CodeInsufficientQuota is the error code OpenAI returns when billing quota is exhausted.
	CodeInsufficientQuota = "insufficient_quota"

	// FinishReasonLength marks a completion cut off by the token limit.
	FinishReasonLength = "length"

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
