package inference

const (
	DefaultMaxTokens = 150
	MaxTokensLimit   = 1024

	// ErrorTextPrefix starts the text returned when generation fails.
	ErrorTextPrefix = "Error generating text: "
)
