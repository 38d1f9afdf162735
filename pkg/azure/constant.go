package azure

import "time"

const (
	DefaultChatAPIVersion      = "2023-10-01-preview"
	DefaultResponsesAPIVersion = "2025-04-01-preview"
	DefaultTimeout             = 120 * time.Second

	// ResponsesMarker selects the Responses API when present in the endpoint.
	ResponsesMarker = "/responses"

	StatusIncomplete        = "incomplete"
	IncompleteMaxOutputToks = "max_output_tokens"

	HintChat      = "Check deployment name, endpoint host, api-key, and api-version. 404 usually means the deployment or path is incorrect."
	HintResponses = "Check that your Responses endpoint is correct, the api-version is supported, and the resource exists in the specified region."
)
