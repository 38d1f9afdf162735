package azure

import (
	"net/url"
	"strings"
)

// Origin reduces an endpoint to scheme://host, dropping any path the user
// pasted (typically a trailing /openai).
func Origin(endpoint string) string {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err == nil && u.Scheme != "" && u.Host != "" {
		return u.Scheme + "://" + u.Host
	}
	e := strings.TrimRight(strings.TrimSpace(endpoint), "/")
	return strings.TrimSuffix(e, "/openai")
}

// ChatURL builds {origin}/openai/deployments/{deployment}/chat/completions?api-version=V.
func ChatURL(endpoint, deployment, apiVersion string) string {
	return Origin(endpoint) + "/openai/deployments/" + url.PathEscape(deployment) +
		"/chat/completions?api-version=" + url.QueryEscape(apiVersion)
}

// ResponsesURL adds api-version unless the endpoint already carries one.
func ResponsesURL(endpoint, apiVersion string) string {
	if u, err := url.Parse(endpoint); err == nil && u.Query().Has("api-version") {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "api-version=" + url.QueryEscape(apiVersion)
}

// IsResponsesEndpoint reports whether the endpoint points at the Responses API.
func IsResponsesEndpoint(endpoint string) bool {
	return strings.Contains(endpoint, ResponsesMarker)
}
