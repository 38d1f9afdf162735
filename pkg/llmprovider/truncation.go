package llmprovider

import "strings"

// Marker is embedded in reply text when a provider stops on its length limit.
const Marker = "Response truncated by model (finish_reason=length)"

// Notice is the full hint appended to an empty length-limited reply.
const Notice = "\n\n[" + Marker + `. Consider increasing max tokens or shortening prompt. You can also click "Continue" to ask the assistant to finish the response.]`

// HasMarker reports whether text was flagged as truncated.
func HasMarker(text string) bool {
	return strings.Contains(text, Marker)
}

// withNotice appends Notice when the content is empty and the stop was length-limited.
func withNotice(content string, lengthLimited bool) string {
	if content == "" && lengthLimited {
		return content + Notice
	}
	return content
}

// StripTruncation removes the notice (or a bare marker) and trims.
func StripTruncation(text string) string {
	text = strings.ReplaceAll(text, strings.TrimLeft(Notice, "\n"), "")
	text = strings.ReplaceAll(text, Marker, "")
	return strings.TrimSpace(text)
}
