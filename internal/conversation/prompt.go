package conversation

import (
	"encoding/json"
	"fmt"

	"nutricoach/internal/model"
)

// ProfileJSON serializes p the way it is embedded in prompts.
func ProfileJSON(p model.UserProfile) string {
	b, err := json.Marshal(p.Normalize())
	if err != nil {
		return "{}"
	}
	return string(b)
}

// SystemPreamble instructs the model to classify using the profile.
func SystemPreamble(profileJSON string) string {
	return fmt.Sprintf("You are a nutrition assistant. Use this user's health profile: %s. "+
		"Classify the item as Beneficial, Neutral, or Avoid and give a short explanation.", profileJSON)
}

// UserContent pairs the profile with the question.
func UserContent(profileJSON, question string) string {
	return fmt.Sprintf("Profile: %s\nQuestion: %s", profileJSON, question)
}

// ContinuationPrompt asks the model to pick up after cleaned.
func ContinuationPrompt(cleaned string) string {
	if cleaned == "" {
		return TextContinueRequest
	}
	return "Continue the following assistant response without repeating the truncation hint. " +
		"Previous assistant text:\n\n" + cleaned + "\n\nContinue:"
}
