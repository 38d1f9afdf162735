package model

import "time"

// Origin tells who wrote a message.
type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
)

// Classification is the verdict badge on an assistant message.
// The zero value means no classification.
type Classification string

const (
	ClassificationNone       Classification = ""
	ClassificationBeneficial Classification = "beneficial"
	ClassificationAvoid      Classification = "avoid"
	ClassificationNeutral    Classification = "neutral"
)

// Message is one entry of a conversation.
type Message struct {
	ID             string
	Origin         Origin
	Text           string
	Classification Classification
	Recipes        []Recipe
	// Pending marks the placeholder inserted before a reply resolves.
	Pending   bool
	CreatedAt time.Time
}

// Recipe is a suggested link.
type Recipe struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}
