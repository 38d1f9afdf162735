package conversation

import "nutricoach/internal/model"

type EventType string

const (
	EventAppended EventType = "appended"
	EventReplaced EventType = "replaced"
	EventReset    EventType = "reset"
)

// Event describes one change to the message log.
type Event struct {
	Type    EventType
	Message model.Message
}

// Startup is the content of the welcome panel.
type Startup struct {
	Tip         string
	QuickTopics []string
}
