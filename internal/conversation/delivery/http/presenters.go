package http

import (
	"time"

	"nutricoach/internal/conversation"
	"nutricoach/internal/model"
)

type askReq struct {
	Prompt string `json:"prompt"`
}

type recipeResp struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

type messageResp struct {
	ID             string       `json:"id"`
	Origin         string       `json:"origin"`
	Text           string       `json:"text"`
	Classification string       `json:"classification,omitempty"`
	Recipes        []recipeResp `json:"recipes,omitempty"`
	Pending        bool         `json:"pending"`
	Truncated      bool         `json:"truncated"`
	CreatedAt      time.Time    `json:"created_at"`
}

type messagesResp struct {
	Messages []messageResp `json:"messages"`
}

type startupResp struct {
	Tip         string   `json:"tip"`
	QuickTopics []string `json:"quick_topics"`
}

type eventResp struct {
	Type    string       `json:"type"`
	Message *messageResp `json:"message,omitempty"`
}

func newMessageResp(m model.Message) messageResp {
	out := messageResp{
		ID:             m.ID,
		Origin:         string(m.Origin),
		Text:           m.Text,
		Classification: string(m.Classification),
		Pending:        m.Pending,
		Truncated:      isTruncated(m),
		CreatedAt:      m.CreatedAt,
	}
	if m.Recipes != nil {
		out.Recipes = make([]recipeResp, 0, len(m.Recipes))
		for _, r := range m.Recipes {
			out.Recipes = append(out.Recipes, recipeResp{Title: r.Title, Href: r.Href})
		}
	}
	return out
}

func newMessagesResp(msgs []model.Message) messagesResp {
	out := messagesResp{Messages: make([]messageResp, 0, len(msgs))}
	for _, m := range msgs {
		out.Messages = append(out.Messages, newMessageResp(m))
	}
	return out
}

func newStartupResp(s conversation.Startup) startupResp {
	return startupResp{Tip: s.Tip, QuickTopics: s.QuickTopics}
}

func newEventResp(ev conversation.Event) eventResp {
	out := eventResp{Type: string(ev.Type)}
	if ev.Type != conversation.EventReset {
		m := newMessageResp(ev.Message)
		out.Message = &m
	}
	return out
}
