package usecase

import (
	"context"
	"fmt"

	"nutricoach/internal/classifier"
	"nutricoach/internal/conversation"
	"nutricoach/internal/model"
	"nutricoach/internal/settings"
	"nutricoach/pkg/llmprovider"
)

// turn is the request context of one submission: the conversation plus
// the settings and profile snapshot taken when it started.
type turn struct {
	conv    *conversation.Conversation
	snap    settings.Snapshot
	profile string
	added   []model.Message
}

func (uc *implUseCase) conversation(clientID string) (*conversation.Conversation, error) {
	if clientID == "" {
		return nil, conversation.ErrMissingClientID
	}
	return uc.store.Get(clientID), nil
}

// snapshot reads settings and profile. Both are fixed for the whole turn.
func (uc *implUseCase) snapshot(ctx context.Context, clientID string) (settings.Snapshot, string, error) {
	snap, err := uc.settings.Select(ctx, clientID)
	if err != nil {
		return settings.Snapshot{}, "", fmt.Errorf("load settings: %w", err)
	}
	p, err := uc.profile.Get(ctx, clientID)
	if err != nil {
		return settings.Snapshot{}, "", fmt.Errorf("load profile: %w", err)
	}
	return snap, conversation.ProfileJSON(p), nil
}

func (uc *implUseCase) message(origin model.Origin, text string) model.Message {
	return model.Message{
		ID:        uc.newID(),
		Origin:    origin,
		Text:      text,
		CreatedAt: uc.now(),
	}
}

func (uc *implUseCase) placeholder(text string) model.Message {
	m := uc.message(model.OriginAssistant, text)
	m.Pending = true
	return m
}

func (t *turn) append(m model.Message) {
	t.conv.Append(m)
	t.added = append(t.added, m)
}

// finalize replaces the pending placeholder and classifies the text once.
func (t *turn) finalize(m model.Message) {
	if m.Text != "" && m.Recipes == nil {
		m.Classification = classifier.Classify(m.Text)
	}
	t.replace(m)
}

// fail replaces the placeholder with an error message. Error text is never
// classified.
func (t *turn) fail(m model.Message) {
	m.Classification = model.ClassificationNone
	t.replace(m)
}

func (t *turn) replace(m model.Message) {
	m.Pending = false
	if err := t.conv.ReplaceLast(m); err == nil && len(t.added) > 0 {
		m.ID = t.added[len(t.added)-1].ID
		t.added[len(t.added)-1] = m
	}
}

// failure renders a turn-level error as assistant text.
func (uc *implUseCase) failure(err error) model.Message {
	return uc.message(model.OriginAssistant, conversation.ErrorTextPrefix+err.Error())
}

func (uc *implUseCase) request(t *turn, system, question string) llmprovider.Request {
	return llmprovider.Request{
		System:    system,
		User:      conversation.UserContent(t.profile, question),
		Query:     question,
		MaxTokens: t.snap.Settings.MaxTokens(),
	}
}

func (uc *implUseCase) send(ctx context.Context, t *turn, system, question string) (string, error) {
	resp, err := uc.sender.Send(ctx, t.snap.Selection, uc.request(t, system, question))
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
