package usecase

import (
	"context"

	"nutricoach/internal/conversation"
	"nutricoach/internal/model"
)

func (uc *implUseCase) History(_ context.Context, clientID string) ([]model.Message, error) {
	conv, err := uc.conversation(clientID)
	if err != nil {
		return nil, err
	}
	return conv.Messages(), nil
}

// Reset clears the log. It is refused while a turn is running.
func (uc *implUseCase) Reset(_ context.Context, clientID string) error {
	conv, err := uc.conversation(clientID)
	if err != nil {
		return err
	}
	if !conv.Acquire() {
		return conversation.ErrConversationBusy
	}
	defer conv.Release()
	conv.Clear()
	return nil
}

func (uc *implUseCase) Startup(ctx context.Context, clientID string) (conversation.Startup, error) {
	if clientID == "" {
		return conversation.Startup{}, conversation.ErrMissingClientID
	}
	out := conversation.Startup{
		Tip:         uc.tips.StartupTip(ctx),
		QuickTopics: []string{},
	}

	s, err := uc.settings.Get(ctx, clientID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: settings.Get: %v", LogPrefixStartup, err)
		return out, nil
	}
	if !s.StartupSuggestions() {
		return out, nil
	}
	if topics := s.QuickTopics(); len(topics) > 0 {
		out.QuickTopics = topics
	} else {
		out.QuickTopics = append(out.QuickTopics, conversation.DefaultQuickTopics...)
	}
	return out, nil
}
