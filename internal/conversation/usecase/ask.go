package usecase

import (
	"context"
	"strings"

	"nutricoach/internal/conversation"
	"nutricoach/internal/model"
	"nutricoach/pkg/llmprovider"
)

func (uc *implUseCase) Ask(ctx context.Context, clientID, prompt string) ([]model.Message, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, conversation.ErrEmptyPrompt
	}
	conv, err := uc.conversation(clientID)
	if err != nil {
		return nil, err
	}
	if !conv.Acquire() {
		return nil, conversation.ErrConversationBusy
	}
	defer conv.Release()

	conv.Controller.Forget()
	t := &turn{conv: conv}
	t.append(uc.message(model.OriginUser, prompt))
	t.append(uc.placeholder(conversation.TextAnalyzing))

	snap, profileJSON, err := uc.snapshot(ctx, clientID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: snapshot: %v", LogPrefixAsk, err)
		t.fail(uc.failure(err))
		return t.added, nil
	}
	t.snap, t.profile = snap, profileJSON

	text, err := uc.send(ctx, t, conversation.SystemPreamble(profileJSON), prompt)
	if err != nil {
		uc.l.Warnf(ctx, "%s: send: %v", LogPrefixAsk, err)
		t.fail(uc.failure(err))
		return t.added, nil
	}
	t.finalize(uc.message(model.OriginAssistant, text))

	if llmprovider.HasMarker(text) && snap.Settings.AutoContinue() {
		if err := uc.continueTurn(ctx, t, true); err != nil {
			uc.l.Debugf(ctx, "%s: auto-continue skipped: %v", LogPrefixAsk, err)
		}
	}
	return t.added, nil
}
