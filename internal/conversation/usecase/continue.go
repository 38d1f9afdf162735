package usecase

import (
	"context"

	"nutricoach/internal/conversation"
	"nutricoach/internal/model"
	"nutricoach/pkg/llmprovider"
)

func (uc *implUseCase) Continue(ctx context.Context, clientID string) ([]model.Message, error) {
	conv, err := uc.conversation(clientID)
	if err != nil {
		return nil, err
	}
	if !conv.Acquire() {
		return nil, conversation.ErrConversationBusy
	}
	defer conv.Release()

	last, ok := conv.LastAssistantMessage()
	if !ok || !llmprovider.HasMarker(last.Text) {
		return nil, conversation.ErrNothingToContinue
	}

	t := &turn{conv: conv}
	snap, profileJSON, err := uc.snapshot(ctx, clientID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: snapshot: %v", LogPrefixContinue, err)
		return nil, err
	}
	t.snap, t.profile = snap, profileJSON

	if err := uc.continueTurn(ctx, t, false); err != nil {
		return nil, err
	}
	return t.added, nil
}

// continueTurn runs the continuation controller over the trailing
// assistant message and appends the result as a new exchange.
func (uc *implUseCase) continueTurn(ctx context.Context, t *turn, auto bool) error {
	last, ok := t.conv.LastAssistantMessage()
	if !ok || !llmprovider.HasMarker(last.Text) {
		return conversation.ErrNothingToContinue
	}
	cleaned := llmprovider.StripTruncation(last.Text)

	ctrl := &t.conv.Controller
	if !ctrl.Begin(cleaned, auto) {
		return conversation.ErrConversationBusy
	}
	defer ctrl.End()

	t.append(uc.message(model.OriginUser, conversation.TextContinueRequest))
	t.append(uc.placeholder(conversation.TextAnalyzing))

	send := func(ctx context.Context, prompt string) (string, error) {
		text, err := uc.send(ctx, t, conversation.SystemContinue, prompt)
		if err != nil {
			uc.l.Warnf(ctx, "%s: send: %v", LogPrefixContinue, err)
		}
		return text, err
	}
	acc := conversation.Loop(ctx, send, cleaned, t.snap.Settings.MaxContinueAttempts())

	if acc == "" {
		t.finalize(uc.message(model.OriginAssistant, conversation.TextNoContinuation))
		return nil
	}
	t.finalize(uc.message(model.OriginAssistant, acc))
	return nil
}
