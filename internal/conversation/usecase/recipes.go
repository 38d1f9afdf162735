package usecase

import (
	"context"

	"nutricoach/internal/conversation"
	"nutricoach/internal/model"
)

func (uc *implUseCase) SuggestRecipes(ctx context.Context, clientID string) ([]model.Message, error) {
	conv, err := uc.conversation(clientID)
	if err != nil {
		return nil, err
	}
	if !conv.Acquire() {
		return nil, conversation.ErrConversationBusy
	}
	defer conv.Release()

	t := &turn{conv: conv}
	t.append(uc.message(model.OriginUser, conversation.TextShowRecipes))
	t.append(uc.placeholder(conversation.TextFetchingRecipes))

	p, err := uc.profile.Get(ctx, clientID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: profile.Get: %v", LogPrefixRecipes, err)
		t.finalize(uc.message(model.OriginAssistant, conversation.TextRecipesFailed))
		return t.added, nil
	}

	m := uc.message(model.OriginAssistant, "")
	m.Recipes = uc.recipes.Suggest(ctx, p)
	if m.Recipes == nil {
		m.Recipes = []model.Recipe{}
	}
	t.finalize(m)
	return t.added, nil
}
