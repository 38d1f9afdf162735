package usecase

const (
	LogPrefixAsk      = "internal.conversation.usecase.Ask"
	LogPrefixContinue = "internal.conversation.usecase.Continue"
	LogPrefixRecipes  = "internal.conversation.usecase.SuggestRecipes"
	LogPrefixStartup  = "internal.conversation.usecase.Startup"
)
