package conversation

const (
	TextAnalyzing       = "Analyzing..."
	TextFetchingRecipes = "Fetching recipe suggestions..."
	TextShowRecipes     = "Show me recipes"
	TextContinueRequest = "Please continue the previous answer."
	TextNoContinuation  = "No additional content returned."
	TextRecipesFailed   = "Unable to fetch recipes right now. Try opening the Recipes page."
	ErrorTextPrefix     = "Error: "

	SystemContinue = "You are a nutrition assistant. Continue the previous response."
)

// DefaultQuickTopics are offered when no topic list is configured.
var DefaultQuickTopics = []string{"almond milk", "salmon", "banana smoothie", "quinoa salad"}
