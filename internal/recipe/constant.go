package recipe

import "nutricoach/internal/model"

const (
	DefaultSourceURL = "https://www.thegoodtrade.com/features/clean-eating-recipes/"
	DefaultCount     = 3
)

// Curated is served when the source article cannot be used.
var Curated = []model.Recipe{
	{Title: "Healthy Weeknight Dinners (Allrecipes collection)", Href: "https://www.allrecipes.com/recipes/84/healthy-recipes/"},
	{Title: "BBC Good Food - Healthy recipes", Href: "https://www.bbcgoodfood.com/recipes/collection/healthy"},
	{Title: "Cookie and Kate - Healthy recipes", Href: "https://cookieandkate.com/best-healthy-recipes/"},
}
