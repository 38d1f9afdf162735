package usda

import "context"

// IUSDA searches FoodData Central.
type IUSDA interface {
	Search(ctx context.Context, query string, pageSize int) ([]Food, error)
}
