package usecase

import "time"

const (
	LogPrefixSuggest = "internal.recipe.usecase.Suggest"

	defaultTimeout = 10 * time.Second
	maxPageBytes   = 4 << 20
	userAgent      = "nutricoach/1.0 (+recipes)"
)
