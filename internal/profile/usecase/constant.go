package usecase

const (
	LogPrefixGet    = "internal.profile.usecase.Get"
	LogPrefixMutate = "internal.profile.usecase.mutate"
)
