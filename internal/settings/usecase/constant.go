package usecase

const (
	LogPrefixUpdate   = "internal.settings.usecase.Update"
	LogPrefixSelect   = "internal.settings.usecase.Select"
	LogPrefixValidate = "internal.settings.usecase.Validate"
)
