package settings

// Stored setting keys. Every value is a string.
const (
	KeyProvider                 = "provider"
	KeyOpenAIAPIKey             = "openai_api_key"
	KeyOpenAIModel              = "openai_model"
	KeyAzureEndpoint            = "azure_endpoint"
	KeyAzureKey                 = "azure_key"
	KeyAzureDeployment          = "azure_deployment"
	KeyAzureChatAPIVersion      = "azure_chat_api_version"
	KeyAzureResponsesAPIVersion = "azure_responses_api_version"
	KeyHFAPIKey                 = "hf_api_key"
	KeyHFModel                  = "hf_model"
	KeyUSDAAPIKey               = "usda_api_key"
	KeyMaxTokens                = "max_tokens"
	KeyAutoContinue             = "auto_continue"
	KeyAutoContinueCount        = "auto_continue_count"
	KeyDemoMode                 = "demo_mode"
	KeyEnableStartupSuggestions = "enable_startup_suggestions"
	KeyStartupQuickTopics       = "startup_quick_topics"
)

// Validation targets for credential probes.
const (
	TargetUSDA        = "usda"
	TargetHuggingFace = "hf"
)

const (
	fallbackMaxTokens         = 300
	fallbackAutoContinueCount = 2
	maskKeep                  = 4
	maskPrefix                = "****"
)

type keyType int

const (
	typeString keyType = iota
	typeSecret
	typeInt
	typeBool
	typeTopics
	typeProvider
)

var keyTypes = map[string]keyType{
	KeyProvider:                 typeProvider,
	KeyOpenAIAPIKey:             typeSecret,
	KeyOpenAIModel:              typeString,
	KeyAzureEndpoint:            typeString,
	KeyAzureKey:                 typeSecret,
	KeyAzureDeployment:          typeString,
	KeyAzureChatAPIVersion:      typeString,
	KeyAzureResponsesAPIVersion: typeString,
	KeyHFAPIKey:                 typeSecret,
	KeyHFModel:                  typeString,
	KeyUSDAAPIKey:               typeSecret,
	KeyMaxTokens:                typeInt,
	KeyAutoContinue:             typeBool,
	KeyAutoContinueCount:        typeInt,
	KeyDemoMode:                 typeBool,
	KeyEnableStartupSuggestions: typeBool,
	KeyStartupQuickTopics:       typeTopics,
}

// Keys lists every known key.
func Keys() []string {
	keys := make([]string, 0, len(keyTypes))
	for k := range keyTypes {
		keys = append(keys, k)
	}
	return keys
}

// IsSecret reports whether a key holds a credential.
func IsSecret(key string) bool {
	return keyTypes[key] == typeSecret
}
