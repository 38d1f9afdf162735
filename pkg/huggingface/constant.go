package huggingface

import "time"

const (
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultTimeout = 120 * time.Second
)
