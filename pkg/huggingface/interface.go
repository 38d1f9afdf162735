package huggingface

import "context"

// IHuggingFace is the text-generation surface of the Inference API.
type IHuggingFace interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
