package providers

import (
	"context"
)

type SourceName string

const (
	SourceOllama SourceName = "OLLAMA"
	SourceOpenAI SourceName = "OPENAI"
)

// Client is a synchronous text-generation backend. The returned text is
// untrusted: callers must expect surrounding prose, truncation, or malformed
// JSON. A Client reports an error only on total failure (transport, HTTP
// status, empty output).
type Client interface {
	Name() SourceName
	Generate(ctx context.Context, prompt string) (string, error)
}
