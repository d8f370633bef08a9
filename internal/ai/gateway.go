package ai

import "context"

// CompletionGateway is a stateless request/response text-completion call.
// One call per user turn; no retries, no streaming.
type CompletionGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
