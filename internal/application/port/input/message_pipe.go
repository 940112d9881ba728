package input

import (
	"context"

	"chrome-agent-pipeline/internal/domain/entity"
)

// MessagePipe is the entry point the hosting chat framework calls once per
// user message. Only userMessage drives the routing decision; modelID,
// history and body are pass-through parameters from the host contract.
type MessagePipe interface {
	Pipe(ctx context.Context, userMessage, modelID string, history []entity.Message, body map[string]any) string
}
