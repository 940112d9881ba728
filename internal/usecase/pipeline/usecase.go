package pipeline

import (
	"context"
	"errors"
	"fmt"

	"chrome-agent-pipeline/internal/application/port/input"
	"chrome-agent-pipeline/internal/application/port/output"
	"chrome-agent-pipeline/internal/domain/entity"
	"chrome-agent-pipeline/internal/usecase/classifier"
)

var _ input.MessagePipe = (*UseCase)(nil)

// UseCase routes one user message: classify, and for browser tasks perform
// a single backend call. Failures are mapped to user-facing strings at this
// boundary; Pipe never returns an error to the host.
type UseCase struct {
	classifier *classifier.Classifier
	backend    output.BackendPort
	logger     output.LoggerPort
}

func New(cls *classifier.Classifier, backend output.BackendPort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		classifier: cls,
		backend:    backend,
		logger:     logger,
	}
}

func (uc *UseCase) Pipe(ctx context.Context, userMessage, modelID string, history []entity.Message, body map[string]any) string {
	c := uc.classifier.Classify(userMessage)
	if !c.IsBrowserTask {
		// Not ours: hand the message back unmodified for downstream models.
		return userMessage
	}

	uc.logger.Info("Browser task detected",
		"subIntent", string(c.SubIntent),
		"url", c.URL,
		"selector", c.Selector,
	)

	task := composeTask(userMessage, c)

	content, err := uc.backend.Execute(ctx, task)
	if err != nil {
		uc.logger.Error("Backend call failed", "subIntent", string(c.SubIntent), "error", err)
		return formatError(c.SubIntent, err)
	}

	if content == "" {
		content = defaultContent(c.SubIntent)
	}

	return fmt.Sprintf("✅ %s complete\n\n%s", taskKind(c.SubIntent), content)
}

// composeTask builds the content sent to the backend. A detected URL is
// always prepended, even when the message mentions it only in passing.
func composeTask(message string, c entity.Classification) string {
	if c.URL == "" {
		return message
	}
	task := fmt.Sprintf("访问 %s 然后 %s", c.URL, message)
	if c.SubIntent == entity.SubIntentExtract && c.Selector != "" {
		task += "，使用选择器: " + c.Selector
	}
	return task
}

func formatError(intent entity.SubIntent, err error) string {
	switch {
	case errors.Is(err, output.ErrBackendTimeout):
		return "⏱️ request timed out; task may need more time"
	case errors.Is(err, output.ErrBackendUnreachable):
		return "❌ cannot connect to backend; verify service is running"
	case errors.Is(err, output.ErrEmptyCompletion):
		return fmt.Sprintf("❌ %s failed\n\nresponse format invalid", taskKind(intent))
	}

	var srvErr *output.ServerError
	if errors.As(err, &srvErr) {
		return fmt.Sprintf("❌ server error (%d): %s", srvErr.StatusCode, srvErr.Body)
	}

	return fmt.Sprintf("❌ execution failed: %v", err)
}

func taskKind(intent entity.SubIntent) string {
	if intent == entity.SubIntentExtract {
		return "data extraction"
	}
	return "task execution"
}

func defaultContent(intent entity.SubIntent) string {
	if intent == entity.SubIntentExtract {
		return "data extraction completed"
	}
	return "task completed"
}
