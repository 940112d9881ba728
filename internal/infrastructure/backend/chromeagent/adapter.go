package chromeagent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"chrome-agent-pipeline/internal/application/port/output"
	"chrome-agent-pipeline/internal/domain/entity"

	"github.com/sashabaranov/go-openai"
)

var _ output.BackendPort = (*Adapter)(nil)

const (
	modelName       = "chrome-agent-v1"
	completionsPath = "/api/v1/chat/completions"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  output.LoggerPort
}

func DefaultConfig(baseURL string) Config {
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return Config{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}

// Adapter talks to the chrome-agent service over its chat-completions
// endpoint. One Execute call issues exactly one POST; there are no retries.
type Adapter struct {
	client  *http.Client
	baseURL string
	logger  output.LoggerPort
}

func New(cfg Config) *Adapter {
	return &Adapter{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		logger:  cfg.Logger,
	}
}

// chatRequest is hand-rolled rather than openai.ChatCompletionRequest:
// the backend contract requires "stream": false to be present in the body,
// and the upstream struct tags it omitempty.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (a *Adapter) Execute(ctx context.Context, task string) (string, error) {
	payload := chatRequest{
		Model:    modelName,
		Messages: []chatMessage{{Role: string(entity.RoleUser), Content: task}},
		Stream:   false,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := a.baseURL + completionsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if a.logger != nil {
		a.logger.Info("HTTP Request", "method", http.MethodPost, "url", endpoint, "task", task)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if a.logger != nil {
		a.logger.Info("HTTP Response", "statusCode", resp.StatusCode, "bodyLen", len(body))
	}

	if resp.StatusCode != http.StatusOK {
		return "", &output.ServerError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var completion openai.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", output.ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}

// classifyTransportError maps client.Do failures onto the port taxonomy.
// Both the client deadline and a caller context deadline surface as
// url.Error values that report Timeout().
func classifyTransportError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", output.ErrBackendTimeout, err)
		}
		return fmt.Errorf("%w: %v", output.ErrBackendUnreachable, err)
	}
	return err
}
