package output

import (
	"context"
	"errors"
	"fmt"
)

// BackendPort performs exactly one blocking call to the remote chrome-agent
// service and returns the content of the first completion choice.
type BackendPort interface {
	Execute(ctx context.Context, task string) (string, error)
}

var (
	// ErrBackendUnreachable means the connection could not be established.
	ErrBackendUnreachable = errors.New("backend unreachable")
	// ErrBackendTimeout means the call exceeded the configured deadline.
	ErrBackendTimeout = errors.New("backend request timed out")
	// ErrEmptyCompletion means a 200 response carried no usable choices.
	ErrEmptyCompletion = errors.New("empty completion in backend response")
)

// ServerError carries a non-200 status together with the raw response body.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}
