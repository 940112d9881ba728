package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"chrome-agent-pipeline/internal/application/port/output"
	"chrome-agent-pipeline/internal/infrastructure/logger"
	"chrome-agent-pipeline/internal/usecase/classifier"

	"github.com/stretchr/testify/assert"
)

type fakeBackend struct {
	content  string
	err      error
	calls    int
	lastTask string
}

func (f *fakeBackend) Execute(ctx context.Context, task string) (string, error) {
	f.calls++
	f.lastTask = task
	return f.content, f.err
}

func newUseCase(backend output.BackendPort) *UseCase {
	return New(classifier.New(true), backend, logger.NewNop())
}

func TestPipe_NonBrowserMessagePassesThroughVerbatim(t *testing.T) {
	backend := &fakeBackend{}
	uc := newUseCase(backend)

	msg := "just chatting, how are you"
	result := uc.Pipe(context.Background(), msg, "gpt-4", nil, nil)

	assert.Equal(t, msg, result)
	assert.Zero(t, backend.calls, "no backend call may be issued for chat messages")
}

func TestPipe_GeneralTaskSuccess(t *testing.T) {
	backend := &fakeBackend{content: "Clicked"}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), "打开网页 https://a.com 并点击按钮", "", nil, nil)

	assert.Equal(t, "✅ task execution complete\n\nClicked", result)
	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, "访问 https://a.com 然后 打开网页 https://a.com 并点击按钮", backend.lastTask)
}

func TestPipe_TaskWithoutURLSentVerbatim(t *testing.T) {
	backend := &fakeBackend{content: "done"}
	uc := newUseCase(backend)

	uc.Pipe(context.Background(), "帮我搜索最新的新闻", "", nil, nil)

	assert.Equal(t, "帮我搜索最新的新闻", backend.lastTask)
}

func TestPipe_ExtractTaskAppendsSelector(t *testing.T) {
	backend := &fakeBackend{content: "Breaking news"}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), `抓取 https://a.com 的标题，选择器 "h1.title"`, "", nil, nil)

	assert.Equal(t, "✅ data extraction complete\n\nBreaking news", result)
	assert.Equal(t, `访问 https://a.com 然后 抓取 https://a.com 的标题，选择器 "h1.title"，使用选择器: h1.title`, backend.lastTask)
}

func TestPipe_EmptyContentFallsBackToDefault(t *testing.T) {
	backend := &fakeBackend{content: ""}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), "点击登录按钮", "", nil, nil)

	assert.Equal(t, "✅ task execution complete\n\ntask completed", result)
}

func TestPipe_TimeoutError(t *testing.T) {
	backend := &fakeBackend{err: fmt.Errorf("%w: deadline exceeded", output.ErrBackendTimeout)}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), "打开网页 https://slow.example", "", nil, nil)

	assert.Equal(t, "⏱️ request timed out; task may need more time", result)
}

func TestPipe_UnreachableError(t *testing.T) {
	backend := &fakeBackend{err: fmt.Errorf("%w: connection refused", output.ErrBackendUnreachable)}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), "截图 https://a.com", "", nil, nil)

	assert.Equal(t, "❌ cannot connect to backend; verify service is running", result)
}

func TestPipe_EmptyCompletionReportsFormatFailure(t *testing.T) {
	backend := &fakeBackend{err: output.ErrEmptyCompletion}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), "抓取 https://a.com 的数据", "", nil, nil)

	assert.Equal(t, "❌ data extraction failed\n\nresponse format invalid", result)
}

func TestPipe_ServerErrorCarriesStatusAndBody(t *testing.T) {
	backend := &fakeBackend{err: &output.ServerError{StatusCode: 500, Body: "internal error"}}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), "打开网页 https://a.com", "", nil, nil)

	assert.Equal(t, "❌ server error (500): internal error", result)
}

func TestPipe_UnknownError(t *testing.T) {
	backend := &fakeBackend{err: errors.New("boom")}
	uc := newUseCase(backend)

	result := uc.Pipe(context.Background(), "打开网页 https://a.com", "", nil, nil)

	assert.Equal(t, "❌ execution failed: boom", result)
}

func TestPipe_AutoDetectDisabledPassesThrough(t *testing.T) {
	backend := &fakeBackend{}
	uc := New(classifier.New(false), backend, logger.NewNop())

	msg := "打开网页 https://a.com 并点击按钮"
	result := uc.Pipe(context.Background(), msg, "", nil, nil)

	assert.Equal(t, msg, result)
	assert.Zero(t, backend.calls)
}
