package logger

import (
	"go.uber.org/zap"

	"chrome-agent-pipeline/internal/application/port/output"
)

var _ output.LoggerPort = (*Adapter)(nil)

// Adapter implements the logger port on a zap sugared logger. WithField and
// WithFields return children sharing the same core, so Close is only valid
// on the root adapter.
type Adapter struct {
	sugar *zap.SugaredLogger
}

func NewAdapter(name string) (*Adapter, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &Adapter{sugar: l.Sugar().Named(name)}, nil
}

// NewNop returns an adapter that discards everything. Used in tests.
func NewNop() *Adapter {
	return &Adapter{sugar: zap.NewNop().Sugar()}
}

func (a *Adapter) Debug(msg string, args ...any) {
	a.sugar.Debugw(msg, args...)
}

func (a *Adapter) Info(msg string, args ...any) {
	a.sugar.Infow(msg, args...)
}

func (a *Adapter) Warn(msg string, args ...any) {
	a.sugar.Warnw(msg, args...)
}

func (a *Adapter) Error(msg string, args ...any) {
	a.sugar.Errorw(msg, args...)
}

func (a *Adapter) WithField(key string, value any) output.LoggerPort {
	return &Adapter{sugar: a.sugar.With(key, value)}
}

func (a *Adapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Adapter{sugar: a.sugar.With(args...)}
}

func (a *Adapter) Close() error {
	// Sync can fail on stderr; the process is exiting anyway.
	_ = a.sugar.Sync()
	return nil
}
