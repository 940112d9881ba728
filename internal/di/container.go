package di

import (
	"fmt"
	"time"

	"chrome-agent-pipeline/internal/application/port/input"
	"chrome-agent-pipeline/internal/application/port/output"
	"chrome-agent-pipeline/internal/infrastructure/backend/chromeagent"
	"chrome-agent-pipeline/internal/infrastructure/logger"
	"chrome-agent-pipeline/internal/usecase/classifier"
	"chrome-agent-pipeline/internal/usecase/pipeline"
)

const pipelineName = "chrome-agent"

type Container struct {
	Backend output.BackendPort
	Logger  output.LoggerPort
	Pipe    input.MessagePipe
}

type Config struct {
	BackendURL     string
	AutoDetect     bool
	TimeoutSeconds int
}

func DefaultConfig() Config {
	return Config{
		BackendURL:     "http://localhost:3000",
		AutoDetect:     true,
		TimeoutSeconds: 30,
	}
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewAdapter(pipelineName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	backendCfg := chromeagent.DefaultConfig(cfg.BackendURL)
	if cfg.TimeoutSeconds > 0 {
		backendCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	backendCfg.Logger = log
	backend := chromeagent.New(backendCfg)

	cls := classifier.New(cfg.AutoDetect)
	pipe := pipeline.New(cls, backend, log)

	return &Container{
		Backend: backend,
		Logger:  log,
		Pipe:    pipe,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
