package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"chrome-agent-pipeline/internal/di"
	"chrome-agent-pipeline/internal/infrastructure/env"
)

func main() {
	envService := env.NewService()

	cfg := di.DefaultConfig()
	cfg.BackendURL = envService.GetWithDefault("CHROME_AGENT_URL", cfg.BackendURL)
	cfg.AutoDetect = envService.GetBool("AUTO_DETECT", cfg.AutoDetect)
	cfg.TimeoutSeconds = envService.GetInt("TIMEOUT_SECONDS", cfg.TimeoutSeconds)

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("init failed: %v", err)
	}
	defer container.Close()

	container.Logger.Info("Chrome Agent pipeline started", "backend", cfg.BackendURL, "autoDetect", cfg.AutoDetect)
	defer container.Logger.Info("Chrome Agent pipeline stopped")

	fmt.Println("\nEnter a message:")
	reader := bufio.NewReader(os.Stdin)
	message, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal("failed to read input: ", err)
	}
	message = strings.TrimSpace(message)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds+5)*time.Second)
	defer cancel()

	result := container.Pipe.Pipe(ctx, message, "", nil, nil)
	fmt.Println(result)
}
