package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tuannguyen0901/meeting-flow/internal/config"
	"github.com/tuannguyen0901/meeting-flow/internal/inbox"
	"github.com/tuannguyen0901/meeting-flow/internal/logger"
	"github.com/tuannguyen0901/meeting-flow/internal/server"
	"github.com/tuannguyen0901/meeting-flow/internal/summarizer"
	"github.com/tuannguyen0901/meeting-flow/internal/textgen"
	"github.com/tuannguyen0901/meeting-flow/internal/watcher"
)

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Timeline Summarization Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Mock mode: %v", cfg.Summarization.UseMock)
	log.Info(ctx, "Timeline interval: %ds", cfg.Summarization.TimelineIntervalSeconds)

	gen := textgen.New(cfg, log)
	sum, err := summarizer.New(gen, cfg.Summarization.TimelineIntervalSeconds, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)

	// Optional drop-folder mode: transcripts placed in the inbox are
	// summarized to Markdown/DOCX without going through the API.
	if cfg.Paths.Inbox != "" {
		if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
			log.Error(ctx, "Failed to create inbox: %v", err)
			os.Exit(1)
		}

		proc := inbox.New(cfg, sum, log)
		w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, cfg.Performance.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()

		log.Info(ctx, "Inbox: %s -> %s", cfg.Paths.Inbox, cfg.Paths.Summaries)
	}

	srv := server.New(cfg, log, sum)
	go func() {
		if err := srv.Run(ctx); err != nil {
			errChan <- err
		}
	}()

	log.Info(ctx, "Service is ready. Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Service error: %v", err)
	}

	cancel()
	log.Info(ctx, "Service stopped")
}
