package inbox

import (
	"github.com/tuannguyen0901/meeting-flow/internal/config"
	"github.com/tuannguyen0901/meeting-flow/internal/logger"
	"github.com/tuannguyen0901/meeting-flow/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a Processor writing summaries into cfg.Paths.Summaries.
func New(cfg *config.Config, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		summarizer: sum,
		logger:     log,
	}
}
