package summarizer

import (
	"fmt"

	"github.com/tuannguyen0901/meeting-flow/internal/logger"
	"github.com/tuannguyen0901/meeting-flow/internal/textgen"
)

type implSummarizer struct {
	generator       textgen.Generator
	intervalSeconds int
	logger          logger.Logger
}

// New creates a Summarizer that partitions transcripts into windows of
// intervalSeconds and generates summaries through gen.
func New(gen textgen.Generator, intervalSeconds int, log logger.Logger) (Summarizer, error) {
	if intervalSeconds <= 0 {
		return nil, fmt.Errorf("timeline interval must be positive, got %d", intervalSeconds)
	}
	return &implSummarizer{
		generator:       gen,
		intervalSeconds: intervalSeconds,
		logger:          log,
	}, nil
}
