package textgen

import (
	"github.com/tuannguyen0901/meeting-flow/internal/config"
	"github.com/tuannguyen0901/meeting-flow/internal/logger"
)

// New selects the Generator implementation from configuration. The
// choice is made once at startup and is read-only afterward.
func New(cfg *config.Config, log logger.Logger) Generator {
	if cfg.Summarization.UseMock {
		return NewDeterministic()
	}
	return NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
}
