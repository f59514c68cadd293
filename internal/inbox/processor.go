package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
	"github.com/tuannguyen0901/meeting-flow/internal/output"
)

// Process summarizes a dropped transcript file and writes the summary
// as Markdown and DOCX into the summaries directory. The input file is
// moved next to its outputs so it is not re-processed.
func (p *implProcessor) Process(ctx context.Context, filePath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	p.logger.Info(ctx, "Processing transcript: %s", filePath)

	b, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	var meeting models.Meeting
	if err := json.Unmarshal(b, &meeting); err != nil {
		return fmt.Errorf("decode transcript: %w", err)
	}
	if err := meeting.Validate(); err != nil {
		return fmt.Errorf("invalid transcript: %w", err)
	}

	summary, err := p.summarizer.SummarizeMeeting(ctx, &meeting)
	if err != nil {
		return fmt.Errorf("summarize meeting: %w", err)
	}

	if err := os.MkdirAll(p.cfg.Paths.Summaries, 0755); err != nil {
		return fmt.Errorf("create summaries dir: %w", err)
	}

	mdPath := filepath.Join(p.cfg.Paths.Summaries, name+".md")
	if err := output.WriteMarkdown(mdPath, name, summary); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Summaries, name+".docx")
	if err := output.WriteDocx(docxPath, name, summary); err != nil {
		p.logger.Warn(ctx, "Failed to write DOCX for %s: %v", name, err)
	}

	archived := filepath.Join(p.cfg.Paths.Summaries, filepath.Base(filePath))
	if err := os.Rename(filePath, archived); err != nil {
		p.logger.Warn(ctx, "Failed to archive transcript %s: %v", filePath, err)
	}

	p.logger.Info(ctx, "Summary written: %s (%d windows, took %s)",
		mdPath, len(summary.TimelineSummaries), time.Since(startTime))

	return nil
}
