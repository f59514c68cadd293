package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

// RenderMarkdown renders a meeting summary as a markdown document:
// header metadata, one section per timeline window, then the
// whole-meeting synthesis.
func RenderMarkdown(title string, summary *models.MeetingSummary) string {
	var b strings.Builder

	if title == "" {
		title = "Meeting Summary"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- Meeting: `%s`\n", summary.MeetingID)
	fmt.Fprintf(&b, "- Generated: %s\n", summary.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Duration: %.0f seconds\n", summary.TotalDuration)
	b.WriteString("\n---\n\n")

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "%s\n\n", summary.OverallSummary)

	if len(summary.KeyDecisions) > 0 {
		b.WriteString("## Key Decisions\n\n")
		writeBullets(&b, summary.KeyDecisions)
	}

	if len(summary.FollowUpActions) > 0 {
		b.WriteString("## Follow-up Actions\n\n")
		writeBullets(&b, summary.FollowUpActions)
	}

	if len(summary.TimelineSummaries) > 0 {
		b.WriteString("## Timeline\n\n")
		for _, ts := range summary.TimelineSummaries {
			fmt.Fprintf(&b, "### %s\n\n", ts.TimeRange)
			fmt.Fprintf(&b, "Speakers: %s\n\n", strings.Join(ts.Speakers, ", "))
			if len(ts.Topics) > 0 {
				fmt.Fprintf(&b, "Topics: %s\n\n", strings.Join(ts.Topics, ", "))
			}
			writeBullets(&b, ts.KeyPoints)
			if len(ts.ActionItems) > 0 {
				b.WriteString("Action items:\n\n")
				writeBullets(&b, ts.ActionItems)
			}
		}
	}

	return b.String()
}

// WriteMarkdown writes the rendered summary to path.
func WriteMarkdown(path, title string, summary *models.MeetingSummary) error {
	return os.WriteFile(path, []byte(RenderMarkdown(title, summary)), 0644)
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
