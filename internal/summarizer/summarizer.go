package summarizer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
	"github.com/tuannguyen0901/meeting-flow/internal/timeline"
)

const noSummaryAvailable = "No summary available"

// SummarizeMeeting partitions the transcript into time windows,
// summarizes each window in chronological order, then synthesizes the
// overall summary from all window summaries. Window order in the output
// is the partitioner's emission order and is never re-sorted.
//
// Backend health never surfaces here: the generator absorbs its own
// failures, so a structurally valid meeting always yields a summary.
func (s *implSummarizer) SummarizeMeeting(ctx context.Context, meeting *models.Meeting) (*models.MeetingSummary, error) {
	if err := meeting.Validate(); err != nil {
		return nil, fmt.Errorf("invalid meeting: %w", err)
	}

	windows, err := timeline.Partition(meeting.Transcript, meeting.Duration, float64(s.intervalSeconds))
	if err != nil {
		return nil, fmt.Errorf("partition transcript: %w", err)
	}

	s.logger.Debug(ctx, "Partitioned %d segments into %d windows", len(meeting.Transcript), len(windows))

	timelineSummaries := make([]models.TimelineSummary, 0, len(windows))
	for _, win := range windows {
		timelineSummaries = append(timelineSummaries, s.summarizeWindow(ctx, win))
	}

	overall := s.generator.GenerateOverallSummary(ctx, timelineSummaries)

	overallSummary := overall.OverallSummary
	if overallSummary == "" {
		overallSummary = noSummaryAvailable
	}

	return &models.MeetingSummary{
		MeetingID:         meeting.ID.String(),
		GeneratedAt:       time.Now(),
		TotalDuration:     meeting.Duration,
		TimelineSummaries: timelineSummaries,
		OverallSummary:    overallSummary,
		KeyDecisions:      emptyIfNil(overall.KeyDecisions),
		FollowUpActions:   emptyIfNil(overall.FollowUpActions),
	}, nil
}

// summarizeWindow formats one window's segments into a labeled
// transcript block and requests a structured summary for it. Exactly
// one generator call per window.
func (s *implSummarizer) summarizeWindow(ctx context.Context, win timeline.Window) models.TimelineSummary {
	lines := make([]string, 0, len(win.Segments))
	for _, seg := range win.Segments {
		lines = append(lines, fmt.Sprintf("%s: %s", seg.SpeakerID, seg.Text))
	}
	// Segments are joined in input order, not re-sorted by start time.
	transcriptText := strings.Join(lines, "\n")

	speakers := lo.Uniq(lo.Map(win.Segments, func(seg models.Segment, _ int) string {
		return seg.SpeakerID
	}))
	sort.Strings(speakers)

	timeRange := timeline.RangeLabel(win.StartTime, win.EndTime)

	result := s.generator.GenerateWindowSummary(ctx, transcriptText, timeRange, speakers)

	return models.TimelineSummary{
		TimeRange:   timeRange,
		StartTime:   win.StartTime,
		EndTime:     win.EndTime,
		Speakers:    speakers,
		KeyPoints:   emptyIfNil(result.KeyPoints),
		Topics:      emptyIfNil(result.Topics),
		ActionItems: emptyIfNil(result.ActionItems),
	}
}

// emptyIfNil keeps absent generator fields as empty lists so they
// serialize as [] rather than null.
func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
