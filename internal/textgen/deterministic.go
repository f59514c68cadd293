package textgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

// topicKeywords are matched case-insensitively against the transcript;
// hits become topics in list order.
var topicKeywords = []string{
	"Azure",
	"Speech",
	"OpenAI",
	"iOS",
	"backend",
	"test",
	"integration",
	"implementation",
}

var cannedKeyPoints = []string{
	"Discussed speech-to-text integration with speaker diarization",
	"Reviewed timeline-based summarization approach",
	"Planned testing strategy with mock data before production",
}

var cannedActionItems = []string{
	"Prepare mock data for testing",
	"Review progress in next meeting",
}

var cannedKeyDecisions = []string{
	"Adopt timeline-based summarization with fixed intervals",
	"Validate prompts and response format with mock data",
	"Keep the deterministic fallback for offline operation",
}

var cannedFollowUps = []string{
	"Complete backend prototype",
	"Schedule follow-up sync meeting",
	"Prepare test scenarios",
}

type implDeterministic struct{}

// NewDeterministic creates the offline Generator. Output is a
// reproducible, content-derived approximation: identical inputs always
// produce identical results, with no network calls.
func NewDeterministic() Generator {
	return &implDeterministic{}
}

func (g *implDeterministic) GenerateWindowSummary(_ context.Context, transcriptText, _ string, _ []string) WindowResult {
	lines := strings.Split(transcriptText, "\n")
	lower := strings.ToLower(transcriptText)

	var topics []string
	for _, kw := range topicKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			topics = append(topics, kw)
		}
	}
	if len(topics) == 0 {
		topics = []string{"General Discussion", "Planning"}
	}
	if len(topics) > 4 {
		topics = topics[:4]
	}

	keyPoints := cannedKeyPoints
	if len(lines) < len(keyPoints) {
		keyPoints = keyPoints[:len(lines)]
	}

	var actions []string
	if strings.Contains(lower, "test") || strings.Contains(lower, "action") {
		actions = cannedActionItems
	}

	return WindowResult{
		KeyPoints:   keyPoints,
		Topics:      topics,
		ActionItems: actions,
	}
}

func (g *implDeterministic) GenerateOverallSummary(_ context.Context, summaries []models.TimelineSummary) OverallResult {
	// First-seen order makes the unions deterministic; the source of
	// these lists is per-window generation, which is already ordered.
	allTopics := lo.Uniq(lo.FlatMap(summaries, func(s models.TimelineSummary, _ int) []string {
		return s.Topics
	}))
	allActions := lo.Uniq(lo.FlatMap(summaries, func(s models.TimelineSummary, _ int) []string {
		return s.ActionItems
	}))

	leadTopics := allTopics
	if len(leadTopics) > 3 {
		leadTopics = leadTopics[:3]
	}

	followUps := allActions
	if len(followUps) == 0 {
		followUps = cannedFollowUps
	}

	return OverallResult{
		OverallSummary: fmt.Sprintf(
			"Team meeting covering %d discussion segments. Main topics included %s. "+
				"Agreed on implementation approach and testing strategy.",
			len(summaries), strings.Join(leadTopics, ", ")),
		KeyDecisions:    cannedKeyDecisions,
		FollowUpActions: followUps,
	}
}
