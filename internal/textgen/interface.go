package textgen

import (
	"context"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

// WindowResult is the structured generation output for one window.
// Nil slices are valid and mean "nothing identified".
type WindowResult struct {
	KeyPoints   []string `json:"key_points"`
	Topics      []string `json:"topics"`
	ActionItems []string `json:"action_items"`
}

// OverallResult is the whole-meeting synthesis output.
type OverallResult struct {
	OverallSummary  string   `json:"overall_summary"`
	KeyDecisions    []string `json:"key_decisions"`
	FollowUpActions []string `json:"follow_up_actions"`
}

// Generator produces structured summary content from transcript text.
// Implementations must absorb their own failures: a provider error is
// never returned to the caller, it is resolved internally (the live
// implementation degrades to the deterministic one for that call), so
// both methods always yield a usable result.
type Generator interface {
	GenerateWindowSummary(ctx context.Context, transcriptText, timeRange string, speakers []string) WindowResult
	GenerateOverallSummary(ctx context.Context, summaries []models.TimelineSummary) OverallResult
}
