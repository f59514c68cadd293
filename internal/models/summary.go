package models

import "time"

// TimelineSummary is the structured summary for one time window of the
// meeting. Immutable once produced.
type TimelineSummary struct {
	TimeRange   string   `json:"time_range"`
	StartTime   float64  `json:"start_time"`
	EndTime     float64  `json:"end_time"`
	Speakers    []string `json:"speakers"`
	KeyPoints   []string `json:"key_points"`
	Topics      []string `json:"topics"`
	ActionItems []string `json:"action_items"`
}

// MeetingSummary is the final artifact: window summaries in
// chronological order plus the whole-meeting synthesis.
type MeetingSummary struct {
	MeetingID         string            `json:"meeting_id"`
	GeneratedAt       time.Time         `json:"generated_at"`
	TotalDuration     float64           `json:"total_duration"`
	TimelineSummaries []TimelineSummary `json:"timeline_summaries"`
	OverallSummary    string            `json:"overall_summary"`
	KeyDecisions      []string          `json:"key_decisions"`
	FollowUpActions   []string          `json:"follow_up_actions"`
}
