package summarizer

import (
	"context"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

// Summarizer turns a meeting transcript into a timeline-based summary:
// one structured summary per time window plus a whole-meeting
// synthesis.
type Summarizer interface {
	SummarizeMeeting(ctx context.Context, meeting *models.Meeting) (*models.MeetingSummary, error)
}
