package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Segment is one attributed, timestamped span of transcribed speech.
// StartTime/EndTime are seconds relative to meeting start; Timestamp is
// the absolute wall-clock time the segment was spoken.
type Segment struct {
	ID         uuid.UUID `json:"id"`
	SpeakerID  string    `json:"speaker_id"`
	Text       string    `json:"text"`
	StartTime  float64   `json:"start_time"`
	EndTime    float64   `json:"end_time"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// Meeting is a complete recorded session with its transcript.
type Meeting struct {
	ID           uuid.UUID  `json:"id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Duration     float64    `json:"duration"`
	Participants []string   `json:"participants"`
	Transcript   []Segment  `json:"transcript"`
	AudioFileURL string     `json:"audio_file_url,omitempty"`
}

// Validate checks the structural invariants of a meeting. Segment times
// that fall outside [0, duration] are tolerated, not errors: such
// segments are simply placed (or not) by the timeline membership rule.
func (m *Meeting) Validate() error {
	if m.Duration < 0 {
		return fmt.Errorf("duration must be non-negative, got %f", m.Duration)
	}
	for i, seg := range m.Transcript {
		if seg.Confidence < 0 || seg.Confidence > 1 {
			return fmt.Errorf("transcript[%d]: confidence %f out of [0,1]", i, seg.Confidence)
		}
	}
	return nil
}
