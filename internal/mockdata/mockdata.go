package mockdata

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

type scriptLine struct {
	speaker string
	start   float64
	end     float64
	text    string
}

// Two scripted conversations used to synthesize realistic transcripts
// for demos and offline testing.
var sampleConversations = [][]scriptLine{
	{
		{"Speaker 1", 0, 15, "Good morning everyone. Let's start the meeting."},
		{"Speaker 2", 15, 30, "Thanks for organizing this. I'd like to discuss the speech service integration."},
		{"Speaker 1", 30, 50, "Sure, we've been working on implementing speech-to-text with speaker diarization."},
		{"Speaker 3", 50, 70, "That sounds great. What about the summarization feature?"},
		{"Speaker 1", 70, 95, "We're planning to use a text-generation model for timeline-based summarization."},
		{"Speaker 2", 95, 120, "I think we should test it with mock data first before going live."},
		{"Speaker 1", 120, 145, "Absolutely. We need to validate the prompts and response format."},
		{"Speaker 3", 145, 165, "When do you think we can have the first prototype ready?"},
		{"Speaker 1", 165, 185, "I estimate two weeks for the backend prototype."},
		{"Speaker 2", 185, 210, "Perfect. Let's sync again next week to review progress."},
	},
	{
		{"Speaker 1", 0, 20, "Let's discuss the mobile client implementation details."},
		{"Speaker 2", 20, 45, "We need to add the speech SDK as a dependency first."},
		{"Speaker 1", 45, 70, "Right. And we'll need to configure the API credentials securely."},
		{"Speaker 3", 70, 95, "Should we store them in the keychain?"},
		{"Speaker 2", 95, 115, "Yes, that's the safest option for mobile apps."},
		{"Speaker 1", 115, 140, "We also need continuous recognition with conversation transcription mode."},
		{"Speaker 3", 140, 165, "Don't forget to enable speaker diarization."},
		{"Speaker 2", 165, 190, "And we need word-level timestamps for the timeline feature."},
		{"Speaker 1", 190, 215, "I'll create the recording manager and the speech client."},
		{"Speaker 3", 215, 240, "Great. Let's meet tomorrow to review the initial implementation."},
	},
}

// SampleMeeting generates a mock meeting from one of the scripted
// conversations. The meeting duration is derived from the last segment.
func SampleMeeting(durationMinutes, conversationIndex int) *models.Meeting {
	conversation := sampleConversations[conversationIndex%len(sampleConversations)]

	startTime := time.Now().Add(-time.Duration(durationMinutes) * time.Minute)
	segments := make([]models.Segment, 0, len(conversation))

	for _, line := range conversation {
		segments = append(segments, newSegment(line, startTime, line.start, line.end, 0))
	}

	duration := float64(durationMinutes * 60)
	if len(segments) > 0 {
		duration = lo.MaxBy(segments, func(a, b models.Segment) bool {
			return a.EndTime > b.EndTime
		}).EndTime
	}

	endTime := startTime.Add(time.Duration(duration) * time.Second)

	return &models.Meeting{
		ID:           uuid.New(),
		StartTime:    startTime,
		EndTime:      &endTime,
		Duration:     duration,
		Participants: participants(segments),
		Transcript:   segments,
	}
}

// LongMeeting generates an extended meeting by repeating the scripted
// conversations, with a short pause between repeats, until the target
// duration is filled. Useful for exercising multiple timeline windows.
func LongMeeting(durationMinutes int) *models.Meeting {
	startTime := time.Now().Add(-time.Duration(durationMinutes) * time.Minute)
	targetDuration := float64(durationMinutes * 60)

	var segments []models.Segment
	current := 0.0
	cycle := 0

	for current < targetDuration {
		conversation := sampleConversations[cycle%len(sampleConversations)]

		for _, line := range conversation {
			absStart := current + line.start
			absEnd := current + line.end

			if absStart >= targetDuration {
				break
			}
			if absEnd > targetDuration {
				absEnd = targetDuration
			}

			segments = append(segments, newSegment(line, startTime, absStart, absEnd, cycle))

			if absEnd >= targetDuration {
				break
			}
		}

		current += conversation[len(conversation)-1].end + 5
		cycle++
	}

	endTime := startTime.Add(time.Duration(targetDuration) * time.Second)

	return &models.Meeting{
		ID:           uuid.New(),
		StartTime:    startTime,
		EndTime:      &endTime,
		Duration:     targetDuration,
		Participants: participants(segments),
		Transcript:   segments,
	}
}

// WriteJSON exports a meeting to a JSON file using the wire field
// names, so exported files round-trip through the API unchanged.
func WriteJSON(path string, meeting *models.Meeting) error {
	b, err := json.MarshalIndent(meeting, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal meeting: %w", err)
	}
	return os.WriteFile(path, b, 0644)
}

func newSegment(line scriptLine, meetingStart time.Time, absStart, absEnd float64, cycle int) models.Segment {
	return models.Segment{
		ID:         uuid.New(),
		SpeakerID:  line.speaker,
		Text:       line.text,
		StartTime:  absStart,
		EndTime:    absEnd,
		Confidence: confidenceFor(line.text, cycle),
		Timestamp:  meetingStart.Add(time.Duration(absStart) * time.Second),
	}
}

// confidenceFor derives a stable pseudo-confidence in [0.92, 0.99]
// from the segment content.
func confidenceFor(text string, cycle int) float64 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", text, cycle)
	return 0.92 + float64(h.Sum32()%8)/100
}

func participants(segments []models.Segment) []string {
	speakers := lo.Uniq(lo.Map(segments, func(seg models.Segment, _ int) string {
		return seg.SpeakerID
	}))
	sort.Strings(speakers)
	return speakers
}
