package timeline

import (
	"fmt"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

// Window is a fixed-width time slice of the meeting and the segments
// that start inside it. Ephemeral: produced by Partition, consumed by
// the summarizer, never serialized.
type Window struct {
	StartTime float64
	EndTime   float64
	Segments  []models.Segment
}

// Partition splits segments into fixed-width, non-overlapping windows
// covering [0, totalDuration). A segment belongs to a window iff
// window.StartTime <= segment.StartTime < window.EndTime; placement
// ignores the segment's end time. Windows with no segments are dropped.
//
// The final window is narrower than interval when totalDuration is not
// a multiple of it. Segments starting at or past totalDuration, or
// before 0, land in no window.
//
// Input order is preserved within each window; segments are not sorted.
func Partition(segments []models.Segment, totalDuration, interval float64) ([]Window, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %f", interval)
	}
	if totalDuration < 0 {
		return nil, fmt.Errorf("total duration must be non-negative, got %f", totalDuration)
	}

	var windows []Window
	cursor := 0.0

	for cursor < totalDuration {
		end := cursor + interval
		if end > totalDuration {
			end = totalDuration
		}

		var inRange []models.Segment
		for _, seg := range segments {
			if seg.StartTime >= cursor && seg.StartTime < end {
				inRange = append(inRange, seg)
			}
		}

		if len(inRange) > 0 {
			windows = append(windows, Window{
				StartTime: cursor,
				EndTime:   end,
				Segments:  inRange,
			})
		}

		cursor = end
	}

	return windows, nil
}

// FormatClock renders seconds as M:SS under one hour, else H:MM:SS.
func FormatClock(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// RangeLabel renders the human time-range label for a window.
func RangeLabel(start, end float64) string {
	return fmt.Sprintf("%s - %s", FormatClock(start), FormatClock(end))
}
