package timeline

import (
	"testing"

	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

func segmentsAt(startTimes ...float64) []models.Segment {
	segs := make([]models.Segment, 0, len(startTimes))
	for _, st := range startTimes {
		segs = append(segs, models.Segment{
			SpeakerID: "Speaker 1",
			Text:      "hello",
			StartTime: st,
			EndTime:   st + 5,
		})
	}
	return segs
}

func TestPartition(t *testing.T) {
	windows, err := Partition(segmentsAt(0, 15, 30, 299, 301, 450), 500, 300)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}

	first := windows[0]
	if first.StartTime != 0 || first.EndTime != 300 {
		t.Errorf("first window [%v,%v), want [0,300)", first.StartTime, first.EndTime)
	}
	if len(first.Segments) != 4 {
		t.Errorf("first window has %d segments, want 4", len(first.Segments))
	}

	second := windows[1]
	if second.StartTime != 300 || second.EndTime != 500 {
		t.Errorf("second window [%v,%v), want [300,500)", second.StartTime, second.EndTime)
	}
	if len(second.Segments) != 2 {
		t.Errorf("second window has %d segments, want 2", len(second.Segments))
	}
}

func TestPartitionBoundarySegment(t *testing.T) {
	// A segment starting exactly on a window boundary belongs to the
	// window it starts (left-inclusive, right-exclusive).
	windows, err := Partition(segmentsAt(300), 600, 300)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(windows))
	}
	if windows[0].StartTime != 300 {
		t.Errorf("window starts at %v, want 300", windows[0].StartTime)
	}
}

func TestPartitionCoverage(t *testing.T) {
	// Every in-range segment lands in exactly one window;
	// out-of-range ones land in none.
	segs := segmentsAt(-5, 0, 120, 299.9, 300, 499, 500, 600)
	windows, err := Partition(segs, 500, 100)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	assigned := 0
	for _, w := range windows {
		for _, seg := range w.Segments {
			assigned++
			if seg.StartTime < w.StartTime || seg.StartTime >= w.EndTime {
				t.Errorf("segment at %v misplaced in window [%v,%v)", seg.StartTime, w.StartTime, w.EndTime)
			}
			if seg.StartTime < 0 || seg.StartTime >= 500 {
				t.Errorf("out-of-range segment at %v was assigned", seg.StartTime)
			}
		}
	}
	if assigned != 5 {
		t.Errorf("assigned %d segments, want 5", assigned)
	}
}

func TestPartitionTiling(t *testing.T) {
	// Window boundaries are a subsequence of {0, W, 2W, ...} clipped
	// to the duration; the last window is narrower when D is not a
	// multiple of W.
	windows, err := Partition(segmentsAt(10, 310, 610), 650, 300)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}

	last := windows[len(windows)-1]
	if last.StartTime != 600 || last.EndTime != 650 {
		t.Errorf("last window [%v,%v), want [600,650)", last.StartTime, last.EndTime)
	}

	for i := 1; i < len(windows); i++ {
		if windows[i].StartTime <= windows[i-1].StartTime {
			t.Errorf("windows not strictly increasing at %d", i)
		}
	}
}

func TestPartitionEmptyWindowsDropped(t *testing.T) {
	windows, err := Partition(segmentsAt(10, 910), 1200, 300)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	if windows[1].StartTime != 900 {
		t.Errorf("second window starts at %v, want 900", windows[1].StartTime)
	}
}

func TestPartitionEdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		segments    []models.Segment
		duration    float64
		interval    float64
		wantWindows int
		wantErr     bool
	}{
		{"zero duration", segmentsAt(0), 0, 300, 0, false},
		{"no segments", nil, 600, 300, 0, false},
		{"zero interval", segmentsAt(0), 600, 0, 0, true},
		{"negative interval", segmentsAt(0), 600, -10, 0, true},
		{"negative duration", segmentsAt(0), -1, 300, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := Partition(tt.segments, tt.duration, tt.interval)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Partition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(windows) != tt.wantWindows {
				t.Errorf("got %d windows, want %d", len(windows), tt.wantWindows)
			}
		})
	}
}

func TestPartitionToleratesBrokenSegments(t *testing.T) {
	// end_time < start_time must not crash; placement only looks at
	// start_time.
	segs := []models.Segment{
		{SpeakerID: "Speaker 1", Text: "broken", StartTime: 50, EndTime: 10},
	}
	windows, err := Partition(segs, 100, 60)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if len(windows) != 1 || len(windows[0].Segments) != 1 {
		t.Fatalf("broken segment not placed: %+v", windows)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{300, "5:00"},
		{500, "8:20"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{7325, "2:02:05"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRangeLabel(t *testing.T) {
	tests := []struct {
		start, end float64
		want       string
	}{
		{0, 300, "0:00 - 5:00"},
		{300, 500, "5:00 - 8:20"},
		{3600, 3900, "1:00:00 - 1:05:00"},
	}

	for _, tt := range tests {
		if got := RangeLabel(tt.start, tt.end); got != tt.want {
			t.Errorf("RangeLabel(%v, %v) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
