package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tuannguyen0901/meeting-flow/internal/config"
	"github.com/tuannguyen0901/meeting-flow/internal/logger"
	"github.com/tuannguyen0901/meeting-flow/internal/mockdata"
	"github.com/tuannguyen0901/meeting-flow/internal/models"
	"github.com/tuannguyen0901/meeting-flow/internal/summarizer"
	"github.com/tuannguyen0901/meeting-flow/internal/textgen"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Summarization: config.SummarizationConfig{UseMock: true},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	log := logger.New("error")
	sum, err := summarizer.New(textgen.NewDeterministic(), cfg.Summarization.TimelineIntervalSeconds, log)
	if err != nil {
		t.Fatal(err)
	}

	return New(cfg, log, sum)
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	if body["mock_mode"] != true {
		t.Errorf("mock_mode = %v, want true", body["mock_mode"])
	}
}

func TestSummarize(t *testing.T) {
	srv := testServer(t)

	meeting := mockdata.SampleMeeting(10, 0)
	payload, err := json.Marshal(meeting)
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/meetings/summarize", bytes.NewReader(payload))
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var summary models.MeetingSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}

	if summary.MeetingID != meeting.ID.String() {
		t.Errorf("meeting_id = %q, want %q", summary.MeetingID, meeting.ID.String())
	}
	if summary.TotalDuration != meeting.Duration {
		t.Errorf("total_duration = %v, want %v", summary.TotalDuration, meeting.Duration)
	}
	if len(summary.TimelineSummaries) == 0 {
		t.Error("no timeline summaries returned")
	}
	if summary.OverallSummary == "" {
		t.Error("overall_summary is empty")
	}
}

func TestSummarizeInvalidPayload(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"negative duration", `{"id":"550e8400-e29b-41d4-a716-446655440001","start_time":"2025-10-30T10:00:00Z","duration":-5,"participants":[],"transcript":[]}`},
		{"confidence out of range", `{"id":"550e8400-e29b-41d4-a716-446655440001","start_time":"2025-10-30T10:00:00Z","duration":60,"participants":[],"transcript":[{"id":"550e8400-e29b-41d4-a716-446655440000","speaker_id":"Speaker 1","text":"hi","start_time":0,"end_time":5,"confidence":2.0,"timestamp":"2025-10-30T10:00:00Z"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/meetings/summarize", strings.NewReader(tt.body))
			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestMockData(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/mock-data?duration_minutes=10&conversation_index=1", nil)
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var meeting models.Meeting
	if err := json.Unmarshal(rec.Body.Bytes(), &meeting); err != nil {
		t.Fatal(err)
	}
	if len(meeting.Transcript) == 0 {
		t.Error("mock meeting has no transcript")
	}
}

func TestMockSummary(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/mock-summary", nil)
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Meeting *models.Meeting        `json:"meeting"`
		Summary *models.MeetingSummary `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Meeting == nil || body.Summary == nil {
		t.Fatal("mock summary response incomplete")
	}
	if body.Summary.MeetingID != body.Meeting.ID.String() {
		t.Error("summary does not reference the generated meeting")
	}
}

func TestLongMockSummary(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/long-mock-summary?duration_minutes=30", nil)
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Summary          *models.MeetingSummary `json:"summary"`
		TimelineSegments int                    `json:"timeline_segments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.TimelineSegments < 2 {
		t.Errorf("timeline_segments = %d, want at least 2 for a 30 minute meeting", body.TimelineSegments)
	}
}

func TestCORS(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/meetings/summarize", nil)
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
