package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tuannguyen0901/meeting-flow/internal/mockdata"
	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Meeting Summarization API",
		"version": version,
		"endpoints": map[string]string{
			"health":       "/health",
			"summarize":    "POST /api/meetings/summarize",
			"mock_data":    "GET /api/meetings/mock-data",
			"mock_summary": "GET /api/meetings/mock-summary",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "healthy",
		"mock_mode":         s.cfg.Summarization.UseMock,
		"timeline_interval": s.cfg.Summarization.TimelineIntervalSeconds,
	})
}

// handleSummarize is the main entry point: decode a meeting, validate
// it, and return its timeline summary. Invalid input is the caller's
// fault (400); anything escaping the summarizer is a request
// failure (500). Backend unavailability never reaches here.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var meeting models.Meeting
	if err := json.NewDecoder(r.Body).Decode(&meeting); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid meeting payload: %v", err))
		return
	}

	if err := meeting.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.summarizer.SummarizeMeeting(r.Context(), &meeting)
	if err != nil {
		s.logger.Error(r.Context(), "Summarization failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error generating summary: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleMockData(w http.ResponseWriter, r *http.Request) {
	minutes := queryInt(r, "duration_minutes", 10)
	index := queryInt(r, "conversation_index", 0)

	writeJSON(w, http.StatusOK, mockdata.SampleMeeting(minutes, index))
}

func (s *Server) handleMockSummary(w http.ResponseWriter, r *http.Request) {
	minutes := queryInt(r, "duration_minutes", 10)
	index := queryInt(r, "conversation_index", 0)

	meeting := mockdata.SampleMeeting(minutes, index)
	summary, err := s.summarizer.SummarizeMeeting(r.Context(), meeting)
	if err != nil {
		s.logger.Error(r.Context(), "Mock summarization failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error generating mock summary: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"meeting": meeting,
		"summary": summary,
	})
}

func (s *Server) handleLongMockSummary(w http.ResponseWriter, r *http.Request) {
	minutes := queryInt(r, "duration_minutes", 30)

	meeting := mockdata.LongMeeting(minutes)
	summary, err := s.summarizer.SummarizeMeeting(r.Context(), meeting)
	if err != nil {
		s.logger.Error(r.Context(), "Long mock summarization failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error generating long mock summary: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"meeting":           meeting,
		"summary":           summary,
		"timeline_segments": len(summary.TimelineSummaries),
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
