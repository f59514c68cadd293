package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"google.golang.org/genai"

	"github.com/tuannguyen0901/meeting-flow/internal/logger"
	"github.com/tuannguyen0901/meeting-flow/internal/models"
)

const windowPrompt = `Analyze the following meeting transcript segment and provide a structured summary.

Time Range: %s
Speakers: %s

Transcript:
%s

Please provide:
1. Key points discussed (as a list of 2-4 concise bullet points)
2. Main topics (as a list of 2-4 topics)
3. Action items if any (as a list, empty if none identified)

Return ONLY JSON with keys: key_points, topics, action_items

Example format:
{
    "key_points": ["Point 1", "Point 2"],
    "topics": ["Topic A", "Topic B"],
    "action_items": ["Action 1"]
}`

const overallPrompt = `Based on these timeline summaries from a meeting, provide an overall meeting summary:

%s

Provide:
1. A brief overall summary (2-3 sentences capturing the main purpose and outcomes)
2. Key decisions made during the meeting (as a list, empty if none)
3. Follow-up actions required (as a list, aggregated from all action items)

Return ONLY JSON with keys: overall_summary, key_decisions, follow_up_actions

Example format:
{
    "overall_summary": "Brief 2-3 sentence summary here",
    "key_decisions": ["Decision 1", "Decision 2"],
    "follow_up_actions": ["Action 1", "Action 2"]
}`

type implGemini struct {
	apiKeys []string
	// currentKey is shared by all in-flight requests; atomic so
	// concurrent rotations never race.
	currentKey atomic.Int32
	model      string
	logger     logger.Logger
	fallback   Generator
}

// NewGemini creates the live Generator backed by the Gemini API.
// Rotates through apiKeys on quota errors. Any failure (client,
// network, quota exhaustion, unparseable completion) degrades to the
// deterministic generator for that one call and is never surfaced.
func NewGemini(apiKeys []string, model string, log logger.Logger) Generator {
	return &implGemini{
		apiKeys:  apiKeys,
		model:    model,
		logger:   log,
		fallback: NewDeterministic(),
	}
}

func (g *implGemini) GenerateWindowSummary(ctx context.Context, transcriptText, timeRange string, speakers []string) WindowResult {
	prompt := fmt.Sprintf(windowPrompt, timeRange, strings.Join(speakers, ", "), transcriptText)

	raw, err := g.complete(ctx, prompt)
	if err != nil {
		g.logger.Warn(ctx, "Window generation failed, using deterministic fallback: %v", err)
		return g.fallback.GenerateWindowSummary(ctx, transcriptText, timeRange, speakers)
	}

	var result WindowResult
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		g.logger.Warn(ctx, "Window completion is not valid JSON, using deterministic fallback: %v", err)
		return g.fallback.GenerateWindowSummary(ctx, transcriptText, timeRange, speakers)
	}

	return result
}

func (g *implGemini) GenerateOverallSummary(ctx context.Context, summaries []models.TimelineSummary) OverallResult {
	prompt := fmt.Sprintf(overallPrompt, combineSummaries(summaries))

	raw, err := g.complete(ctx, prompt)
	if err != nil {
		g.logger.Warn(ctx, "Overall generation failed, using deterministic fallback: %v", err)
		return g.fallback.GenerateOverallSummary(ctx, summaries)
	}

	var result OverallResult
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		g.logger.Warn(ctx, "Overall completion is not valid JSON, using deterministic fallback: %v", err)
		return g.fallback.GenerateOverallSummary(ctx, summaries)
	}

	return result
}

// generateTimeout bounds one provider attempt. A timed-out attempt is
// treated like any other provider error: rotation or fallback, never a
// hung worker.
const generateTimeout = 2 * time.Minute

// complete sends the prompt to Gemini and returns the completion text.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) complete(ctx context.Context, prompt string) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	var lastErr error
	for range g.apiKeys {
		idx := int(g.currentKey.Load())

		text, retryable, err := g.generateWithKey(ctx, g.apiKeys[idx], prompt)
		if err == nil {
			return text, nil
		}
		if !retryable {
			return "", err
		}

		g.logger.Warn(ctx, "Key %d unusable, rotating: %v", idx+1, err)
		g.rotateKey()
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// generateWithKey runs one provider attempt under its own timeout.
// retryable marks errors worth rotating keys over (client setup,
// quota); everything else fails the call outright.
func (g *implGemini) generateWithKey(ctx context.Context, key, prompt string) (text string, retryable bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", true, fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
			return "", true, err
		}
		return "", false, fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, false, nil
		}
	}

	return "", false, fmt.Errorf("empty response from Gemini")
}

func (g *implGemini) rotateKey() {
	for {
		cur := g.currentKey.Load()
		next := (cur + 1) % int32(len(g.apiKeys))
		if g.currentKey.CompareAndSwap(cur, next) {
			return
		}
	}
}

// extractJSON strips markdown fences and surrounding prose from a
// completion, keeping the outermost JSON object. Models sometimes wrap
// JSON output despite being told not to.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			return raw[start : end+1]
		}
	}
	return raw
}

// combineSummaries renders window summaries as the prompt context block
// for the overall synthesis.
func combineSummaries(summaries []models.TimelineSummary) string {
	blocks := make([]string, 0, len(summaries))
	for _, s := range summaries {
		var b strings.Builder
		fmt.Fprintf(&b, "Time %s:\n", s.TimeRange)
		fmt.Fprintf(&b, "Topics: %s\n", strings.Join(s.Topics, ", "))
		b.WriteString("Key Points:\n")
		for _, point := range s.KeyPoints {
			fmt.Fprintf(&b, "  - %s\n", point)
		}
		if len(s.ActionItems) > 0 {
			b.WriteString("Action Items:\n")
			for _, item := range s.ActionItems {
				fmt.Fprintf(&b, "  - %s\n", item)
			}
		}
		blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
