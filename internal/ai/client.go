package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Minggyul/mbti-chat/internal/assessment"
	"github.com/Minggyul/mbti-chat/internal/chat"
)

// The two ways a turn's LLM calls can fail. Both are recovered by the
// engine; neither ever aborts a conversation.
var (
	ErrAnalysis   = errors.New("trait analysis failed")
	ErrGeneration = errors.New("reply generation failed")
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// historyWindow bounds how many prior messages go into each prompt.
	historyWindow = 8
)

// Client calls the OpenAI chat completions API for both trait analysis
// and reply generation.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

func New(apiKey, model string) *Client {
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

var (
	_ chat.Analyzer  = (*Client)(nil)
	_ chat.Generator = (*Client)(nil)
)

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnalyzeTraits asks the model to score the user's latest message on
// all four axes. Any transport, status or parse problem comes back
// wrapped in ErrAnalysis.
func (c *Client) AnalyzeTraits(ctx context.Context, history []chat.Message, userMessage string) (assessment.Observations, error) {
	msgs := make([]apiMessage, 0, historyWindow+2)
	msgs = append(msgs, apiMessage{Role: "system", Content: analysisSystemPrompt})
	msgs = append(msgs, recentContext(history)...)
	msgs = append(msgs, apiMessage{Role: "user", Content: "Analyze this message: " + userMessage})

	content, err := c.complete(ctx, msgs, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	var raw map[assessment.Dimension]assessment.Observation
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: bad analysis JSON: %v", ErrAnalysis, err)
	}

	obs := make(assessment.Observations, 4)
	for d, o := range raw {
		if !d.Valid() {
			continue
		}
		o.Score = clamp(o.Score, -1, 1)
		o.Confidence = clamp(o.Confidence, 0, 1)
		obs[d] = o
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: no usable dimensions in response", ErrAnalysis)
	}

	return obs, nil
}

// GenerateReply asks the model for the next assistant utterance,
// framed by the directive. Failures come back wrapped in ErrGeneration.
func (c *Client) GenerateReply(ctx context.Context, history []chat.Message, d chat.Directive) (string, error) {
	system := buildProbePrompt(d)
	if d.Completed {
		system = buildCompletedPrompt(d)
	}

	msgs := make([]apiMessage, 0, historyWindow+1)
	msgs = append(msgs, apiMessage{Role: "system", Content: system})
	msgs = append(msgs, recentContext(history)...)

	content, err := c.complete(ctx, msgs, false)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return content, nil
}

// complete runs one chat completion and returns the first choice's text.
func (c *Client) complete(ctx context.Context, msgs []apiMessage, jsonMode bool) (string, error) {
	payload := map[string]any{
		"model":    c.Model,
		"messages": msgs,
	}
	if jsonMode {
		payload["response_format"] = map[string]string{"type": "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai status %d: %s", res.StatusCode, truncate(raw, 200))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty completion")
	}

	return parsed.Choices[0].Message.Content, nil
}

func recentContext(history []chat.Message) []apiMessage {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	msgs := make([]apiMessage, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, apiMessage{Role: m.Role, Content: m.Content})
	}
	return msgs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
