// Package ai is the thin proxy to the upstream language model that
// turns free text from the user into add/remove sets over a candidate
// interest list. It fails closed: any upstream or parse failure yields
// empty sets, never an error surfaced to the client.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

const systemPrompt = `You are an expert in interest recommendation.
The user is telling you about their preferences. You must analyze WHAT THEY ARE SAYING NOW and return a JSON with two arrays:
- "toAdd": IDs to ADD (what they like, what interests them) - MAXIMUM 10 items
- "toRemove": IDs to REMOVE (what they DON'T like, what they want to exclude)

IMPORTANT RULES:
1. Analyze ONLY the user's new sentence
2. If the user says "I like X", "I love X", "I enjoy X" → add X to toAdd (MAX 10 most relevant)
3. If the user says "I don't like X", "not X", "except X", "no X" → add X to toRemove
4. Understand synonyms (sporty = sports, coding = programming, etc.)
5. Be PRECISE and SELECTIVE: choose the most relevant interests, not an entire category
6. STRICT LIMIT: maximum 10 items in toAdd
7. Return ONLY the JSON, nothing else

OUTPUT FORMAT (MANDATORY):
{"toAdd": [1, 5, 23], "toRemove": [12, 45]}

If nothing to add: {"toAdd": [], "toRemove": [12]}
If nothing to remove: {"toAdd": [1, 5], "toRemove": []}`

// Interest is one candidate the model may pick from.
type Interest struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Request is one inference request.
type Request struct {
	UserQuery         string     `json:"userQuery"`
	Interests         []Interest `json:"interests"`
	CurrentlySelected []int      `json:"currentlySelected,omitempty"`
}

// Result is what the caller always gets, upstream failure or not. Error
// carries the upstream failure text for observability; ToAdd/ToRemove
// stay empty in that case.
type Result struct {
	ToAdd    []int  `json:"toAdd"`
	ToRemove []int  `json:"toRemove"`
	Raw      string `json:"raw,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Client calls the upstream chat-completions API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// NewClient returns a client with a bounded request timeout. A nil
// logger falls back to slog.Default.
func NewClient(apiKey, model string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Recommend asks the model which interests to add and remove for the
// user's sentence. The returned Result is always usable; failure modes
// degrade to empty sets.
func (c *Client) Recommend(ctx context.Context, req Request) Result {
	prompt, err := buildSystemPrompt(req)
	if err != nil {
		c.logger.Error("failed to build recommendation prompt", "error", err)
		return Result{ToAdd: []int{}, ToRemove: []int{}, Error: err.Error()}
	}

	c.logger.Info("interest inference request",
		"query", req.UserQuery,
		"selected", req.CurrentlySelected,
	)

	raw, upstreamErr := c.complete(ctx, prompt, req.UserQuery)
	if upstreamErr != nil {
		c.logger.Warn("upstream completion failed", "error", upstreamErr)
		return Result{ToAdd: []int{}, ToRemove: []int{}, Error: upstreamErr.Error(), Raw: raw}
	}

	toAdd, toRemove := parseSets(raw)
	c.logger.Info("interest inference result", "toAdd", toAdd, "toRemove", toRemove)
	return Result{ToAdd: toAdd, ToRemove: toRemove, Raw: raw}
}

func buildSystemPrompt(req Request) (string, error) {
	interestsJSON, err := json.Marshal(req.Interests)
	if err != nil {
		return "", fmt.Errorf("failed to encode interests: %w", err)
	}

	prompt := systemPrompt + "\n\nAvailable hobbies list:\n" + string(interestsJSON)
	if len(req.CurrentlySelected) > 0 {
		selectedJSON, err := json.Marshal(req.CurrentlySelected)
		if err != nil {
			return "", fmt.Errorf("failed to encode selection: %w", err)
		}
		prompt += "\n\nInterests ALREADY SELECTED by the user: " + string(selectedJSON)
	}
	return prompt, nil
}

// complete performs the chat-completions round trip and returns the
// model's text content. On a non-2xx status the body is returned as the
// first value so callers can keep it for observability.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return string(body), fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}
