package worqhat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"campaigniq/internal/core/port"
)

// Fallback is returned when the upstream answers successfully but without a
// content field. Callers must treat it as a soft condition, not an error.
const Fallback = "Sorry, I couldn't process that request."

// randomness is the sampling temperature sent with ungrounded questions.
const randomness = 0.4

// Client talks to the WorqHat content API. It implements port.ChatClient.
type Client struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client
}

// NewClient creates a content API client. The model identifier is only used
// by GeneratedAnswer.
func NewClient(apiKey, endpoint, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

type contentRequest struct {
	Question   string  `json:"question"`
	Randomness float64 `json:"randomness"`
}

type contentResponse struct {
	Content string `json:"content"`
}

// Content sends a bare question as a JSON body and returns the answer text.
func (c *Client) Content(ctx context.Context, question string) (string, error) {
	payload, err := json.Marshal(contentRequest{Question: question, Randomness: randomness})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req)
}

// GeneratedAnswer sends a question plus grounding context as a multipart
// form, the shape the content API expects for model-pinned, non-streaming
// answers.
func (c *Client) GeneratedAnswer(ctx context.Context, question, trainingData string) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	fields := map[string]string{
		"question":      question,
		"model":         c.model,
		"training_data": trainingData,
		"stream_data":   "false",
		"response_type": "text",
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return "", fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	return c.send(req)
}

// send executes a prepared request with bearer auth and applies the shared
// response policy: non-success statuses surface as port.ErrChatUpstream with
// the raw body attached, a missing content field yields Fallback.
func (c *Client) send(req *http.Request) (string, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", port.ErrChatUpstream, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", port.ErrChatUpstream, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d: %s", port.ErrChatUpstream, res.StatusCode, body)
	}

	var parsed contentResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", port.ErrChatUpstream, err)
	}
	if parsed.Content == "" {
		return Fallback, nil
	}
	return parsed.Content, nil
}
