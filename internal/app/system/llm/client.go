// Package llm is a client for an OpenAI-compatible chat and image API.
//
// The assistant is single-shot: each call sends only the latest question
// together with a fixed system prompt describing the organization. No
// conversation history is kept or transmitted.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("assistant is not configured")
	// ErrNoAnswer is returned when the provider responds without any choices.
	ErrNoAnswer = errors.New("provider returned no answer")
	// ErrNoMedia is returned when the image endpoint responds without media.
	ErrNoMedia = errors.New("provider returned no media")
)

// organizationContext is the fixed system prompt. Answers must come from this
// description only; the assistant is not a general-purpose chatbot.
const organizationContext = `You are the website assistant for Kstar Group, a Tanzanian organization with affiliated entities including ClickData Tanzania and Kstar Academy.

Facts you may use:
- Kstar Group runs education and technology programs across Tanzania.
- ClickData Tanzania's mission is to grow data literacy and practical digital skills through hands-on training and community programs.
- Kstar Academy offers courses taught by its faculty; the current course list and faculty profiles are on the website's Courses and Faculty pages.
- Open roles are listed on the Careers page; applicants sign in, fill the application form, and may attach a resume (PDF, DOC, or DOCX, up to 5 MB).
- The public can reach the team through the Contact page, and join as a Volunteer, Partner, or Supporter through the Volunteer page.

Answer concisely in plain language. If a question cannot be answered from these facts, say so and point the visitor to the Contact page. Never invent programs, prices, or dates.`

// Config holds provider settings loaded from app configuration.
type Config struct {
	APIBase    string // e.g. https://api.openai.com
	APIKey     string
	ChatModel  string // e.g. gpt-4o-mini
	ImageModel string // e.g. gpt-image-1
}

// Client calls the provider's chat and image endpoints.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// New builds a Client. The HTTP client timeout bounds the whole provider
// round trip; callers additionally pass a request context.
func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
		log:  logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

/*─────────────────────────────────────────────────────────────────────────────*
| Chat                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Answer sends the visitor's question with the fixed organization context and
// returns the model's reply.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	reqBody := chatRequest{
		Model: c.cfg.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: organizationContext},
			{Role: "user", Content: question},
		},
	}

	var resp chatResponse
	if err := c.post(ctx, "/v1/chat/completions", reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoAnswer
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", ErrNoAnswer
	}
	return answer, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Images                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// GenerateImage asks the provider for one image and returns it as a PNG data
// URI. It fails explicitly when the provider returns no media.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	reqBody := imageRequest{
		Model:          c.cfg.ImageModel,
		Prompt:         prompt,
		N:              1,
		ResponseFormat: "b64_json",
	}

	var resp imageResponse
	if err := c.post(ctx, "/v1/images/generations", reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", ErrNoMedia
	}
	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| transport                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.APIBase, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("provider call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for the log; providers put error detail there.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Warn("provider returned non-200",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail))
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
