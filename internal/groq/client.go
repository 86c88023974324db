// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package groq

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

	"github.com/jeranaias/codegen-tui/internal/model"
)

// Configuration constants for the Groq API.
const (
	// DefaultBaseURL is the base URL for the Groq OpenAI-compatible API.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default timeout for completion requests.
	DefaultTimeout = 60 * time.Second

	// Temperature is the fixed sampling temperature for every request.
	Temperature = 0.7

	// MaxTokens is the fixed maximum output size for every request.
	MaxTokens = 4000

	// MockResponse is the literal reply returned in mock mode.
	MockResponse = "**Mock Mode:** This is a demo response."

	// maxResponseSize bounds the response body read.
	maxResponseSize = 10 * 1024 * 1024
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// Sentinel errors for common failure classes.
var (
	// ErrNotConfigured indicates the API key is not set.
	ErrNotConfigured = errors.New("Groq API key not configured")

	// ErrAuthFailed indicates the API key was rejected.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates the account hit its quota.
	ErrRateLimited = errors.New("rate limited")
)

// APIError represents an error response from the Groq API.
type APIError struct {
	Code    string
	Message string
	Status  int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("Groq error [%s] (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("Groq error (HTTP %d): %s", e.Status, e.Message)
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatMessage is a single message in the completions request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body for the chat completions endpoint.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is the body returned by the chat completions endpoint.
type ChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// GetContent returns the content of the first choice, or "".
func (r *ChatResponse) GetContent() string {
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content
	}
	return ""
}

// apiErrorResponse is the error envelope returned by the API.
type apiErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the Groq chat completions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client with the given API key.
//
// An empty key still yields a usable client: mock-mode completions work,
// and real completions fail with ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithBaseURL sets a custom base URL. Used by tests.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimRight(url, "/")
	return c
}

// Complete sends a composed prompt as a single user message and returns
// the generated text.
//
// The mock pseudo-model returns MockResponse with no network call. All
// other models issue one non-streaming request with the fixed sampling
// temperature and output cap; there is no retry.
func (c *Client) Complete(ctx context.Context, modelID, composedPrompt string) (string, error) {
	if model.IsMock(modelID) {
		return MockResponse, nil
	}
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := ChatRequest{
		Model:       modelID,
		Messages:    []ChatMessage{{Role: "user", Content: composedPrompt}},
		Stream:      false,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.decodeError(resp.StatusCode, data)
	}

	var result ChatResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return result.GetContent(), nil
}

// decodeError maps an error response onto sentinel or API errors.
func (c *Client) decodeError(status int, data []byte) error {
	var envelope apiErrorResponse
	_ = json.Unmarshal(data, &envelope)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		if envelope.Error.Message != "" {
			return fmt.Errorf("%w: %s", ErrAuthFailed, envelope.Error.Message)
		}
		return ErrAuthFailed
	case http.StatusTooManyRequests:
		if envelope.Error.Message != "" {
			return fmt.Errorf("%w: %s", ErrRateLimited, envelope.Error.Message)
		}
		return ErrRateLimited
	}

	return &APIError{
		Code:    envelope.Error.Code,
		Message: envelope.Error.Message,
		Status:  status,
	}
}
