// ABOUTME: Summarizer backed by the Hugging Face inference API
// ABOUTME: Posts text with min/max length parameters and reads the first summary_text

package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"validity-app-api/core/errors"
	"validity-app-api/core/interfaces"
)

// DefaultEndpoint serves the facebook/bart-large-cnn summarization model
const DefaultEndpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type summary struct {
	SummaryText string `json:"summary_text"`
}

type apiError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// Client implements interfaces.Summarizer
type Client struct {
	httpClient interfaces.HTTPClient
	token      string
	endpoint   string
}

// Option configures a Client
type Option func(*Client)

// WithEndpoint points the client at another model or a local inference server
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// NewClient creates a summarizer; an empty token yields a ConfigurationError
func NewClient(httpClient interfaces.HTTPClient, token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, &errors.ConfigurationError{Key: "HF_TOKEN", Message: "summarization token is not set"}
	}
	if httpClient == nil {
		return nil, &errors.ConfigurationError{Key: "http", Message: "HTTP client is required"}
	}

	c := &Client{
		httpClient: httpClient,
		token:      token,
		endpoint:   DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Summarize requests a deterministic summary bounded by minWords and maxWords
func (c *Client) Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error) {
	payload, err := json.Marshal(request{
		Inputs: text,
		Parameters: parameters{
			MinLength: minWords,
			MaxLength: maxWords,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", &errors.SummarizationFailureError{Cause: err}
	}

	resp, err := c.httpClient.PostWithHeaders(ctx, c.endpoint, bytes.NewReader(payload), map[string]string{
		"Authorization": "Bearer " + c.token,
		"Content-Type":  "application/json",
	})
	if err != nil {
		return "", &errors.SummarizationFailureError{Cause: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &errors.SummarizationFailureError{Cause: err}
	}

	if resp.StatusCode() != 200 {
		return "", &errors.SummarizationFailureError{Cause: statusError(resp.StatusCode(), body)}
	}

	var summaries []summary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return "", &errors.SummarizationFailureError{Cause: fmt.Errorf("decode response: %w", err)}
	}
	if len(summaries) == 0 || strings.TrimSpace(summaries[0].SummaryText) == "" {
		return "", &errors.SummarizationFailureError{Cause: fmt.Errorf("empty summary")}
	}

	return strings.TrimSpace(summaries[0].SummaryText), nil
}

func statusError(status int, body []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		if apiErr.EstimatedTime > 0 {
			return fmt.Errorf("status %d: %s (retry in %.0fs)", status, apiErr.Error, apiErr.EstimatedTime)
		}
		return fmt.Errorf("status %d: %s", status, apiErr.Error)
	}
	return fmt.Errorf("status %d", status)
}
