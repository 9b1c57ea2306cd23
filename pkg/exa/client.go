package exa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/querylab/exa-ask/pkg/httpclient"
)

// answerRequest is the payload sent to the answer endpoint.
type answerRequest struct {
	Query string `json:"query"`
	Text  bool   `json:"text,omitempty"`
}

// Answer is the response from the answer endpoint.
type Answer struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations,omitempty"`
}

// Citation is a single source the service used to produce the answer.
type Citation struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
	Text          string `json:"text,omitempty"`
}

// Client talks to the Exa API. It holds exactly one credential for its
// entire lifetime.
type Client struct {
	apiKey  string
	baseURL string
	http    httpclient.Client
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient injects a custom transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout replaces the default 30s request timeout. Ignored when a
// custom transport is injected.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 && c.http == nil {
			c.http = httpclient.NewRestyClient(d)
		}
	}
}

// NewClient produces a new Exa client bound to the given API key.
// An empty key is refused; a Client never exists without a credential.
func NewClient(key string, opts ...Option) (*Client, error) {
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey:  key,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(30 * time.Second)
	}

	return c, nil
}

// Answer asks the service to answer the given query. The call blocks until
// the service responds, the transport times out, or ctx is cancelled.
// Transport and service failures are returned as-is; nothing is retried.
func (c *Client) Answer(ctx context.Context, query string) (*Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	headers := map[string]string{"x-api-key": c.apiKey}
	body := answerRequest{Query: query, Text: true}

	resp, err := c.http.Post(ctx, c.baseURL+answerPath, headers, body)
	if err != nil {
		return nil, fmt.Errorf("answer request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	}
	if resp.IsError() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    bodySnippet(resp.Body()),
		}
	}

	var out Answer
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("decode response: %v", err),
		}
	}

	return &out, nil
}

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
