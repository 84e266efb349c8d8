/*
Package coach is the client for the external coaching text service.

PURPOSE:
  The engine hands the service a structured monthly summary plus the
  manager's objective and gets back free-text analysis. The service is a
  black box; nothing downstream depends on its result.

FAILURE MODE - FAIL SOFT:
  The client NEVER returns an error to the caller. Any failure (network,
  non-200 status, malformed body, context timeout) is logged and the
  fixed apology string is returned instead. The scoring pipeline must
  keep working with the coach unreachable.

HARDENING:
  Every call runs under a caller-side timeout and a bounded exponential
  backoff (the service has no SLA). Cancellation of the caller's context
  stops the retries immediately.
*/
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// User-facing copy, kept in the store's language.
const (
	// Apology is returned whenever the service cannot produce a plan.
	Apology = "Lo siento, encontré un error al analizar los datos. Por favor, inténtalo de nuevo."

	// EmptyPromptReply is returned for a blank objective without calling
	// the service at all.
	EmptyPromptReply = "Por favor, introduce un objetivo para empezar."
)

const (
	defaultTimeout = 20 * time.Second
	retryBase      = 500 * time.Millisecond
	maxRetries     = 2
)

// Client calls the coaching text service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client for the service at baseURL. A nil logger
// falls back to zap.NewNop.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        log,
	}
}

// generateRequest is the wire shape the service accepts.
type generateRequest struct {
	Prompt  string `json:"prompt"`
	Summary any    `json:"summary"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Plan asks the service for a coaching plan from the manager's objective
// and the structured monthly summary. Always returns a usable string.
func (c *Client) Plan(ctx context.Context, prompt string, summary any) string {
	if strings.TrimSpace(prompt) == "" {
		return EmptyPromptReply
	}
	if c.baseURL == "" {
		c.log.Warn("coach service not configured")
		return Apology
	}

	body, err := json.Marshal(generateRequest{Prompt: prompt, Summary: summary})
	if err != nil {
		c.log.Error("coach request encode failed", zap.Error(err))
		return Apology
	}

	var text string
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		text, err = c.generate(ctx, body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		c.log.Warn("coach service unavailable", zap.Error(err))
		return Apology
	}
	return text
}

func (c *Client) generate(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.Text == "" {
		return "", fmt.Errorf("empty response text")
	}
	return result.Text, nil
}
