package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// submitPath asks the judge to run the submission synchronously: the call
// blocks until the judge reports a terminal status.
const submitPath = "/submissions?base64_encoded=false&wait=true"

var _ Client = (*Judge0Client)(nil)

// Judge0Client is a Judge0 CE client (RapidAPI hosted). It is safe for
// concurrent use and is constructed once at process start.
type Judge0Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewJudge0Client creates a Judge0 client. apiKey and apiHost are the
// RapidAPI credentials; their absence is a deployment error and surfaces as
// upstream 401s rather than a startup failure.
func NewJudge0Client(baseURL, apiKey, apiHost string, timeout time.Duration, logger *zap.Logger) *Judge0Client {
	return &Judge0Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiHost:    apiHost,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Submit sends one submission and waits for its terminal result. Single
// attempt, no retry: a transport error or non-2xx status is returned as-is
// for the caller to classify.
func (c *Judge0Client) Submit(ctx context.Context, sub Submission) (*Result, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("judge0: marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("judge0: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("judge0: submit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Judge0 returned non-success status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", detail),
		)
		return nil, fmt.Errorf("judge0: submit failed with status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("judge0: decode result: %w", err)
	}
	return &result, nil
}
