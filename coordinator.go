package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/docreason/client/memory"
	"github.com/docreason/client/schema"
	"github.com/docreason/client/session"
	"github.com/docreason/client/stream"
	"go.uber.org/zap"
)

const (
	queryPath       = "/api/query"
	queryStreamPath = "/api/query/stream"
)

// Coordinator glues user submissions, the wire protocol and the session
// state together. It enforces single-flight: a submission while another is
// pending is refused, not queued. Submit blocks until the pending message
// has resolved; Abort and Status may be called from other goroutines.
type Coordinator struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	streaming  bool
	timeout    time.Duration
	statusFn   func(message string)

	mu         sync.Mutex
	inFlight   bool
	cancel     context.CancelFunc
	lastStatus string
}

func NewCoordinator(baseURL string, sess *session.Session, opts ...Option) *Coordinator {
	c := &Coordinator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sess,
		streaming:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit sends a query scoped to the given active documents. It appends the
// user message and a pending assistant message, issues the request, and
// applies the terminal result to the pending message before returning its
// id.
//
// Only usage errors (empty query, single-flight violation) are returned.
// Transport and server failures resolve the pending message to error with a
// generic user-safe text; the id is still returned so callers can render
// the outcome.
func (c *Coordinator) Submit(ctx context.Context, query string, activeDocuments []string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	reqCtx, err := c.begin(ctx)
	if err != nil {
		return "", err
	}
	defer c.end()

	c.session.Conversation.AddUserMessage(query)
	pendingID := c.session.Conversation.AddPendingAssistantMessage()

	request := schema.QueryRequest{
		Query:           query,
		SessionID:       c.session.ID,
		ActiveDocuments: activeDocuments,
	}
	if len(activeDocuments) > 0 {
		// Legacy servers only read the singular field.
		request.ActiveDocument = activeDocuments[0]
	}

	if c.streaming {
		c.submitStreaming(reqCtx, request, pendingID)
	} else {
		c.submitSingleShot(reqCtx, request, pendingID)
	}
	return pendingID, nil
}

// Abort cancels the in-flight request, if any. The pending message resolves
// to error.
func (c *Coordinator) Abort() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Close aborts any in-flight request. The session itself outlives the
// coordinator.
func (c *Coordinator) Close() {
	c.Abort()
}

// Status returns the latest incremental status message observed on the
// current stream. Empty when idle.
func (c *Coordinator) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastStatus
}

// Session returns the session this coordinator drives.
func (c *Coordinator) Session() *session.Session {
	return c.session
}

func (c *Coordinator) begin(ctx context.Context) (context.Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return nil, ErrRequestInFlight
	}

	if c.timeout > 0 {
		ctx, c.cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		ctx, c.cancel = context.WithCancel(ctx)
	}
	c.inFlight = true
	c.lastStatus = ""
	return ctx, nil
}

func (c *Coordinator) end() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.inFlight = false
	c.lastStatus = ""
}

// submitSingleShot awaits the full JSON response body and applies it to the
// pending message.
func (c *Coordinator) submitSingleShot(ctx context.Context, request schema.QueryRequest, pendingID string) {
	resp, err := c.postJSON(ctx, queryPath, request)
	if err != nil {
		c.resolveError(pendingID, "Query request failed", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.resolveError(pendingID, "Query request rejected",
			fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body)))
		return
	}

	var result schema.QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.resolveError(pendingID, "Failed to decode query response", err)
		return
	}

	if result.Status != schema.StatusSuccess {
		c.resolveError(pendingID, "Server reported query failure",
			fmt.Errorf("status %q: %s", result.Status, result.ErrorMessage))
		return
	}

	c.resolveSuccess(pendingID, result.FinalAnswer, result.ReasoningLog,
		time.Duration(result.ProcessingTimeMs)*time.Millisecond)
}

// submitStreaming consumes decoded stream events until the terminal one and
// applies it to the pending message. The decoder guarantees exactly one
// terminal event per stream; a closed channel without one means the request
// was cancelled.
func (c *Coordinator) submitStreaming(ctx context.Context, request schema.QueryRequest, pendingID string) {
	resp, err := c.postJSON(ctx, queryStreamPath, request)
	if err != nil {
		c.resolveError(pendingID, "Stream request failed", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.resolveError(pendingID, "Stream request rejected",
			fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body)))
		return
	}

	terminal := false
	for ev := range stream.Events(ctx, resp.Body) {
		switch ev := ev.(type) {
		case stream.Progress:
			c.noteStatus(ev.Frame)
		case stream.FinalAnswer:
			c.resolveSuccess(pendingID, ev.Content, ev.ReasoningLog, 0)
			terminal = true
		case stream.StreamError:
			c.resolveError(pendingID, "Stream reported error", fmt.Errorf("%s", ev.Message))
			terminal = true
		case stream.Complete:
			// Stream finished without an answer: an empty success.
			c.resolveSuccess(pendingID, "", nil, 0)
			terminal = true
		}
	}

	if !terminal {
		c.resolveError(pendingID, "Stream aborted", ctx.Err())
	}
}

func (c *Coordinator) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	return resp, nil
}

func (c *Coordinator) noteStatus(frame schema.StreamFrame) {
	message := frame.Message
	if message == "" && frame.ToolName != "" {
		message = "Running " + frame.ToolName
	}

	c.mu.Lock()
	c.lastStatus = message
	c.mu.Unlock()

	if c.statusFn != nil {
		c.statusFn(message)
	}
}

func (c *Coordinator) resolveSuccess(pendingID, content string, steps []schema.ReasoningStep, processingTime time.Duration) {
	status := memory.StatusSuccess
	patch := memory.MessagePatch{
		Content: &content,
		Status:  &status,
	}
	if steps != nil {
		patch.ReasoningSteps = steps
	}
	if processingTime > 0 {
		patch.ProcessingTime = &processingTime
	}
	c.session.Conversation.Update(pendingID, patch)
}

// resolveError terminates the pending message with the generic user-safe
// text. The underlying cause is only logged.
func (c *Coordinator) resolveError(pendingID, reason string, err error) {
	logger.Error(reason, zap.String("message_id", pendingID), zap.Error(err))

	content := genericErrorText
	status := memory.StatusError
	c.session.Conversation.Update(pendingID, memory.MessagePatch{
		Content: &content,
		Status:  &status,
	})
}
