package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/numaan0/travel-genius/pkg/trip"
)

// DefaultBaseURL is the local development address of the agent service.
const DefaultBaseURL = "http://localhost:8000"

// defaultAppName is the application name the agent service registers its
// travel planner under.
const defaultAppName = "agent"

// Config configures a Client.
type Config struct {
	// BaseURL of the agent service (e.g. "http://localhost:8000")
	BaseURL string

	// AppName within the agent service; "agent" when empty
	AppName string
}

// BaseURLFromEnv returns the agent base URL from ADK_SERVICE_URL, falling
// back to the local development default.
func BaseURLFromEnv() string {
	if v := os.Getenv("ADK_SERVICE_URL"); v != "" {
		return v
	}
	return DefaultBaseURL
}

// Client talks to the agent service. It is stateless apart from
// configuration; one instance can be shared across a whole process.
type Client struct {
	baseURL string
	appName string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient creates a Client.
func NewClient(config Config, logger *zap.Logger) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	appName := config.AppName
	if appName == "" {
		appName = defaultAppName
	}

	return &Client{
		baseURL: baseURL,
		appName: appName,
		httpc: &http.Client{
			// Itinerary generation can be slow; the model plans a whole trip
			Timeout: 5 * time.Minute,
		},
		logger: logger,
	}
}

// CreateSession initializes server-side conversation state for the handle.
// It is best-effort scaffolding: the agent may auto-create sessions on the
// first real message, so failures are logged and swallowed, never propagated.
func (c *Client) CreateSession(ctx context.Context, handle SessionHandle) {
	body, err := json.Marshal(map[string]any{"state": map[string]any{}})
	if err != nil {
		c.logger.Warn("failed to marshal session state", zap.Error(err))
		return
	}

	url := fmt.Sprintf("%s/apps/%s/users/%s/sessions/%s", c.baseURL, c.appName, handle.UserID, handle.SessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("failed to build session request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("session creation failed", zap.String("session_id", handle.SessionID), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		c.logger.Warn("session creation returned error status",
			zap.String("session_id", handle.SessionID),
			zap.Int("status", resp.StatusCode),
		)
		return
	}

	c.logger.Debug("session created",
		zap.String("user_id", handle.UserID),
		zap.String("session_id", handle.SessionID),
	)
}

// run sends a single user message to /run and returns the raw response body.
func (c *Client) run(ctx context.Context, handle SessionHandle, text string) ([]byte, error) {
	payload := RunRequest{
		AppName:   c.appName,
		UserID:    handle.UserID,
		SessionID: handle.SessionID,
		NewMessage: Message{
			Role:  "user",
			Parts: []Part{{Text: text}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending message to agent",
		zap.String("session_id", handle.SessionID),
		zap.String("text_preview", truncate(text, 100)),
	)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read agent response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	c.logger.Debug("agent responded",
		zap.String("session_id", handle.SessionID),
		zap.Int("body_size", len(raw)),
		zap.Duration("duration", time.Since(start)),
	)

	return raw, nil
}

// GenerateItinerary creates a fresh session, sends the itinerary instruction
// built from req, and normalizes the reply. It fails with a generic "could
// not generate" error when no valid itinerary can be extracted; partial
// itineraries are never returned.
func (c *Client) GenerateItinerary(ctx context.Context, req TripRequest) (*trip.TravelItinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	handle := NewSessionHandle()
	c.CreateSession(ctx, handle)

	raw, err := c.run(ctx, handle, req.Prompt())
	if err != nil {
		c.logger.Error("itinerary request failed", zap.Error(err))
		return nil, fmt.Errorf("could not generate itinerary: %w", err)
	}

	it, err := ExtractItinerary(raw)
	if err != nil {
		c.logger.Error("itinerary extraction failed",
			zap.Error(err),
			zap.String("body_preview", truncate(string(raw), 200)),
		)
		return nil, fmt.Errorf("could not generate itinerary: %w", err)
	}

	c.logger.Info("itinerary generated",
		zap.String("trip_title", it.TripTitle),
		zap.Int("days", len(it.DailyPlans)),
	)

	return it, nil
}

// AskQuestion sends a free-text question and normalizes the reply on the
// assistant path. Cancellation is silent success: when ctx is canceled before
// or during the call, AskQuestion returns (nil, nil) rather than an error.
func (c *Client) AskQuestion(ctx context.Context, question string) (*trip.AssistantResponse, error) {
	if ctx.Err() != nil {
		return nil, nil
	}

	handle := NewSessionHandle()

	raw, err := c.run(ctx, handle, question)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil
		}
		c.logger.Error("question request failed", zap.Error(err))
		return nil, fmt.Errorf("could not get response: %w", err)
	}
	if ctx.Err() != nil {
		return nil, nil
	}

	ar, err := ExtractAssistant(raw)
	if err != nil {
		c.logger.Error("answer extraction failed",
			zap.Error(err),
			zap.String("body_preview", truncate(string(raw), 200)),
		)
		return nil, fmt.Errorf("could not get response: %w", err)
	}

	return ar, nil
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
