// Package gateway exposes the travel agent client over a small HTTP API so
// the browser front end talks to one origin instead of the agent service
// directly. Successful exchanges are recorded in a history store.
package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/numaan0/travel-genius/pkg/agent"
	"github.com/numaan0/travel-genius/pkg/history"
	"github.com/numaan0/travel-genius/pkg/trip"
)

// errorResponse is the JSON body for every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// chatRequest is the body of POST /api/chat and /api/chat/stream.
type chatRequest struct {
	Question string `json:"question"`
}

// Gateway is the HTTP server fronting the agent service.
type Gateway struct {
	config Config
	client *agent.Client
	storer history.Storer
	logger *zap.Logger
	server *fiber.App
}

// New creates a Gateway.
func New(config Config, logger *zap.Logger) (*Gateway, error) {
	var storer history.Storer
	var err error

	if config.DBPath != "" {
		storer, err = history.NewSQLiteStorer(config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite history store: %w", err)
		}
		logger.Info("using SQLite history store", zap.String("path", config.DBPath))
	} else {
		storer = history.NewMemoryStorer()
		logger.Info("using in-memory history store")
	}

	client := agent.NewClient(agent.Config{
		BaseURL: config.AgentURL,
		AppName: config.AppName,
	}, logger)

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
	})

	g := &Gateway{
		config: config,
		client: client,
		storer: storer,
		logger: logger,
		server: app,
	}

	app.Post("/api/itinerary", g.handleItinerary)
	app.Post("/api/chat", g.handleChat)
	app.Post("/api/chat/stream", g.handleChatStream)

	app.Get("/api/history", g.handleListHistory)
	app.Get("/api/history/:id", g.handleGetHistory)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	return g, nil
}

// Run starts the gateway server on the configured listening address.
func (g *Gateway) Run() error {
	g.logger.Info("starting gateway server",
		zap.String("listen", g.config.ListenAddr),
		zap.String("agent", g.config.AgentURL),
	)

	return g.server.Listen(g.config.ListenAddr)
}

// Close shuts down the gateway and releases resources.
func (g *Gateway) Close() error {
	return g.storer.Close()
}

// handleItinerary generates a full itinerary from planner form input.
// Either a complete, minimally shaped itinerary is returned or an error
// status; partial itineraries are never rendered.
func (g *Gateway) handleItinerary(c *fiber.Ctx) error {
	start := time.Now()

	var req agent.TripRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	}

	it, err := g.client.GenerateItinerary(c.Context(), req)
	if err != nil {
		g.logger.Error("itinerary generation failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: "could not generate itinerary"})
	}

	g.logger.Info("itinerary served",
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
		zap.Duration("duration", time.Since(start)),
	)

	g.record(c.Context(), history.KindItinerary, req.Prompt(), it)

	return c.JSON(it)
}

// handleChat answers a free-form question about a trip.
func (g *Gateway) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "question is required"})
	}

	answer, err := g.client.AskQuestion(c.Context(), req.Question)
	if err != nil {
		g.logger.Error("chat request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: "could not get response"})
	}
	if answer == nil {
		// Canceled by the caller; nothing to send.
		return c.SendStatus(fiber.StatusNoContent)
	}

	g.record(c.Context(), history.KindChat, req.Question, answer)

	return c.JSON(answer)
}

// streamEvent is one ndjson line of POST /api/chat/stream.
type streamEvent struct {
	Type    string                  `json:"type"` // "progress", "result" or "error"
	Message string                  `json:"message,omitempty"`
	Result  *trip.AssistantResponse `json:"result,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// handleChatStream answers a question while emitting progress events as
// ndjson. The agent call itself is a single request/response, so progress
// arrives at exactly two points, before sending and after receiving.
func (g *Gateway) handleChatStream(c *fiber.Ctx) error {
	var req chatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "question is required"})
	}

	c.Set("Content-Type", "application/x-ndjson")
	c.Set("Transfer-Encoding", "chunked")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// The request context dies with the handler; the agent call outlives it.
		ctx := context.Background()

		writeEvent := func(ev streamEvent) {
			line, err := json.Marshal(ev)
			if err != nil {
				g.logger.Error("failed to marshal stream event", zap.Error(err))
				return
			}
			w.Write(line)
			w.Write([]byte("\n"))
			w.Flush()
		}

		callbacks := agent.Callbacks[*trip.AssistantResponse]{
			OnProgress: func(message string) {
				writeEvent(streamEvent{Type: "progress", Message: message})
			},
			OnComplete: func(result *trip.AssistantResponse) {
				writeEvent(streamEvent{Type: "result", Result: result})
			},
			OnError: func(err error) {
				writeEvent(streamEvent{Type: "error", Error: "could not get response"})
			},
		}

		answer, err := g.client.AskQuestionStream(ctx, req.Question, callbacks)
		if err != nil || answer == nil {
			return
		}

		g.record(ctx, history.KindChat, req.Question, answer)
	}))

	return nil
}

// handleListHistory returns stored exchanges, optionally filtered by kind.
func (g *Gateway) handleListHistory(c *fiber.Ctx) error {
	var (
		records []*history.Record
		err     error
	)

	switch kind := c.Query("kind"); kind {
	case "":
		records, err = g.storer.List(c.Context())
	case string(history.KindItinerary), string(history.KindChat):
		records, err = g.storer.ListKind(c.Context(), history.Kind(kind))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "unknown kind: " + kind})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to list history"})
	}

	if records == nil {
		records = []*history.Record{}
	}

	return c.JSON(map[string]any{
		"count":   len(records),
		"records": records,
	})
}

// handleGetHistory returns a single stored exchange by ID.
func (g *Gateway) handleGetHistory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "id parameter required"})
	}

	rec, err := g.storer.Get(c.Context(), id)
	if err != nil {
		var notFound history.ErrNotFound
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to load record"})
	}

	return c.JSON(rec)
}

// record stores a completed exchange. Storage failures are logged but never
// fail the request that produced the result.
func (g *Gateway) record(ctx context.Context, kind history.Kind, prompt string, result any) {
	payload, err := json.Marshal(result)
	if err != nil {
		g.logger.Error("failed to marshal history payload", zap.Error(err))
		return
	}

	rec := history.NewRecord(kind, prompt, payload)
	if err := g.storer.Put(ctx, rec); err != nil {
		g.logger.Error("failed to store exchange", zap.Error(err))
		return
	}

	g.logger.Debug("exchange recorded",
		zap.String("kind", string(kind)),
		zap.String("id", rec.ID[:16]),
	)
}
