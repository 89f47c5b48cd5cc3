package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/backend"
)

// ConnectionChecker é satisfeito por *amqp091.Connection.
type ConnectionChecker interface {
	IsClosed() bool
}

type HealthHandler struct {
	Backend   backend.Backend
	RabbitMQ  ConnectionChecker
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(b backend.Backend, rabbitMQ ConnectionChecker) *HealthHandler {
	return &HealthHandler{
		Backend:   b,
		RabbitMQ:  rabbitMQ,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)
	status := "healthy"

	switch b := h.Backend.(type) {
	case backend.NotConfigured:
		deps["backend"] = "not configured"
		status = "degraded"
	case backend.Configured:
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := b.Ping(ctx); err != nil {
			deps["backend"] = fmt.Sprintf("unhealthy: %v", err)
			status = "degraded"
		} else {
			deps["backend"] = "healthy (" + b.Driver + ")"
		}
	}

	// RabbitMQ é opcional: sem ele os leads continuam sendo salvos
	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
