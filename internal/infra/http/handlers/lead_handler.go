package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

type LeadCapturer interface {
	Execute(ctx context.Context, input usecase.LeadFormInput) (*usecase.CaptureLeadOutput, error)
}

type LeadLister interface {
	Execute(ctx context.Context) (*usecase.ListLeadsOutput, error)
}

type LeadHandler struct {
	capture     LeadCapturer
	list        LeadLister
	rateLimiter *RateLimiter
}

func NewLeadHandler(capture LeadCapturer, list LeadLister) *LeadHandler {
	return &LeadHandler{
		capture:     capture,
		list:        list,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// Close para o rate limiter.
func (h *LeadHandler) Close() {
	h.rateLimiter.Stop()
}

// CaptureLead (POST /api/leads)
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.LeadFormInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.capture.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Lead)
}

// ListLeads (GET /api/leads)
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	output, err := h.list.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
