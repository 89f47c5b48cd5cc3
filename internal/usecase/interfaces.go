package usecase

import (
	"context"

	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, event queue.LeadCapturedEvent) error
}

type MetricsRecorder interface {
	RecordLeadCaptured(tipoVeiculo string)
	RecordBackendError(operation string)
}

type noopMetrics struct{}

func (noopMetrics) RecordLeadCaptured(string) {}
func (noopMetrics) RecordBackendError(string) {}
