package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
)

// Os producers da fila satisfazem a porta do usecase.
var (
	_ QueueProducerInterface = (*queue.RabbitMQProducer)(nil)
	_ QueueProducerInterface = queue.NoopProducer{}
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.NewLead) (*entity.Lead, error) {
	args := m.Called(ctx, lead)
	if fn, ok := args.Get(0).(func(context.Context, *entity.NewLead) *entity.Lead); ok {
		return fn(ctx, lead), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListRecent(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, event queue.LeadCapturedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockMetrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordLeadCaptured(tipoVeiculo string) {
	m.Called(tipoVeiculo)
}

func (m *MockMetrics) RecordBackendError(operation string) {
	m.Called(operation)
}
