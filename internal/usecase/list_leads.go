package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/backend"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

type ListLeadsUseCase struct {
	Backend backend.Backend
	Metrics MetricsRecorder
	Now     func() time.Time
}

func NewListLeadsUseCase(b backend.Backend, m MetricsRecorder) *ListLeadsUseCase {
	if m == nil {
		m = noopMetrics{}
	}
	return &ListLeadsUseCase{Backend: b, Metrics: m, Now: time.Now}
}

// Fetch busca todos os leads, mais recentes primeiro.
func (uc *ListLeadsUseCase) Fetch(ctx context.Context) ([]entity.Lead, error) {
	repo, err := uc.Backend.Repository()
	if err != nil {
		return nil, &TechnicalError{Code: CodeBackendNotConfigured, Message: "backend não configurado", Err: err}
	}

	leads, err := repo.ListRecent(ctx)
	if err != nil {
		uc.Metrics.RecordBackendError("list")
		log.Printf("❌ Erro ao buscar leads: %v", err)
		return nil, &TechnicalError{Code: CodeBackend, Message: "erro ao buscar leads", Err: err}
	}

	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context) (*ListLeadsOutput, error) {
	leads, err := uc.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return &ListLeadsOutput{
		Leads: leads,
		Stats: entity.ComputeStats(leads, uc.Now()),
	}, nil
}
