package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/xavierca1/segurofacil-leads/internal/backend"
	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
)

type CaptureLeadUseCase struct {
	Backend backend.Backend
	Queue   QueueProducerInterface
	Metrics MetricsRecorder
}

func NewCaptureLeadUseCase(b backend.Backend, q QueueProducerInterface, m MetricsRecorder) *CaptureLeadUseCase {
	if q == nil {
		q = queue.NoopProducer{}
	}
	if m == nil {
		m = noopMetrics{}
	}
	return &CaptureLeadUseCase{Backend: b, Queue: q, Metrics: m}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input LeadFormInput) (*CaptureLeadOutput, error) {
	if errs := ValidateLeadForm(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	lead, err := NormalizeLead(input)
	if err != nil {
		var ve ValidationError
		if errors.As(err, &ve) {
			return nil, validationFailed([]ValidationError{ve})
		}
		return nil, err
	}

	repo, err := uc.Backend.Repository()
	if err != nil {
		log.Printf("⚠️ Lead não salvo: %v", err)
		return nil, &TechnicalError{Code: CodeBackendNotConfigured, Message: "backend não configurado", Err: err}
	}

	saved, err := repo.Insert(ctx, lead)
	if err != nil {
		uc.Metrics.RecordBackendError("insert")
		log.Printf("❌ Erro ao salvar lead: %v", err)
		return nil, &TechnicalError{Code: CodeBackend, Message: "erro ao salvar lead", Err: err}
	}

	log.Printf("✅ Lead capturado: id=%s nome=%q email=%s tipo=%s", saved.ID, saved.Nome, saved.Email, saved.TipoVeiculo)
	uc.Metrics.RecordLeadCaptured(string(saved.TipoVeiculo))

	// O lead já está salvo; falha na fila só é logada.
	if err := uc.Queue.PublishLeadCaptured(ctx, queue.NewLeadCapturedEvent(saved)); err != nil {
		log.Printf("⚠️ Erro ao publicar lead %s na fila: %v", saved.ID, err)
	}

	return &CaptureLeadOutput{Lead: saved}, nil
}

func validationFailed(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
		Fields:  errs,
	}
}
