package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/entity"
	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

type LeadsLister interface {
	Execute(ctx context.Context) (*usecase.ListLeadsOutput, error)
}

type DigestSender interface {
	SendDailyDigest(stats entity.Stats, date time.Time) error
}

// DigestWorker envia periodicamente o resumo de leads para o time comercial.
type DigestWorker struct {
	leads        LeadsLister
	sender       DigestSender
	tickInterval time.Duration
	now          func() time.Time
}

func NewDigestWorker(leads LeadsLister, sender DigestSender, interval time.Duration) *DigestWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &DigestWorker{
		leads:        leads,
		sender:       sender,
		tickInterval: interval,
		now:          time.Now,
	}
}

func (w *DigestWorker) Start(ctx context.Context) {
	log.Printf("🕒 Digest Worker iniciado (a cada %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Digest Worker encerrado")
			return
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				log.Printf("❌ Erro ao enviar resumo de leads: %v", err)
			}
		}
	}
}

func (w *DigestWorker) RunOnce(ctx context.Context) error {
	out, err := w.leads.Execute(ctx)
	if err != nil {
		return err
	}

	if err := w.sender.SendDailyDigest(out.Stats, w.now()); err != nil {
		return err
	}

	log.Printf("📧 Resumo enviado: %d leads hoje, %d no total", out.Stats.Hoje, out.Stats.Total)
	return nil
}
