package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/backend"
	"github.com/xavierca1/segurofacil-leads/internal/config"
	"github.com/xavierca1/segurofacil-leads/internal/infra/database"
	"github.com/xavierca1/segurofacil-leads/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/segurofacil-leads/internal/infra/http/middleware"
	"github.com/xavierca1/segurofacil-leads/internal/infra/integration/kommo"
	"github.com/xavierca1/segurofacil-leads/internal/infra/integration/whatsapp"
	"github.com/xavierca1/segurofacil-leads/internal/infra/mail"
	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
	"github.com/xavierca1/segurofacil-leads/internal/infra/worker"
	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Backend
	b := backend.Open(cfg)
	defer b.Close()
	prepareBackend(ctx, b)

	// 2. Notificações
	var mailSender *mail.EmailSender
	if cfg.MailConfigured() {
		mailSender = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.SalesEmail)
	} else {
		log.Println("⚠️ MAIL_HOST não configurado: e-mails desativados")
	}

	var notifiers []queue.LeadNotifier
	if mailSender != nil {
		notifiers = append(notifiers, mailSender)
	}
	if cfg.KommoAPIToken != "" {
		notifiers = append(notifiers, kommo.NewClient(cfg.KommoAPIToken, cfg.KommoBaseURL))
	}
	if cfg.WhatsAppConfigured() {
		notifiers = append(notifiers, whatsapp.NewClient(cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneID, cfg.WhatsAppTemplate))
	}

	// 3. Fila
	var producer usecase.QueueProducerInterface = queue.NoopProducer{}
	var rabbitConn handlers.ConnectionChecker
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível, eventos desativados: %v", err)
		} else {
			defer rabbitMQ.Close()
			producer = queue.NewProducer(rabbitMQ.Ch)
			rabbitConn = rabbitMQ.Conn

			w := queue.NewWorker(rabbitMQ.Ch, notifiers...)
			go func() {
				if err := w.Start(ctx, queue.QueueName); err != nil {
					log.Printf("❌ Worker parou: %v", err)
				}
			}()
		}
	}

	// 4. UseCases
	metrics := appmiddleware.LeadMetrics{}
	captureUC := usecase.NewCaptureLeadUseCase(b, producer, metrics)
	listUC := usecase.NewListLeadsUseCase(b, metrics)

	if mailSender != nil {
		go worker.NewDigestWorker(listUC, mailSender, cfg.DigestInterval).Start(ctx)
	}

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC, listUC)
	defer leadHandler.Close()
	pageHandler := handlers.NewPageHandler(captureUC, listUC)
	healthHandler := handlers.NewHealthHandler(b, rabbitConn)

	// 6. Router
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, leadHandler, pageHandler, healthHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🔥 Server SeguroFácil rodando na porta %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erro no servidor: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Erro ao encerrar servidor: %v", err)
	}
}

// prepareBackend loga o estado do backend e, no driver postgres, cria a tabela.
func prepareBackend(ctx context.Context, b backend.Backend) {
	switch v := b.(type) {
	case backend.NotConfigured:
		log.Printf("⚠️ Backend %s não configurado (faltando %v): formulário e painel vão exibir erro", v.Driver, v.Missing)
		return
	case backend.Configured:
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := v.Ping(pingCtx); err != nil {
			log.Printf("⚠️ Backend %s não respondeu: %v", v.Driver, err)
			return
		}
		log.Printf("✅ Backend %s conectado", v.Driver)

		if repo, ok := v.Repo.(*database.LeadRepository); ok {
			if err := database.EnsureSchema(pingCtx, repo.DB); err != nil {
				log.Printf("❌ Erro ao criar tabela leads_seguros: %v", err)
			}
		}
	}
}
