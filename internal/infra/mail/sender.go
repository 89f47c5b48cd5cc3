package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/entity"
	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		From:   from,
		To:     to,
		dialer: gomail.NewDialer(host, port, user, password),
	}
}

// WithDialer troca o dialer SMTP (usado nos testes).
func (s *EmailSender) WithDialer(d Dialer) *EmailSender {
	s.dialer = d
	return s
}

func (s *EmailSender) Name() string { return "email" }

// NotifyLeadCaptured avisa o time comercial que chegou um lead novo.
func (s *EmailSender) NotifyLeadCaptured(_ context.Context, event queue.LeadCapturedEvent) error {
	data := NewLeadEmailData{
		Nome:        event.Nome,
		Email:       event.Email,
		Telefone:    event.Telefone,
		TipoVeiculo: event.TipoVeiculo,
		CapturedAt:  event.CreatedAt.Local().Format("02/01/2006 15:04"),
	}
	if event.Modelo != nil {
		data.Modelo = *event.Modelo
	}
	if event.Ano != nil {
		data.Ano = strconv.Itoa(*event.Ano)
	}

	subject := fmt.Sprintf("Novo lead: %s (%s)", event.Nome, event.TipoVeiculo)
	return s.send("new_lead.html", subject, data)
}

func (s *EmailSender) SendDailyDigest(stats entity.Stats, date time.Time) error {
	data := DigestEmailData{
		Date:   date.Format("02/01/2006"),
		Total:  stats.Total,
		Hoje:   stats.Hoje,
		Carros: stats.Carros,
		Motos:  stats.Motos,
	}

	subject := fmt.Sprintf("Resumo de leads %s: %d novos", data.Date, stats.Hoje)
	return s.send("digest.html", subject, data)
}

func (s *EmailSender) send(tmpl, subject string, data interface{}) error {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
