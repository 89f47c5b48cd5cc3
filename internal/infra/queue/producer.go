package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

type LeadCapturedEvent struct {
	EventID     string    `json:"event_id"`
	LeadID      string    `json:"lead_id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Telefone    string    `json:"telefone"`
	TipoVeiculo string    `json:"tipo_veiculo"`
	Modelo      *string   `json:"modelo"`
	Ano         *int      `json:"ano"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewLeadCapturedEvent(lead *entity.Lead) LeadCapturedEvent {
	return LeadCapturedEvent{
		EventID:     uuid.New().String(),
		LeadID:      lead.ID,
		Nome:        lead.Nome,
		Email:       lead.Email,
		Telefone:    lead.Telefone,
		TipoVeiculo: string(lead.TipoVeiculo),
		Modelo:      lead.Modelo,
		Ano:         lead.Ano,
		CreatedAt:   lead.CreatedAt,
	}
}

// Publisher é o pedaço do *amqp.Channel que o producer usa.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadCaptured(ctx context.Context, event LeadCapturedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Timestamp:    time.Now(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}

// NoopProducer é usado quando RABBITMQ_URL não está configurado.
type NoopProducer struct{}

func (NoopProducer) PublishLeadCaptured(context.Context, LeadCapturedEvent) error {
	return nil
}
