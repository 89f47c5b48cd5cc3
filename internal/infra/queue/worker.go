package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier é qualquer canal que avisa o time comercial (e-mail, CRM...).
type LeadNotifier interface {
	Name() string
	NotifyLeadCaptured(ctx context.Context, event LeadCapturedEvent) error
}

// Acknowledger é o subconjunto de amqp.Delivery que o worker usa.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type Worker struct {
	Channel   *amqp.Channel
	Notifiers []LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifiers ...LeadNotifier) *Worker {
	return &Worker{
		Channel:   ch,
		Notifiers: notifiers,
	}
}

func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ [WORKER] encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("canal do RabbitMQ fechado")
			}
			w.HandleDelivery(ctx, d.Body, &d)
		}
	}
}

// HandleDelivery decodifica a mensagem e chama todos os notifiers. Mensagem
// malformada ou falha de qualquer notifier vai para a DLQ, sem requeue.
func (w *Worker) HandleDelivery(ctx context.Context, body []byte, ack Acknowledger) {
	var event LeadCapturedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Printf("❌ [WORKER] JSON Inválido: %s", err)
		ack.Nack(false, false)
		return
	}

	log.Printf("📥 [WORKER] Lead %s (%s) recebido", event.LeadID, event.TipoVeiculo)

	if err := w.process(ctx, event); err != nil {
		log.Printf("❌ [WORKER] %s", err)
		ack.Nack(false, false)
		return
	}

	ack.Ack(false)
}

func (w *Worker) process(ctx context.Context, event LeadCapturedEvent) error {
	var errs []error
	for _, n := range w.Notifiers {
		if err := n.NotifyLeadCaptured(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
			continue
		}
		log.Printf("✅ [WORKER] %s notificado para lead %s", n.Name(), event.LeadID)
	}
	return errors.Join(errs...)
}
