package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EngagementHandler processes one decoded event.
type EngagementHandler interface {
	HandleEngagement(ctx context.Context, event EngagementEvent) error
}

type EngagementHandlerFunc func(ctx context.Context, event EngagementEvent) error

func (f EngagementHandlerFunc) HandleEngagement(ctx context.Context, event EngagementEvent) error {
	return f(ctx, event)
}

// Consumer is satisfied by *amqp.Channel.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel Consumer
	Handler EngagementHandler
}

func NewWorker(ch Consumer, handler EngagementHandler) *Worker {
	return &Worker{
		Channel: ch,
		Handler: handler,
	}
}

// Start consumes queueName until ctx is done or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
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
				log.Println("⚠️ [WORKER] canal de entregas fechado")
				return nil
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var event EngagementEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Printf("❌ [WORKER] JSON inválido: %s", err)
		// Malformed payloads go straight to the DLQ.
		d.Nack(false, false)
		return
	}

	if err := w.Handler.HandleEngagement(ctx, event); err != nil {
		log.Printf("❌ [WORKER] erro ao processar evento %s do log %s: %s", event.Type, event.LogID, err)
		d.Nack(false, false)
		return
	}

	d.Ack(false)
}
