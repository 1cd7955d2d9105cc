package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName  = "notifyx-exchange"
	MainQueueName = "notifyx-deliveries"
	DLQName       = "notifyx-dlq"
	RoutingKey    = "deliver"
)

// DeliveryJob is the queue message for a single delivery attempt.
// It deliberately carries only the notification identifier plus the attempt
// bookkeeping; the worker re-reads the record from the store on every attempt.
type DeliveryJob struct {
	ID        uuid.UUID `json:"notification_id"`
	Attempt   int       `json:"attempt"`
	NotBefore time.Time `json:"not_before"` // earliest execution time, used for backoff
}

// DeliveryQueue carries delivery jobs between the API layer and the workers.
// The broker is at-least-once; consumers must tolerate duplicates.
type DeliveryQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewDeliveryQueue declares the exchange, the durable main queue and its DLQ,
// and wires a publisher and a consumer to them.
func NewDeliveryQueue(ch *rabbitmq.Channel) (*DeliveryQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DeliveryQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues a delivery job.
func (q *DeliveryQueue) Publish(job DeliveryJob, strategy retry.Strategy) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes delivery jobs into out until the context is cancelled.
func (q *DeliveryQueue) Consume(ctx context.Context, out chan<- DeliveryJob, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				var job DeliveryJob
				if err := json.Unmarshal(m, &job); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal job")
					continue
				}

				out <- job
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
