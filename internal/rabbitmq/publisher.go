// Package rabbitmq carries marketplace events to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"jobmarket-service/internal/telemetry"
)

// Publisher publishes marketplace events.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// NewPublisher connects to RabbitMQ and declares the exchange. When
// the URL is empty or the broker is unreachable the service still
// starts; events are then written to the process log instead.
func NewPublisher(amqpURL, exchange string) Publisher {
	if amqpURL == "" {
		log.Printf("rabbitmq disabled, logging events instead: empty amqp url")
		return logPublisher{}
	}

	p, err := dial(amqpURL, exchange)
	if err != nil {
		log.Printf("rabbitmq disabled, logging events instead: %v", err)
		return logPublisher{}
	}

	log.Printf("rabbitmq connected exchange=%s", exchange)
	return p
}

func dial(amqpURL, exchange string) (*amqpPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &amqpPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

type amqpPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func (p *amqpPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Printf("rabbitmq publish failed: %v", err)
	}
	return err
}

func (p *amqpPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// logPublisher stands in for the broker when AMQP is unavailable.
type logPublisher struct{}

func (logPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	switch env := event.(type) {
	case telemetry.AuditEnvelope:
		log.Printf("event (no broker) routing_key=%s type=%s severity=%s request_id=%s message=%q",
			routingKey, env.EventType, env.Detail.Severity, env.RequestID, env.Detail.Message)
	case *telemetry.AuditEnvelope:
		log.Printf("event (no broker) routing_key=%s type=%s severity=%s request_id=%s message=%q",
			routingKey, env.EventType, env.Detail.Severity, env.RequestID, env.Detail.Message)
	default:
		log.Printf("event (no broker) routing_key=%s", routingKey)
	}
	return nil
}

func (logPublisher) Close() error {
	return nil
}

// PublisherMode reports which backend a Publisher uses, for the
// startup log.
func PublisherMode(p Publisher) string {
	switch p.(type) {
	case *amqpPublisher:
		return "amqp"
	case logPublisher:
		return "log"
	default:
		return "unknown"
	}
}
