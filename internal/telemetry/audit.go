// Package telemetry publishes marketplace audit records to the event bus.
package telemetry

import (
	"context"
	"log"
	"time"
)

// Publisher delivers a serialized event under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// AuditEmitter fans audit records out through a Publisher. A nil
// emitter or nil publisher drops records, so handlers emit
// unconditionally.
type AuditEmitter struct {
	publisher   Publisher
	routingKey  string
	service     string
	environment string
}

// AuditEnvelope is the wire form of one audit record.
type AuditEnvelope struct {
	SchemaVersion int         `json:"schema_version"`
	EventType     string      `json:"event_type"`
	OccurredAt    string      `json:"occurred_at"`
	Service       string      `json:"service"`
	Environment   string      `json:"environment"`
	RequestID     string      `json:"request_id"`
	ActorID       *string     `json:"actor_id,omitempty"`
	Detail        AuditDetail `json:"detail"`
}

// AuditDetail is the human-readable part of the record.
type AuditDetail struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

const auditEventType = "marketplace.audit"

// NewAuditEmitter builds an emitter bound to one routing key.
func NewAuditEmitter(publisher Publisher, routingKey, service, environment string) *AuditEmitter {
	return &AuditEmitter{
		publisher:   publisher,
		routingKey:  routingKey,
		service:     service,
		environment: environment,
	}
}

// Emit publishes one audit record. Publish failures are logged and
// never surfaced to the request that triggered the record.
func (e *AuditEmitter) Emit(ctx context.Context, severity, message, requestID string, actorID *string) {
	if e == nil || e.publisher == nil {
		return
	}

	envelope := AuditEnvelope{
		SchemaVersion: 1,
		EventType:     auditEventType,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339Nano),
		Service:       e.service,
		Environment:   e.environment,
		RequestID:     requestID,
		ActorID:       actorID,
		Detail: AuditDetail{
			Severity: severity,
			Message:  message,
		},
	}

	if err := e.publisher.Publish(ctx, e.routingKey, envelope); err != nil {
		log.Printf("audit publish failed: %v", err)
	}
}
