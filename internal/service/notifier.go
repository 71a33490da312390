package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fund-reporting-backend/internal/database/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/notifier_mock.go -package=mocks

// Notifier publishes workflow events for downstream consumers (mailers,
// reporting pipelines). Publishing happens after the transaction commits, so
// a broker outage can never roll back a transition.
type Notifier interface {
	ProjectSubmitted(ctx context.Context, project *models.Project, user string) error
	Close() error
}

const (
	eventsExchange      = "events"
	routingKeySubmitted = "project.submitted"
)

// submittedEvent is the wire payload of a project.submitted event
type submittedEvent struct {
	ProjectID   string    `json:"project_id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Version     int       `json:"version"`
	SubmittedBy string    `json:"submitted_by"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// AMQPNotifier publishes events to a RabbitMQ topic exchange
type AMQPNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPNotifier connects to RabbitMQ and declares the durable events
// exchange
func NewAMQPNotifier(url string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		eventsExchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AMQPNotifier{conn: conn, channel: channel}, nil
}

// ProjectSubmitted publishes a persistent project.submitted event
func (n *AMQPNotifier) ProjectSubmitted(ctx context.Context, project *models.Project, user string) error {
	event := submittedEvent{
		ProjectID:   project.ID.String(),
		Code:        project.Code,
		Title:       project.Title,
		Version:     project.Version,
		SubmittedBy: user,
		SubmittedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return n.channel.PublishWithContext(ctx,
		eventsExchange,
		routingKeySubmitted,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Close shuts down the channel and connection
func (n *AMQPNotifier) Close() error {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// NoopNotifier discards events. Used when notifications are disabled and in
// tests.
type NoopNotifier struct{}

// ProjectSubmitted discards the event
func (NoopNotifier) ProjectSubmitted(context.Context, *models.Project, string) error { return nil }

// Close is a no-op
func (NoopNotifier) Close() error { return nil }
