package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const DefaultEventsQueue = "claims.events"

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var _ channel = (*amqp.Channel)(nil)

// RabbitMQPublisher sends claim events to a durable queue on the default exchange.
type RabbitMQPublisher struct {
	conn  *amqp.Connection
	ch    channel
	queue string
	log   *zap.Logger
	mu    sync.Mutex
}

var _ interfaces.IEventPublisher = (*RabbitMQPublisher)(nil)

// DialRabbitMQ connects to url and declares queue.
func DialRabbitMQ(url, queue string, log *zap.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := newRabbitMQPublisher(ch, queue, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newRabbitMQPublisher(ch channel, queue string, log *zap.Logger) (*RabbitMQPublisher, error) {
	if queue == "" {
		queue = DefaultEventsQueue
	}
	if log == nil {
		log = zap.NewNop()
	}

	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &RabbitMQPublisher{ch: ch, queue: queue, log: log}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, event entities.ClaimEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Error("[claims][events] publish failed",
			zap.String("queue", p.queue),
			zap.String("type", string(event.Type)),
			zap.String("claim_id", event.ClaimID),
			zap.Error(err),
		)
		return err
	}

	p.log.Debug("[claims][events] published",
		zap.String("type", string(event.Type)),
		zap.String("claim_id", event.ClaimID),
		zap.Int64("version", event.Version),
	)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops events. Used when RABBITMQ_URL is not set.
type NoopPublisher struct {
	Log *zap.Logger
}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (n NoopPublisher) Publish(_ context.Context, event entities.ClaimEvent) error {
	if n.Log != nil {
		n.Log.Debug("[claims][events] dropped",
			zap.String("type", string(event.Type)),
			zap.String("claim_id", event.ClaimID),
		)
	}
	return nil
}
