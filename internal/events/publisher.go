// Package events publishes domain events to RabbitMQ.
package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/logging"
	"github.com/rabbitmq/amqp091-go"
)

// publishTimeout bounds a single publish.
const publishTimeout = 5 * time.Second

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Publisher sends import events to a durable direct exchange, routed to a
// queue of the same name as the routing key.
type Publisher struct {
	conn         *amqp091.Connection
	ch           *amqp091.Channel
	pub          channel
	mu           sync.Mutex
	exchangeName string
	queueName    string
}

var _ core.EventPublisher = (*Publisher)(nil)

// NewPublisher dials url and declares the exchange, queue and binding.
func NewPublisher(url, exchangeName, queueName string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{
		conn:         conn,
		ch:           ch,
		pub:          ch,
		exchangeName: exchangeName,
		queueName:    queueName,
	}
	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return p, nil
}

func (p *Publisher) setup() error {
	err := p.ch.ExchangeDeclare(
		p.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.ch.QueueDeclare(
		p.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := p.ch.QueueBind(p.queueName, p.queueName, p.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishImportCompleted publishes e as a persistent JSON message.
func (p *Publisher) PublishImportCompleted(ctx context.Context, e core.ImportCompleted) error {
	body, err := NewImportCompletedMessage(e).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.pub.PublishWithContext(ctx,
		p.exchangeName, // exchange
		p.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Type:         TypeImportCompleted,
			Timestamp:    e.CompletedAt,
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	logging.FromContext(ctx).Info("published import event",
		"import_id", e.ImportID,
		"exchange", p.exchangeName,
		"queue", p.queueName)
	return nil
}

// Close closes the channel and connection.
func (p *Publisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
