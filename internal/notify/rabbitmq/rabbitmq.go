// Package rabbitmq publishes directory change events to a RabbitMQ topic exchange.
// The routing key is the event type, e.g. "venue.created".
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fyyur/internal/notify"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	url      string
	exchange string
	dial     func(url string) (connection, error)

	mu   sync.Mutex
	conn connection
	ch   channel
}

type connection interface {
	channel() (channel, error)
	IsClosed() bool
	Close() error
}

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type amqpConnection struct {
	*amqp.Connection
}

func (c amqpConnection) channel() (channel, error) {
	ch, err := c.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func dialAMQP(url string) (connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	return amqpConnection{conn}, nil
}

// New dials the broker and declares the durable exchange.
func New(url, exchange string) (*Publisher, error) {
	const op = "notify.rabbitmq.New"

	p := &Publisher{url: url, exchange: exchange, dial: dialAMQP}

	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// connect and openChannel must be called with mu held or before the
// publisher is shared.
func (p *Publisher) connect() error {
	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}

	p.conn = conn

	if err = p.openChannel(); err != nil {
		_ = conn.Close()
		p.conn = nil
		return err
	}

	return nil
}

func (p *Publisher) openChannel() error {
	ch, err := p.conn.channel()
	if err != nil {
		return fmt.Errorf("channel open failed: %w", err)
	}

	err = ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("exchange declare failed: %w", err)
	}

	p.ch = ch

	return nil
}

// Publish sends the event, redialing when the connection is gone and
// reopening the channel when only the channel was closed by the broker.
func (p *Publisher) Publish(ctx context.Context, event notify.Event) error {
	const op = "notify.rabbitmq.Publish"

	msg, err := message(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.conn == nil || p.conn.IsClosed():
		if err = p.connect(); err != nil {
			return fmt.Errorf("%s: reconnect: %w", op, err)
		}
	case p.ch == nil || p.ch.IsClosed():
		if err = p.openChannel(); err != nil {
			return fmt.Errorf("%s: reopen channel: %w", op, err)
		}
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchange,         // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("%s: publish failed: %w", op, err)
	}

	return nil
}

func message(event notify.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event failed: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}
