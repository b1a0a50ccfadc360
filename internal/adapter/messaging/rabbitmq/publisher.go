// Package rabbitmq publishes domain events to a durable topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	dialTimeout     = 10 * time.Second
	DefaultExchange = "account_events"
)

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher over one AMQP connection.
// A failed publish reopens the channel once and retries.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	open     func() (channel, error)
	ch       channel
	exchange string
	log      zerolog.Logger
	now      func() time.Time
}

// NewPublisher dials rawURL and declares the exchange.
func NewPublisher(rawURL, exchange string, log zerolog.Logger) (*Publisher, error) {
	clean, err := sanitizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(clean, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	open := func() (channel, error) { return conn.Channel() }
	p, err := newPublisher(open, exchange, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(open func() (channel, error), exchange string, log zerolog.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	p := &Publisher{open: open, exchange: exchange, log: log, now: time.Now}
	if err := p.reopen(); err != nil {
		return nil, err
	}
	p.log.Info().Str("exchange", exchange).Msg("rabbitmq publisher ready")
	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", routingKey, err)
	}
	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    p.now(),
		Type:         routingKey,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}

	p.log.Warn().Err(err).Str("routing_key", routingKey).Msg("publish failed, reopening channel")
	if reErr := p.reopen(); reErr != nil {
		return errors.Join(err, reErr)
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

// reopen replaces the channel and redeclares the exchange. Callers hold mu
// or own p exclusively.
func (p *Publisher) reopen() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	p.ch = ch
	return nil
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// sanitizeURL strips quotes and stray prefixes that env files tend to add.
func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	if idx := strings.Index(strings.ToLower(clean), "amqp"); idx > 0 {
		clean = clean[idx:]
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("parse amqp url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("amqp url must start with amqp:// or amqps://")
	}
	return clean, nil
}
