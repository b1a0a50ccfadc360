package rabbitmq

import (
	"context"

	"github.com/rs/zerolog"
)

// LogPublisher is the fallback used when no broker is configured. It writes
// every event, OTP codes included, to the log; use it in development only.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.log.Info().Str("routing_key", routingKey).Interface("payload", payload).Msg("event")
	return nil
}

func (p *LogPublisher) Close() {}
