package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSPublisher forwards build lifecycle events from a Bus onto a JetStream
// subject so external services can react to navigation rebuilds.
type NATSPublisher struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
}

// NewNATSPublisher connects to NATS and prepares a JetStream publisher.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	if subject == "" {
		return nil, fmt.Errorf("nats publisher: subject is required")
	}

	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &NATSPublisher{conn: conn, js: js, subject: subject}, nil
}

// Attach subscribes the publisher to the build lifecycle events on bus.
// Publish failures are logged, not propagated; event fan-out must never
// fail a build.
func (p *NATSPublisher) Attach(bus *Bus) {
	forward := func(e Event) error {
		if err := p.publish(e); err != nil {
			slog.Warn("Failed to publish build event to NATS",
				slog.String("event", e.Name()), "error", err)
		}
		return nil
	}
	bus.Subscribe(EventBuildStarted, forward)
	bus.Subscribe(EventBuildCompleted, forward)
	bus.Subscribe(EventBuildFailed, forward)
}

func (p *NATSPublisher) publish(e Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := p.js.Publish(ctx, p.subject+"."+e.Name(), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close closes the underlying NATS connection.
func (p *NATSPublisher) Close() { p.conn.Close() }
