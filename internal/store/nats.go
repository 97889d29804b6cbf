package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSStore implements Store on a NATS JetStream key-value bucket, letting
// services consuming the navigation tree read it without touching the
// builder's filesystem.
type NATSStore struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// NewNATSStore connects to NATS and binds (or creates) the KV bucket.
func NewNATSStore(url, bucket string) (*NATSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("nats store: bucket name is required")
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, err := js.KeyValue(ctx, bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:      bucket,
			Description: "Navigation metadata for navbuilder",
			History:     1, // Keep only latest value
		})
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to create KV bucket: %w", err)
		}
		slog.Info("Created KV bucket for navigation metadata", "bucket", bucket)
	}

	return &NATSStore{conn: conn, kv: kv}, nil
}

func (s *NATSStore) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.kv.Put(ctx, key, value); err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}

func (s *NATSStore) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv get %s: %w", key, err)
	}
	return entry.Value(), nil
}

func (s *NATSStore) Close() error {
	s.conn.Close()
	return nil
}
