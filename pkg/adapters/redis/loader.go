package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ic1618/chat-bot/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the key holding the catalog document.
const DefaultKey = "chatbot:catalog"

// Loader implements ports.CatalogLoader on a JSON document stored in Redis.
type Loader struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

// Option configures the Loader.
type Option func(*Loader)

// WithKey sets the key holding the catalog.
func WithKey(key string) Option {
	return func(l *Loader) {
		if key != "" {
			l.key = key
		}
	}
}

// WithTTL sets the expiration applied by Publish. Zero keeps the catalog forever.
func WithTTL(ttl time.Duration) Option {
	return func(l *Loader) {
		l.ttl = ttl
	}
}

// New creates a new Redis loader with options.
func New(address, password string, db int, opts ...Option) *Loader {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis loader from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key returns the key the loader reads.
func (l *Loader) Key() string {
	return l.key
}

// Load fetches and decodes the catalog document.
func (l *Loader) Load(ctx context.Context) ([]map[string]any, error) {
	data, err := l.client.Get(ctx, l.key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: key '%s' not set", domain.ErrCatalogNotFound, l.key)
		}
		return nil, fmt.Errorf("failed to read catalog from redis: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to load JSON data from key '%s': %w", l.key, err)
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}

// Publish stores records as the catalog document, replacing any previous one.
func (l *Loader) Publish(ctx context.Context, records []map[string]any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := l.client.Set(ctx, l.key, data, l.ttl).Err(); err != nil {
		return fmt.Errorf("failed to publish catalog: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (l *Loader) Close() error {
	return l.client.Close()
}
