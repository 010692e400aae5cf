// Package redis caches terminal tip statuses for the polling endpoint.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 24 * time.Hour

	tipStatusOperation = "tip_status"
)

// TipStatusCache implements ports.TipStatusCache on a Redis string per tip.
type TipStatusCache struct {
	client      *redis.Client
	serviceName string
	ttl         time.Duration
}

var _ ports.TipStatusCache = (*TipStatusCache)(nil)

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func NewTipStatusCache(client *redis.Client, serviceName string, ttl time.Duration) *TipStatusCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TipStatusCache{
		client:      client,
		serviceName: serviceName,
		ttl:         ttl,
	}
}

func (c *TipStatusCache) Get(ctx context.Context, tipID kernel.UUID) (ports.TipStatusView, bool, error) {
	raw, err := c.client.Get(ctx, c.GenerateKey(tipStatusOperation, tipID.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.TipStatusView{}, false, nil
	}
	if err != nil {
		return ports.TipStatusView{}, false, err
	}

	var view ports.TipStatusView
	if err = json.Unmarshal(raw, &view); err != nil {
		return ports.TipStatusView{}, false, fmt.Errorf("decode cached tip status: %w", err)
	}
	return view, true, nil
}

func (c *TipStatusCache) Set(ctx context.Context, view ports.TipStatusView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.GenerateKey(tipStatusOperation, view.TipID), data, c.ttl).Err()
}

// GenerateKey namespaces key as service:operation:key.
func (c *TipStatusCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", c.serviceName, operation, key)
}

// NopTipStatusCache always misses. It stands in when no Redis address is configured.
type NopTipStatusCache struct{}

func (NopTipStatusCache) Get(context.Context, kernel.UUID) (ports.TipStatusView, bool, error) {
	return ports.TipStatusView{}, false, nil
}

func (NopTipStatusCache) Set(context.Context, ports.TipStatusView) error { return nil }
