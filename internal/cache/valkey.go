// Package cache is a short-TTL Valkey cache for serialized API responses,
// keyed by operation and text hash. It sits entirely in the serving layer;
// the analysis core never sees it. A nil *ResultCache is a valid no-op.
package cache

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

const keyPrefix = "mooddecode:result"

type ResultCache struct {
	client valkey.Client
	ttl    time.Duration
	mu     sync.Mutex
}

// NewFromEnv connects to Valkey when VALKEY_INIT_ADDRESS is set and returns
// nil otherwise, so callers can treat caching as strictly optional.
func NewFromEnv() (*ResultCache, error) {
	addr := os.Getenv("VALKEY_INIT_ADDRESS")
	if addr == "" {
		return nil, nil
	}

	client, err := newClient()
	if err != nil {
		return nil, fmt.Errorf("[ResultCache] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ResultCache] failed to ping Valkey: %w", err)
	}

	ttl := time.Minute * 5
	if v := os.Getenv("RESULT_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		}
	}

	slog.Info("[ResultCache] Successfully connected to valkey",
		slog.Duration("ttl", ttl))

	return New(client, ttl), nil
}

// New wraps an existing Valkey client. NewFromEnv is the production path;
// this constructor exists so tests can inject their own client.
func New(client valkey.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

func newClient() (valkey.Client, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	return valkey.NewClient(opts)
}

// Get returns a previously cached response body for op+text.
func (c *ResultCache) Get(ctx context.Context, op, text string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	res := c.doWithRetry(ctx, c.currentClient().B().Get().Key(cacheKey(op, text)).Build(), 3)
	if res.Error() != nil {
		return nil, false
	}

	body, err := res.AsBytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set stores a response body for op+text with the configured TTL. Failures
// are logged and swallowed; the response was already computed.
func (c *ResultCache) Set(ctx context.Context, op, text string, body []byte) {
	if c == nil {
		return
	}

	cmd := c.currentClient().B().Set().Key(cacheKey(op, text)).Value(string(body)).
		Ex(c.ttl).Build()
	if err := c.doWithRetry(ctx, cmd, 3).Error(); err != nil {
		slog.Warn("[ResultCache] Failed to store result",
			slog.String("op", op),
			slog.String("error", err.Error()))
	}
}

func (c *ResultCache) Close() {
	if c == nil {
		return
	}
	c.currentClient().Close()
}

// currentClient guards reads of the client field against a concurrent
// recreateClient swapping it out.
func (c *ResultCache) currentClient() valkey.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client
}

func (c *ResultCache) doWithRetry(ctx context.Context, cmd valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = c.currentClient().Do(ctx, cmd)

		err := result.Error()
		// An absent key is an answer, not a failure.
		if err == nil || valkey.IsValkeyNil(err) {
			return result
		}

		if isConnectionError(err) {
			c.recreateClient()
		}
		if i < retries-1 {
			time.Sleep(250 * time.Millisecond)
		}
	}

	return result
}

func (c *ResultCache) recreateClient() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[ResultCache] Recreate failed and was recovered from panic",
				slog.Any("panic", r))
		}
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	slog.Warn("[ResultCache] Attempting to recreate Valkey client...")
	c.client.Close()

	client, err := newClient()
	if err != nil {
		slog.Error("[ResultCache] Failed to recreate Valkey client",
			slog.String("error", err.Error()))
		return
	}
	c.client = client
}

func cacheKey(op, text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + ":" + op + ":" + hex.EncodeToString(sum[:])
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
