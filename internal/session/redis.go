package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"voice-listing-go/internal/types"
)

// RedisClient is the slice of go-redis the store needs.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Client is a live Redis connection: the store's slice of go-redis plus Close.
type Client interface {
	RedisClient
	io.Closer
}

var _ Client = (*redClient)(nil)

type redClient struct {
	cli *redis.Client
}

// Dial connects to Redis and checks the connection. target is either a
// host:port address or a redis:// / rediss:// URL; password and db fill in
// what a URL leaves out.
func Dial(ctx context.Context, target, password string, db int) (Client, error) {
	opts, err := redisOptions(target, password, db)
	if err != nil {
		return nil, err
	}
	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return &redClient{cli: c}, nil
}

func redisOptions(target, password string, db int) (*redis.Options, error) {
	if !strings.Contains(target, "://") {
		return &redis.Options{Addr: target, Password: password, DB: db}, nil
	}
	opts, err := redis.ParseURL(target)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	if opts.Password == "" {
		opts.Password = password
	}
	if opts.DB == 0 {
		opts.DB = db
	}
	return opts, nil
}

func (c *redClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.cli.Set(ctx, key, value, expiration).Err()
}

func (c *redClient) Get(ctx context.Context, key string) (string, error) {
	return c.cli.Get(ctx, key).Result()
}

func (c *redClient) Del(ctx context.Context, keys ...string) error {
	return c.cli.Del(ctx, keys...).Err()
}

func (c *redClient) Close() error { return c.cli.Close() }

var _ Store = (*RedisStore)(nil)

// RedisStore saves each state as JSON under "listing_session:<id>" with a sliding TTL.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
}

func NewRedisStore(client RedisClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return "listing_session:" + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (types.ConversationState, error) {
	data, err := s.client.Get(ctx, s.key(id))
	if errors.Is(err, redis.Nil) {
		return types.ConversationState{}, ErrNotFound
	}
	if err != nil {
		return types.ConversationState{}, fmt.Errorf("get session: %w", err)
	}
	var st types.ConversationState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return types.ConversationState{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return st, nil
}

func (s *RedisStore) Put(ctx context.Context, id string, st types.ConversationState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
