package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	*redis.Client
}

func NewClient(redisURL string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{client}, nil
}

// Ping reports whether the server answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.Client.Close()
}

// RevokedSessionKey is the denylist key for a logged-out session token.
func RevokedSessionKey(jti string) string {
	return fmt.Sprintf("session:revoked:%s", jti)
}

// LoginRateKey buckets login attempts per client address.
func LoginRateKey(ip string) string {
	return fmt.Sprintf("ratelimit:login:%s", ip)
}
