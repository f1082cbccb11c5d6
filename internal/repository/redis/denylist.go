package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ecolithswap-backend/internal/repository"
)

const denylistPrefix = "denylist:"

// TokenDenylist stores revoked refresh tokens until their natural expiry.
type TokenDenylist struct {
	rdb *goredis.Client
}

func NewTokenDenylist(addr, password string, db int) (*TokenDenylist, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &TokenDenylist{rdb: rdb}, nil
}

var _ repository.TokenDenylist = (*TokenDenylist)(nil)

func (d *TokenDenylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	return d.rdb.Set(ctx, denylistPrefix+token, 1, ttl).Err()
}

func (d *TokenDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	err := d.rdb.Get(ctx, denylistPrefix+token).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *TokenDenylist) Close() error { return d.rdb.Close() }
