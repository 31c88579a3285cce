package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a store backend.
type Options struct {
	Backend       string
	BoltPath      string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTimeout  time.Duration
}

// Open returns the backend named by opts.Backend; an empty name means bolt.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendBolt:
		if opts.BoltPath == "" {
			return nil, fmt.Errorf("bolt store requires a path")
		}
		return OpenBolt(opts.BoltPath)
	case BackendSQLite:
		if opts.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite store requires a path")
		}
		return OpenSQLite(opts.SQLitePath)
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("redis store requires an address")
		}
		return DialRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisTimeout)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s (use bolt, sqlite, redis or memory)", opts.Backend)
	}
}
