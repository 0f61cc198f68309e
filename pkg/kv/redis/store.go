// Package redis provides a Redis-backed kv.Store. Keys can be namespaced so
// several selectors share one database.
package redis

import (
	"context"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
)

const scanBatch = 100

var _ kv.Store = (*Store)(nil)

// Config holds the connection settings.
type Config struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
}

// Store implements kv.Store on a redis client.
type Store struct {
	client    *redis.Client
	namespace string
	owned     bool
}

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.NewConfigError("store", "redis address is required", nil)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapIO("ping", cfg.Addr, err)
	}
	s := New(client, cfg.Namespace)
	s.owned = true
	return s, nil
}

// New wraps an existing client. The caller keeps ownership of the client.
func New(client *redis.Client, namespace string) *Store {
	if namespace != "" && !strings.HasSuffix(namespace, ":") {
		namespace += ":"
	}
	return &Store{client: client, namespace: namespace}
}

// Close closes the client if the store opened it.
func (s *Store) Close() error {
	if s == nil || s.client == nil || !s.owned {
		return nil
	}
	return s.client.Close()
}

func (s *Store) key(k string) string {
	return s.namespace + k
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.WrapIO("read", key, err)
	}
	return value, true, nil
}

// Set implements kv.Store. Keys never expire.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.WrapIO("write", key, s.client.Set(ctx, s.key(key), value, 0).Err())
}

// Delete implements kv.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.WrapIO("delete", key, s.client.Del(ctx, s.key(key)).Err())
}

// Keys implements kv.Store using SCAN so large databases are not blocked.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pattern := escapeGlob(s.key(prefix)) + "*"
	seen := make(map[string]struct{})
	keys := make([]string, 0)

	iter := s.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		k := strings.TrimPrefix(iter.Val(), s.namespace)
		// SCAN may return a key more than once
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapIO("scan", prefix, err)
	}

	slices.Sort(keys)
	return keys, nil
}

// escapeGlob escapes the characters SCAN MATCH treats specially.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
