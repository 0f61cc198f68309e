// Package bolt provides a BoltDB-backed kv.Store.
package bolt

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/kv"
)

const bucketName = "kv"

var _ kv.Store = (*Store)(nil)

// Store keeps every key in a single bucket of a bolt file.
type Store struct {
	db   *bbolt.DB
	path string
}

// Open opens (or creates) the bolt file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewConfigError("store", "storage path is required", nil)
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, constants.SecureFilePermissions, &bbolt.Options{Timeout: constants.StoreOpenTimeout})
	if err != nil {
		return nil, errors.WrapIO("open", cleanPath, err)
	}

	store := &Store{db: db, path: cleanPath}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying bolt file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the file the store was opened from.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensureBucket() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return fmt.Errorf("create %s bucket: %w", bucketName, err)
		}
		return nil
	})
}

func (s *Store) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.NewConfigError("store", "storage is not configured", nil)
	}
	return nil
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.check(ctx); err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		if v := b.Get([]byte(key)); v != nil {
			// bolt memory is only valid inside the transaction
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, errors.WrapIO("read", key, err)
	}
	return value, found, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		return b.Put([]byte(key), []byte(value))
	})
	return errors.WrapIO("write", key, err)
}

// Delete implements kv.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		return b.Delete([]byte(key))
	})
	return errors.WrapIO("delete", key, err)
}

// Keys implements kv.Store. Bolt keeps keys sorted, so a cursor seek on the
// prefix yields them in order.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	keys := make([]string, 0)
	p := []byte(prefix)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		c := b.Cursor()
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO("scan", prefix, err)
	}
	return keys, nil
}
