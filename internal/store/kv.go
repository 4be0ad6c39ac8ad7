package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KV is a string-keyed blob store. Implementations must make Put atomic
// from the caller's point of view.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// FileKV stores each key as <Dir>/<key>.json.
type FileKV struct {
	Dir string
}

func validKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("kv: empty key")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("kv: invalid key %q", key)
	}
	return nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (f *FileKV) Put(ctx context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return atomicWriteFile(f.Dir, key+".json.*.tmp", f.path(key), value, 0o644)
}

func (f *FileKV) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
