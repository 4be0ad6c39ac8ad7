package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"savanna-cli/internal/model"

	"go.uber.org/zap"
)

// Backend selects where keyed state is persisted.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(BackendFile):
		return BackendFile, nil
	case string(BackendSQLite):
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown backend: %s (want file|sqlite)", s)
	}
}

// Store is a workspace directory holding the cart, the event log and UI state.
type Store struct {
	Dir     string
	Backend Backend
	Log     *zap.Logger
}

func WorkspaceDir(name string) (string, error) {
	name, err := NormalizeWorkspaceName(name)
	if err != nil {
		return "", err
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "workspaces", name), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// KV returns the key-value backend for this store.
func (s Store) KV() KV {
	switch s.Backend {
	case BackendSQLite:
		return &SQLiteKV{Path: s.sqlitePath(), ensure: s.Ensure}
	default:
		return &FileKV{Dir: s.Dir}
	}
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, "savanna.sqlite")
}

// CartPath is the on-disk file that changes when the cart is written.
func (s Store) CartPath() string {
	if s.Backend == BackendSQLite {
		return s.sqlitePath()
	}
	return (&FileKV{Dir: s.Dir}).path(model.CartKey)
}

// Carts returns the cart store backed by this workspace.
func (s Store) Carts() *KVCartStore {
	return &KVCartStore{KV: s.KV(), Key: model.CartKey, Log: s.logger()}
}
