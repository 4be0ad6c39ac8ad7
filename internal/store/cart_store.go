package store

import (
	"context"
	"encoding/json"

	"savanna-cli/internal/model"

	"go.uber.org/zap"
)

// CartStore persists the cart under a fixed key.
//
// Load never fails: a missing or unreadable entry is an empty cart.
type CartStore interface {
	Load() *model.Cart
	Save(c *model.Cart) error
	Clear() error
}

type KVCartStore struct {
	KV  KV
	Key string
	Log *zap.Logger
}

func (s *KVCartStore) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *KVCartStore) key() string {
	if s.Key == "" {
		return model.CartKey
	}
	return s.Key
}

func (s *KVCartStore) Load() *model.Cart {
	b, ok, err := s.KV.Get(context.Background(), s.key())
	if err != nil {
		s.log().Warn("cart read failed; using empty cart", zap.String("key", s.key()), zap.Error(err))
		return model.NewCart()
	}
	if !ok || len(b) == 0 {
		return model.NewCart()
	}
	var c model.Cart
	if err := json.Unmarshal(b, &c); err != nil {
		s.log().Warn("cart content malformed; using empty cart", zap.String("key", s.key()), zap.Error(err))
		return model.NewCart()
	}
	c.Normalize()
	return &c
}

func (s *KVCartStore) Save(c *model.Cart) error {
	if c == nil {
		c = model.NewCart()
	}
	c.Normalize()
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.KV.Put(context.Background(), s.key(), b)
}

func (s *KVCartStore) Clear() error {
	return s.KV.Delete(context.Background(), s.key())
}

// MemoryCartStore keeps the cart in process memory. It serializes on every
// save so callers never share slices with the stored copy.
type MemoryCartStore struct {
	raw []byte
}

func (m *MemoryCartStore) Load() *model.Cart {
	if len(m.raw) == 0 {
		return model.NewCart()
	}
	var c model.Cart
	if err := json.Unmarshal(m.raw, &c); err != nil {
		return model.NewCart()
	}
	c.Normalize()
	return &c
}

func (m *MemoryCartStore) Save(c *model.Cart) error {
	if c == nil {
		c = model.NewCart()
	}
	c.Normalize()
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	m.raw = b
	return nil
}

func (m *MemoryCartStore) Clear() error {
	m.raw = nil
	return nil
}

// Raw exposes the serialized form (tests and diagnostics).
func (m *MemoryCartStore) Raw() []byte { return m.raw }

// SetRaw seeds the serialized form, including malformed content.
func (m *MemoryCartStore) SetRaw(b []byte) { m.raw = b }
