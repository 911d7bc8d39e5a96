package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coreapp/item-service/internal/item"
)

var (
	ErrNotFound  = errors.New("item not found")
	ErrDuplicate = errors.New("item name already exists")
)

// MemoryRepo is a simple in-memory repository keyed by name, used for unit
// tests and for running the service without a database file.
type MemoryRepo struct {
	mu     sync.RWMutex
	byName map[string]*item.Item
	nextID uint
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byName: make(map[string]*item.Item), nextID: 1}
}

func (m *MemoryRepo) Create(ctx context.Context, it *item.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[it.Name]; ok {
		return ErrDuplicate
	}
	it.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	cp := *it
	m.byName[it.Name] = &cp
	return nil
}

func (m *MemoryRepo) GetByName(ctx context.Context, name string) (*item.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if it, ok := m.byName[name]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context) ([]*item.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*item.Item, 0, len(m.byName))
	for _, it := range m.byName {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}
