package store

import (
	"context"
	"sync"

	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/example/shopfront/internal/domain/user"
)

// MemoryStore keeps users and products in process memory. It backs tests and
// the no-database dev mode; all operations are safe for concurrent use and
// cart deltas are applied under the same lock that reads the quantity, so
// the atomicity contract of user.Store holds.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*user.User
	products []catalog.Product // insertion order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*user.User),
	}
}

// User operations

func (m *MemoryStore) CreateUser(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[u.Identity]; exists {
		return user.ErrDuplicateIdentity
	}

	stored := *u
	stored.Cart = u.Cart.Clone()
	m.users[u.Identity] = &stored
	return nil
}

func (m *MemoryStore) GetUser(ctx context.Context, identity string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.users[identity]
	if !ok {
		return nil, user.ErrUnknownIdentity
	}

	copied := *stored
	copied.Cart = stored.Cart.Clone()
	return &copied, nil
}

func (m *MemoryStore) GetCart(ctx context.Context, identity string) (user.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.users[identity]
	if !ok {
		return nil, user.ErrUnknownIdentity
	}
	return stored.Cart.Clone(), nil
}

func (m *MemoryStore) AdjustCartSlot(ctx context.Context, identity string, slot, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[identity]
	if !ok {
		return user.ErrUnknownIdentity
	}

	if stored.Cart[slot]+delta < 0 {
		return user.ErrEmptySlot
	}
	stored.Cart[slot] += delta
	return nil
}

// Product operations

func (m *MemoryStore) Insert(ctx context.Context, p *catalog.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, *p)
	return nil
}

func (m *MemoryStore) DeleteByID(ctx context.Context, id int64) (*catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			removed := p
			m.products = append(m.products[:i], m.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (m *MemoryStore) All(ctx context.Context) ([]catalog.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]catalog.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryStore) LastID(ctx context.Context) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.products) == 0 {
		return 0, false, nil
	}
	return m.products[len(m.products)-1].ID, true, nil
}

func (m *MemoryStore) MaxID(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var max int64
	for _, p := range m.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max, nil
}
