package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/example/shopfront/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := user.New("test@example.com", "First", "secret1")
	require.NoError(t, s.CreateUser(ctx, first))

	second := user.New("test@example.com", "Second", "secret2")
	err := s.CreateUser(ctx, second)
	assert.ErrorIs(t, err, user.ErrDuplicateIdentity)

	// The original record must be untouched
	stored, err := s.GetUser(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First", stored.Name)
	assert.Equal(t, "secret1", stored.Secret)
}

func TestMemoryStore_GetUser_Unknown(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetUser(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, user.ErrUnknownIdentity)
}

func TestMemoryStore_AdjustCartSlot(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(ctx, user.New("test@example.com", "Test", "pw")))

	require.NoError(t, s.AdjustCartSlot(ctx, "test@example.com", 7, +1))
	require.NoError(t, s.AdjustCartSlot(ctx, "test@example.com", 7, +1))

	cart, err := s.GetCart(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, cart[7])
	assert.Equal(t, 0, cart[8])
}

func TestMemoryStore_AdjustCartSlot_EmptySlot(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(ctx, user.New("test@example.com", "Test", "pw")))

	err := s.AdjustCartSlot(ctx, "test@example.com", 3, -1)
	assert.ErrorIs(t, err, user.ErrEmptySlot)

	cart, err := s.GetCart(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, cart[3])
}

func TestMemoryStore_AdjustCartSlot_UnknownIdentity(t *testing.T) {
	s := NewMemoryStore()

	err := s.AdjustCartSlot(context.Background(), "missing@example.com", 0, +1)
	assert.ErrorIs(t, err, user.ErrUnknownIdentity)
}

func TestMemoryStore_AdjustCartSlot_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(ctx, user.New("test@example.com", "Test", "pw")))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = s.AdjustCartSlot(ctx, "test@example.com", 0, +1)
		}()
	}
	wg.Wait()

	// No lost updates: every increment lands
	cart, err := s.GetCart(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, workers, cart[0])
}

func TestMemoryStore_GetCart_SnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(ctx, user.New("test@example.com", "Test", "pw")))

	cart, err := s.GetCart(ctx, "test@example.com")
	require.NoError(t, err)
	cart[0] = 42

	fresh, err := s.GetCart(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, fresh[0])
}

func TestMemoryStore_Products_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, id := range []int64{3, 1, 2} {
		require.NoError(t, s.Insert(ctx, &catalog.Product{ID: id, Name: "p", CreatedAt: time.Now()}))
	}

	products, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, int64(3), products[0].ID)
	assert.Equal(t, int64(1), products[1].ID)
	assert.Equal(t, int64(2), products[2].ID)

	lastID, ok, err := s.LastID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), lastID)

	maxID, err := s.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), maxID)
}

func TestMemoryStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Insert(ctx, &catalog.Product{ID: 1, Name: "shirt"}))
	require.NoError(t, s.Insert(ctx, &catalog.Product{ID: 2, Name: "shoes"}))

	removed, err := s.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "shirt", removed.Name)

	products, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(2), products[0].ID)

	_, err = s.DeleteByID(ctx, 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
