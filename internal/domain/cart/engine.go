package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/example/shopfront/internal/domain/user"
	"github.com/google/uuid"
)

// ErrInvalidSlot rejects slot indices outside the fixed cart range. The
// legacy backend left out-of-range slots undefined; rejecting is the safe
// reading of that contract.
var ErrInvalidSlot = errors.New("slot out of range")

// EventPublisher publishes cart events; a nil publisher disables publication
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Service mutates per-user carts. Every mutation is one atomic store
// operation, so concurrent requests for the same user cannot lose updates.
type Service struct {
	users     user.Store
	publisher EventPublisher
}

func NewService(users user.Store, publisher EventPublisher) *Service {
	return &Service{users: users, publisher: publisher}
}

// Increment adds one unit at slot for the given identity
func (s *Service) Increment(ctx context.Context, identity string, slot int) error {
	if !user.ValidSlot(slot) {
		return ErrInvalidSlot
	}

	if err := s.users.AdjustCartSlot(ctx, identity, slot, +1); err != nil {
		return err
	}

	s.publish(ctx, identity, EventItemAdded, ItemAdded{
		EventID:  uuid.New().String(),
		Identity: identity,
		Slot:     slot,
		AddedAt:  time.Now(),
	})

	return nil
}

// Decrement removes one unit at slot; user.ErrEmptySlot when the slot is
// already at zero, leaving the cart unchanged.
func (s *Service) Decrement(ctx context.Context, identity string, slot int) error {
	if !user.ValidSlot(slot) {
		return ErrInvalidSlot
	}

	if err := s.users.AdjustCartSlot(ctx, identity, slot, -1); err != nil {
		return err
	}

	s.publish(ctx, identity, EventItemRemoved, ItemRemoved{
		EventID:   uuid.New().String(),
		Identity:  identity,
		Slot:      slot,
		RemovedAt: time.Now(),
	})

	return nil
}

// Read returns a snapshot of the identity's full cart
func (s *Service) Read(ctx context.Context, identity string) (user.Cart, error) {
	return s.users.GetCart(ctx, identity)
}

func (s *Service) publish(ctx context.Context, identity, eventType string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, identity, event); err != nil {
		log.Printf("[Cart] Failed to publish %s for %s: %v", eventType, identity, err)
	}
}
