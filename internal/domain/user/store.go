package user

import (
	"context"
	"errors"
)

var (
	ErrDuplicateIdentity = errors.New("identity already registered")
	ErrUnknownIdentity   = errors.New("unknown identity")
	ErrEmptySlot         = errors.New("slot is empty")
)

// Store persists credential records and their carts
type Store interface {
	// CreateUser stores a new record; ErrDuplicateIdentity if the identity
	// exists. The existing record is left untouched on failure.
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, identity string) (*User, error)
	GetCart(ctx context.Context, identity string) (Cart, error)
	// AdjustCartSlot applies delta to one slot as a single atomic operation.
	// A negative delta on a zero slot fails with ErrEmptySlot and changes
	// nothing; quantities never go below zero.
	AdjustCartSlot(ctx context.Context, identity string, slot, delta int) error
}
