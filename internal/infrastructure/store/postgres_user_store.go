package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/example/shopfront/internal/domain/user"
)

// PostgresUserStore implements user.Store on PostgreSQL. The cart is held as
// a JSONB column and slot deltas are applied inside a single UPDATE, so
// concurrent mutations to the same user serialize on the row instead of
// racing through a load-mutate-store cycle.
type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, u *user.User) error {
	cartJSON, err := json.Marshal(u.Cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, name, secret, cart, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, u.Identity, u.Name, u.Secret, cartJSON, u.CreatedAt)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return user.ErrDuplicateIdentity
	}
	return nil
}

func (s *PostgresUserStore) GetUser(ctx context.Context, identity string) (*user.User, error) {
	var u user.User
	var cartJSON []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT email, name, secret, cart, created_at
		FROM users WHERE email = $1
	`, identity).Scan(&u.Identity, &u.Name, &u.Secret, &cartJSON, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUnknownIdentity
		}
		return nil, err
	}

	if err := json.Unmarshal(cartJSON, &u.Cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return &u, nil
}

func (s *PostgresUserStore) GetCart(ctx context.Context, identity string) (user.Cart, error) {
	var cartJSON []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT cart FROM users WHERE email = $1`, identity,
	).Scan(&cartJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUnknownIdentity
		}
		return nil, err
	}

	var cart user.Cart
	if err := json.Unmarshal(cartJSON, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return cart, nil
}

// AdjustCartSlot applies delta to one slot in a single UPDATE. Decrements
// carry a guard on the current quantity, so a zero slot stays untouched and
// reports user.ErrEmptySlot.
func (s *PostgresUserStore) AdjustCartSlot(ctx context.Context, identity string, slot, delta int) error {
	key := strconv.Itoa(slot)

	query := `
		UPDATE users
		SET cart = jsonb_set(cart, ARRAY[$2::text],
			to_jsonb(COALESCE((cart->>$2)::int, 0) + $3))
		WHERE email = $1`
	if delta < 0 {
		query += ` AND COALESCE((cart->>$2)::int, 0) + $3 >= 0`
	}

	res, err := s.db.ExecContext(ctx, query, identity, key, delta)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Either no such user, or the decrement guard fired
		var exists bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, identity,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrUnknownIdentity
		}
		return user.ErrEmptySlot
	}
	return nil
}
