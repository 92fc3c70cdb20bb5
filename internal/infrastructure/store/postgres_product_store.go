package store

import (
	"context"
	"database/sql"

	"github.com/example/shopfront/internal/domain/catalog"
)

// PostgresProductStore implements catalog.Store on PostgreSQL
type PostgresProductStore struct {
	db *sql.DB
}

func NewPostgresProductStore(db *sql.DB) *PostgresProductStore {
	return &PostgresProductStore{db: db}
}

func (s *PostgresProductStore) Insert(ctx context.Context, p *catalog.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, name, image, category, new_price, old_price, available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.Name, p.Image, p.Category, p.NewPrice, p.OldPrice, p.Available, p.CreatedAt)
	return err
}

func (s *PostgresProductStore) DeleteByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var p catalog.Product
	err := s.db.QueryRowContext(ctx, `
		DELETE FROM products WHERE id = $1
		RETURNING id, name, image, category, new_price, old_price, available, created_at
	`, id).Scan(&p.ID, &p.Name, &p.Image, &p.Category, &p.NewPrice, &p.OldPrice, &p.Available, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostgresProductStore) All(ctx context.Context) ([]catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image, category, new_price, old_price, available, created_at
		FROM products ORDER BY seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Category, &p.NewPrice, &p.OldPrice, &p.Available, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresProductStore) LastID(ctx context.Context) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM products ORDER BY seq DESC LIMIT 1`,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func (s *PostgresProductStore) MaxID(ctx context.Context) (int64, error) {
	var maxID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) FROM products`,
	).Scan(&maxID)
	return maxID, err
}
