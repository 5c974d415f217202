package catalog

import (
	"context"
	"database/sql"

	"github.com/arsens-deals/storefront/internal/domain"
)

// PostgresStore implements Store on top of the products table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, image, price, shipping
		FROM products
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Image, &p.Price, &p.Shipping); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, image, price, shipping
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Image, &p.Price, &p.Shipping)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (s *PostgresStore) Add(ctx context.Context, p domain.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, title, image, price, shipping)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Title, p.Image, p.Price, p.Shipping)
	return err
}

func (s *PostgresStore) Remove(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM products WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
