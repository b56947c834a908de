package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
)

// CategoryRepository define as operações de persistência de categorias.
// A interface existe para podermos mockar o repositório nos testes de serviço.
type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (int64, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type sqliteCategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository cria o repositório de categorias sobre o banco injetado.
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &sqliteCategoryRepository{db: db}
}

func (r *sqliteCategoryRepository) Create(ctx context.Context, category domain.Category) (int64, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?)", category.Name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sqliteCategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *sqliteCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE id = ?", id)

	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *sqliteCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories WHERE name = ?", name).Scan(&n)
	return n > 0, err
}
