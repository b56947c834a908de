package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
)

// GameRepository define as operações de persistência de jogos.
type GameRepository interface {
	Create(ctx context.Context, game domain.Game) (int64, error)
	// List devolve os jogos com o nome da categoria; namePrefix vazio lista tudo,
	// senão filtra por prefixo de nome sem diferenciar maiúsculas de minúsculas.
	List(ctx context.Context, namePrefix string) ([]domain.Game, error)
	GetByID(ctx context.Context, id int64) (*domain.Game, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type sqliteGameRepository struct {
	db *sql.DB
}

// NewGameRepository cria o repositório de jogos sobre o banco injetado.
func NewGameRepository(db *sql.DB) GameRepository {
	return &sqliteGameRepository{db: db}
}

func (r *sqliteGameRepository) Create(ctx context.Context, game domain.Game) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO games (name, image, stock_total, category_id, price_per_day) VALUES (?, ?, ?, ?, ?)",
		game.Name, game.Image, game.StockTotal, game.CategoryID, game.PricePerDay,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const listGamesQuery = `
SELECT g.id, g.name, g.image, g.stock_total, g.category_id, g.price_per_day, c.name
FROM games g
JOIN categories c ON c.id = g.category_id`

func (r *sqliteGameRepository) List(ctx context.Context, namePrefix string) ([]domain.Game, error) {
	query := listGamesQuery
	var args []any
	if namePrefix != "" {
		// LIKE no SQLite já ignora caixa para ASCII; o lower cobre o resto.
		query += " WHERE lower(g.name) LIKE lower(?)"
		args = append(args, namePrefix+"%")
	}
	query += " ORDER BY g.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay, &g.CategoryName); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *sqliteGameRepository) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, image, stock_total, category_id, price_per_day FROM games WHERE id = ?", id)

	var g domain.Game
	if err := row.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *sqliteGameRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM games WHERE name = ?", name).Scan(&n)
	return n > 0, err
}
