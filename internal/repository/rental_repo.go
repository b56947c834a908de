package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
)

// RentalRepository define as operações de persistência de aluguéis.
// A checagem de estoque e a inserção rodam dentro da mesma transação, por isso
// os dois primeiros métodos recebem o *sql.Tx aberto pelo serviço.
type RentalRepository interface {
	CountOpenByGame(ctx context.Context, tx *sql.Tx, gameID int64) (int64, error)
	Insert(ctx context.Context, tx *sql.Tx, rental domain.Rental) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	// Close grava returnDate e delayFee de um aluguel ainda aberto.
	// Devolve false se nenhuma linha foi afetada (aluguel inexistente ou já fechado).
	Close(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error)
	// Delete remove um aluguel ainda aberto; false se nada foi removido.
	Delete(ctx context.Context, id int64) (bool, error)
	// List devolve os aluguéis enriquecidos com cliente e jogo. Filtros nil são ignorados.
	List(ctx context.Context, customerID, gameID *int64) ([]domain.RentalDetail, error)
}

type sqliteRentalRepository struct {
	db *sql.DB
}

// NewRentalRepository cria o repositório de aluguéis sobre o banco injetado.
func NewRentalRepository(db *sql.DB) RentalRepository {
	return &sqliteRentalRepository{db: db}
}

func (r *sqliteRentalRepository) CountOpenByGame(ctx context.Context, tx *sql.Tx, gameID int64) (int64, error) {
	var n int64
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rentals WHERE game_id = ? AND return_date IS NULL", gameID).Scan(&n)
	return n, err
}

func (r *sqliteRentalRepository) Insert(ctx context.Context, tx *sql.Tx, rental domain.Rental) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee)
		 VALUES (?, ?, ?, ?, NULL, ?, NULL)`,
		rental.CustomerID, rental.GameID, rental.RentDate, rental.DaysRented, rental.OriginalPrice,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sqliteRentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee
		 FROM rentals WHERE id = ?`, id)

	rental, err := scanRental(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rental, err
}

func (r *sqliteRentalRepository) Close(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error) {
	// O guard por return_date IS NULL garante que o fechamento acontece no máximo
	// uma vez, mesmo com duas devoluções concorrentes do mesmo aluguel.
	res, err := r.db.ExecContext(ctx,
		"UPDATE rentals SET return_date = ?, delay_fee = ? WHERE id = ? AND return_date IS NULL",
		returnDate, delayFee, id,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *sqliteRentalRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM rentals WHERE id = ? AND return_date IS NULL", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

const listRentalsQuery = `
SELECT r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented, r.return_date, r.original_price, r.delay_fee,
       c.name, g.name, g.category_id, cat.name
FROM rentals r
JOIN customers c ON c.id = r.customer_id
JOIN games g ON g.id = r.game_id
JOIN categories cat ON cat.id = g.category_id`

func (r *sqliteRentalRepository) List(ctx context.Context, customerID, gameID *int64) ([]domain.RentalDetail, error) {
	query := listRentalsQuery
	var (
		where []string
		args  []any
	)
	if customerID != nil {
		where = append(where, "r.customer_id = ?")
		args = append(args, *customerID)
	}
	if gameID != nil {
		where = append(where, "r.game_id = ?")
		args = append(args, *gameID)
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY r.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.RentalDetail
	for rows.Next() {
		var (
			d          domain.RentalDetail
			returnDate sql.NullString
			delayFee   sql.NullInt64
		)
		err := rows.Scan(
			&d.ID, &d.CustomerID, &d.GameID, &d.RentDate, &d.DaysRented, &returnDate, &d.OriginalPrice, &delayFee,
			&d.Customer.Name, &d.Game.Name, &d.Game.CategoryID, &d.Game.CategoryName,
		)
		if err != nil {
			return nil, err
		}
		if err := applyNullable(&d.Rental, returnDate, delayFee); err != nil {
			return nil, err
		}
		d.Customer.ID = d.CustomerID
		d.Game.ID = d.GameID
		details = append(details, d)
	}
	return details, rows.Err()
}

// scanRental lê um aluguel de um QueryRow, tratando as colunas anuláveis.
func scanRental(row *sql.Row) (*domain.Rental, error) {
	var (
		rental     domain.Rental
		returnDate sql.NullString
		delayFee   sql.NullInt64
	)
	err := row.Scan(
		&rental.ID, &rental.CustomerID, &rental.GameID, &rental.RentDate,
		&rental.DaysRented, &returnDate, &rental.OriginalPrice, &delayFee,
	)
	if err != nil {
		return nil, err
	}
	if err := applyNullable(&rental, returnDate, delayFee); err != nil {
		return nil, err
	}
	return &rental, nil
}

func applyNullable(rental *domain.Rental, returnDate sql.NullString, delayFee sql.NullInt64) error {
	if returnDate.Valid {
		t, err := time.Parse(domain.DateLayout, returnDate.String)
		if err != nil {
			return err
		}
		d := domain.NewDate(t)
		rental.ReturnDate = &d
	}
	if delayFee.Valid {
		fee := delayFee.Int64
		rental.DelayFee = &fee
	}
	return nil
}
