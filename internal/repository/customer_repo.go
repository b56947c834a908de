package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
)

// CustomerRepository define as operações de persistência de clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) (int64, error)
	// List filtra por prefixo de CPF quando cpfPrefix não é vazio.
	List(ctx context.Context, cpfPrefix string) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, customer domain.Customer) error
	// ExistsByCPF ignora o registro excludeID, para a atualização não esbarrar
	// no próprio CPF do cliente sendo atualizado. Use 0 para não excluir ninguém.
	ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error)
}

type sqliteCustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository cria o repositório de clientes sobre o banco injetado.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &sqliteCustomerRepository{db: db}
}

func (r *sqliteCustomerRepository) Create(ctx context.Context, customer domain.Customer) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO customers (name, phone, cpf, birthday) VALUES (?, ?, ?, ?)",
		customer.Name, customer.Phone, customer.CPF, customer.Birthday,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sqliteCustomerRepository) List(ctx context.Context, cpfPrefix string) ([]domain.Customer, error) {
	query := "SELECT id, name, phone, cpf, birthday FROM customers"
	var args []any
	if cpfPrefix != "" {
		query += " WHERE cpf LIKE ?"
		args = append(args, cpfPrefix+"%")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &c.Birthday); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *sqliteCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, phone, cpf, birthday FROM customers WHERE id = ?", id)

	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &c.Birthday); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *sqliteCustomerRepository) Update(ctx context.Context, id int64, customer domain.Customer) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE customers SET name = ?, phone = ?, cpf = ?, birthday = ? WHERE id = ?",
		customer.Name, customer.Phone, customer.CPF, customer.Birthday, id,
	)
	return err
}

func (r *sqliteCustomerRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM customers WHERE cpf = ? AND id != ?", cpf, excludeID).Scan(&n)
	return n > 0, err
}
