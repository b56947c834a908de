package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
)

// --- Mocks dos repositórios ---
// Cada mock expõe os métodos como campos de função, para cada teste
// controlar exatamente o que o repositório "devolve".

type rentalRepoMock struct {
	countOpenFn func(ctx context.Context, tx *sql.Tx, gameID int64) (int64, error)
	insertFn    func(ctx context.Context, tx *sql.Tx, rental domain.Rental) (int64, error)
	getByIDFn   func(ctx context.Context, id int64) (*domain.Rental, error)
	closeFn     func(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error)
	deleteFn    func(ctx context.Context, id int64) (bool, error)
	listFn      func(ctx context.Context, customerID, gameID *int64) ([]domain.RentalDetail, error)
}

func (m *rentalRepoMock) CountOpenByGame(ctx context.Context, tx *sql.Tx, gameID int64) (int64, error) {
	return m.countOpenFn(ctx, tx, gameID)
}
func (m *rentalRepoMock) Insert(ctx context.Context, tx *sql.Tx, rental domain.Rental) (int64, error) {
	return m.insertFn(ctx, tx, rental)
}
func (m *rentalRepoMock) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	return m.getByIDFn(ctx, id)
}
func (m *rentalRepoMock) Close(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error) {
	return m.closeFn(ctx, id, returnDate, delayFee)
}
func (m *rentalRepoMock) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFn(ctx, id)
}
func (m *rentalRepoMock) List(ctx context.Context, customerID, gameID *int64) ([]domain.RentalDetail, error) {
	return m.listFn(ctx, customerID, gameID)
}

type gameRepoMock struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Game, error)
}

func (m *gameRepoMock) Create(ctx context.Context, game domain.Game) (int64, error) { return 0, nil }
func (m *gameRepoMock) List(ctx context.Context, namePrefix string) ([]domain.Game, error) {
	return nil, nil
}
func (m *gameRepoMock) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	return m.getByIDFn(ctx, id)
}
func (m *gameRepoMock) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

type customerRepoMock struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Customer, error)
}

func (m *customerRepoMock) Create(ctx context.Context, customer domain.Customer) (int64, error) {
	return 0, nil
}
func (m *customerRepoMock) List(ctx context.Context, cpfPrefix string) ([]domain.Customer, error) {
	return nil, nil
}
func (m *customerRepoMock) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return m.getByIDFn(ctx, id)
}
func (m *customerRepoMock) Update(ctx context.Context, id int64, customer domain.Customer) error {
	return nil
}
func (m *customerRepoMock) ExistsByCPF(ctx context.Context, cpf string, excludeID int64) (bool, error) {
	return false, nil
}

func fixedClock(day string) func() time.Time {
	t, _ := time.Parse(domain.DateLayout, day)
	return func() time.Time { return t }
}

func date(t *testing.T, day string) domain.Date {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, day)
	require.NoError(t, err)
	return domain.NewDate(parsed)
}

// --- Multa por atraso ---

func TestDelayFee(t *testing.T) {
	// Jogo de 10,00/dia alugado por 3 dias: preço original 30,00.
	rental := domain.Rental{
		RentDate:      date(t, "2021-06-20"),
		DaysRented:    3,
		OriginalPrice: 3000,
	}

	t.Run("devolução no prazo não gera multa", func(t *testing.T) {
		fee := DelayFee(rental, date(t, "2021-06-23"))
		assert.Equal(t, int64(0), fee)
	})

	t.Run("devolução antecipada não gera multa", func(t *testing.T) {
		fee := DelayFee(rental, date(t, "2021-06-21"))
		assert.Equal(t, int64(0), fee)
	})

	t.Run("dois dias de atraso cobram duas diárias", func(t *testing.T) {
		// Devolvido 5 dias depois, com 3 contratados: 2 * (3000/3) = 2000.
		fee := DelayFee(rental, date(t, "2021-06-25"))
		assert.Equal(t, int64(2000), fee)
	})

	t.Run("devolução no mesmo dia não gera multa", func(t *testing.T) {
		fee := DelayFee(rental, date(t, "2021-06-20"))
		assert.Equal(t, int64(0), fee)
	})
}

// --- Criação de aluguel ---

func newCreateFixture(t *testing.T, stockTotal, openCount int64) (*RentalService, sqlmock.Sqlmock, *rentalRepoMock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	games := &gameRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Game, error) {
			return &domain.Game{ID: id, Name: "Banco Imobiliário", StockTotal: stockTotal, PricePerDay: 1500}, nil
		},
	}
	customers := &customerRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "João"}, nil
		},
	}
	rentals := &rentalRepoMock{
		countOpenFn: func(ctx context.Context, tx *sql.Tx, gameID int64) (int64, error) {
			return openCount, nil
		},
		insertFn: func(ctx context.Context, tx *sql.Tx, rental domain.Rental) (int64, error) {
			return 7, nil
		},
	}

	svc := NewRentalService(db, rentals, games, customers).WithClock(fixedClock("2021-06-20"))
	return svc, mock, rentals
}

func TestRentalService_Create(t *testing.T) {
	t.Run("sucesso - calcula o preço e abre o aluguel", func(t *testing.T) {
		svc, mock, rentals := newCreateFixture(t, 3, 0)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var inserted domain.Rental
		rentals.insertFn = func(ctx context.Context, tx *sql.Tx, rental domain.Rental) (int64, error) {
			inserted = rental
			return 7, nil
		}

		rental, err := svc.Create(context.Background(), 1, 2, 3)
		require.NoError(t, err)

		assert.Equal(t, int64(7), rental.ID)
		assert.Equal(t, int64(3*1500), rental.OriginalPrice)
		assert.Equal(t, "2021-06-20", rental.RentDate.String())
		assert.Nil(t, rental.ReturnDate)
		assert.Nil(t, rental.DelayFee)
		assert.Equal(t, inserted.OriginalPrice, rental.OriginalPrice)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("estoque cheio - recusa o aluguel", func(t *testing.T) {
		svc, mock, _ := newCreateFixture(t, 3, 3)
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(context.Background(), 1, 2, 3)
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("uma unidade livre - aceita o aluguel", func(t *testing.T) {
		svc, mock, _ := newCreateFixture(t, 3, 2)
		mock.ExpectBegin()
		mock.ExpectCommit()

		_, err := svc.Create(context.Background(), 1, 2, 3)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("jogo inexistente", func(t *testing.T) {
		svc, _, _ := newCreateFixture(t, 3, 0)
		svc.games = &gameRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Game, error) { return nil, nil },
		}

		_, err := svc.Create(context.Background(), 1, 99, 3)
		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		svc, _, _ := newCreateFixture(t, 3, 0)
		svc.customers = &customerRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) { return nil, nil },
		}

		_, err := svc.Create(context.Background(), 99, 2, 3)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

// --- Devolução ---

func TestRentalService_Return(t *testing.T) {
	openRental := func() *domain.Rental {
		return &domain.Rental{
			ID:            7,
			CustomerID:    1,
			GameID:        2,
			RentDate:      date(t, "2021-06-20"),
			DaysRented:    3,
			OriginalPrice: 3000,
		}
	}

	t.Run("devolução atrasada grava a multa", func(t *testing.T) {
		var gotFee int64
		var gotDate domain.Date
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) { return openRental(), nil },
			closeFn: func(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error) {
				gotDate, gotFee = returnDate, delayFee
				return true, nil
			},
		}
		svc := NewRentalService(nil, rentals, nil, nil).WithClock(fixedClock("2021-06-25"))

		rental, err := svc.Return(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, int64(2000), gotFee)
		assert.Equal(t, "2021-06-25", gotDate.String())
		require.NotNil(t, rental.DelayFee)
		assert.Equal(t, int64(2000), *rental.DelayFee)
		require.NotNil(t, rental.ReturnDate)
		assert.Equal(t, "2021-06-25", rental.ReturnDate.String())
		// O preço original não muda na devolução.
		assert.Equal(t, int64(3000), rental.OriginalPrice)
	})

	t.Run("devolução no dia do prazo tem multa zero", func(t *testing.T) {
		var gotFee int64 = -1
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) { return openRental(), nil },
			closeFn: func(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error) {
				gotFee = delayFee
				return true, nil
			},
		}
		svc := NewRentalService(nil, rentals, nil, nil).WithClock(fixedClock("2021-06-23"))

		_, err := svc.Return(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(0), gotFee)
	})

	t.Run("aluguel inexistente", func(t *testing.T) {
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) { return nil, nil },
		}
		svc := NewRentalService(nil, rentals, nil, nil)

		_, err := svc.Return(context.Background(), 99)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})

	t.Run("aluguel já devolvido", func(t *testing.T) {
		closed := openRental()
		ret := date(t, "2021-06-23")
		fee := int64(0)
		closed.ReturnDate = &ret
		closed.DelayFee = &fee

		closeCalled := false
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) { return closed, nil },
			closeFn: func(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error) {
				closeCalled = true
				return true, nil
			},
		}
		svc := NewRentalService(nil, rentals, nil, nil).WithClock(fixedClock("2021-06-30"))

		_, err := svc.Return(context.Background(), 7)
		assert.ErrorIs(t, err, ErrRentalClosed)
		assert.False(t, closeCalled, "um aluguel fechado não pode ser fechado de novo")
	})

	t.Run("fechamento concorrente vira conflito", func(t *testing.T) {
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) { return openRental(), nil },
			closeFn: func(ctx context.Context, id int64, returnDate domain.Date, delayFee int64) (bool, error) {
				// Outra requisição fechou o aluguel entre o SELECT e o UPDATE.
				return false, nil
			},
		}
		svc := NewRentalService(nil, rentals, nil, nil).WithClock(fixedClock("2021-06-23"))

		_, err := svc.Return(context.Background(), 7)
		assert.ErrorIs(t, err, ErrRentalClosed)
	})
}

// --- Cancelamento ---

func TestRentalService_Cancel(t *testing.T) {
	t.Run("aluguel aberto é removido", func(t *testing.T) {
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) {
				return &domain.Rental{ID: id}, nil
			},
			deleteFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		}
		svc := NewRentalService(nil, rentals, nil, nil)

		assert.NoError(t, svc.Cancel(context.Background(), 7))
	})

	t.Run("aluguel fechado não pode ser removido", func(t *testing.T) {
		ret := date(t, "2021-06-23")
		deleteCalled := false
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) {
				return &domain.Rental{ID: id, ReturnDate: &ret}, nil
			},
			deleteFn: func(ctx context.Context, id int64) (bool, error) {
				deleteCalled = true
				return true, nil
			},
		}
		svc := NewRentalService(nil, rentals, nil, nil)

		assert.ErrorIs(t, svc.Cancel(context.Background(), 7), ErrRentalClosed)
		assert.False(t, deleteCalled)
	})

	t.Run("aluguel inexistente", func(t *testing.T) {
		rentals := &rentalRepoMock{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Rental, error) { return nil, nil },
		}
		svc := NewRentalService(nil, rentals, nil, nil)

		assert.ErrorIs(t, svc.Cancel(context.Background(), 99), ErrRentalNotFound)
	})
}
