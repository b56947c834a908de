package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/repository"
)

// RentalService implementa o ciclo de vida do aluguel: criação (checagem de
// estoque e preço), devolução (multa por atraso) e cancelamento.
// O relógio é injetado para os testes fixarem "hoje".
type RentalService struct {
	db        *sql.DB
	rentals   repository.RentalRepository
	games     repository.GameRepository
	customers repository.CustomerRepository
	now       func() time.Time
}

// NewRentalService cria uma nova instância do RentalService.
// O *sql.DB entra direto porque a criação de aluguel abre a própria transação.
func NewRentalService(
	db *sql.DB,
	rentals repository.RentalRepository,
	games repository.GameRepository,
	customers repository.CustomerRepository,
) *RentalService {
	return &RentalService{
		db:        db,
		rentals:   rentals,
		games:     games,
		customers: customers,
		now:       time.Now,
	}
}

// WithClock troca o relógio do serviço; usado nos testes.
func (s *RentalService) WithClock(now func() time.Time) *RentalService {
	s.now = now
	return s
}

// Create aluga um jogo para um cliente. A contagem de unidades em uso e a
// inserção rodam na mesma transação, para dois aluguéis simultâneos não
// passarem ambos pela checagem de estoque.
func (s *RentalService) Create(ctx context.Context, customerID, gameID, daysRented int64) (domain.Rental, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return domain.Rental{}, err
	}
	if game == nil {
		return domain.Rental{}, ErrGameNotFound
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return domain.Rental{}, err
	}
	if customer == nil {
		return domain.Rental{}, ErrCustomerNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Rental{}, err
	}
	defer tx.Rollback()

	// Só aluguéis abertos ocupam estoque; os já devolvidos liberam a unidade.
	open, err := s.rentals.CountOpenByGame(ctx, tx, gameID)
	if err != nil {
		return domain.Rental{}, err
	}
	if open >= game.StockTotal {
		return domain.Rental{}, ErrOutOfStock
	}

	rental := domain.Rental{
		CustomerID:    customerID,
		GameID:        gameID,
		RentDate:      domain.NewDate(s.now()),
		DaysRented:    daysRented,
		OriginalPrice: daysRented * game.PricePerDay,
	}
	id, err := s.rentals.Insert(ctx, tx, rental)
	if err != nil {
		return domain.Rental{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Rental{}, err
	}
	rental.ID = id
	return rental, nil
}

// Return fecha um aluguel aberto, gravando a data de devolução e a multa.
func (s *RentalService) Return(ctx context.Context, id int64) (domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return domain.Rental{}, err
	}
	if rental == nil {
		return domain.Rental{}, ErrRentalNotFound
	}
	if !rental.Open() {
		return domain.Rental{}, ErrRentalClosed
	}

	returnDate := domain.NewDate(s.now())
	fee := DelayFee(*rental, returnDate)

	closed, err := s.rentals.Close(ctx, id, returnDate, fee)
	if err != nil {
		return domain.Rental{}, err
	}
	if !closed {
		// Alguém fechou o aluguel entre a leitura e o update.
		return domain.Rental{}, ErrRentalClosed
	}

	rental.ReturnDate = &returnDate
	rental.DelayFee = &fee
	return *rental, nil
}

// Cancel remove um aluguel que ainda não foi devolvido.
// Aluguel fechado faz parte do histórico de cobrança e não pode ser apagado.
func (s *RentalService) Cancel(ctx context.Context, id int64) error {
	rental, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rental == nil {
		return ErrRentalNotFound
	}
	if !rental.Open() {
		return ErrRentalClosed
	}

	deleted, err := s.rentals.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRentalClosed
	}
	return nil
}

// List devolve os aluguéis com cliente e jogo embutidos. Filtros nil listam tudo;
// quando os dois vêm preenchidos valem juntos (AND).
func (s *RentalService) List(ctx context.Context, customerID, gameID *int64) ([]domain.RentalDetail, error) {
	return s.rentals.List(ctx, customerID, gameID)
}

// DelayFee calcula a multa por atraso de um aluguel devolvido em returnDate.
// A diária é originalPrice/daysRented — exata, porque o preço original foi
// calculado como daysRented * pricePerDay. Devolução no prazo não gera multa.
func DelayFee(rental domain.Rental, returnDate domain.Date) int64 {
	elapsed := rental.RentDate.DaysUntil(returnDate)
	late := elapsed - rental.DaysRented
	if late <= 0 {
		return 0
	}
	return late * (rental.OriginalPrice / rental.DaysRented)
}
